package journal

import "strings"

// Builder folds classified lines into a Journal. At most one entry is open at
// a time; it is filed when a date header or a new entry starts, or on Finish.
type Builder struct {
	journal     *Journal
	currentDate string
	hasDate     bool
	open        Entry
	dropped     int
}

// NewBuilder returns a Builder with an empty journal
func NewBuilder() *Builder {
	return &Builder{journal: New()}
}

// Feed processes one raw line.
func (b *Builder) Feed(line string) {
	line = strings.TrimRight(line, " \t\r\n")
	if strings.TrimSpace(line) == "" {
		return
	}

	sig := Classify(line)
	switch sig.Kind {
	case SignalDate:
		b.close()
		b.currentDate = sig.Date
		b.hasDate = true
	case SignalEntry:
		b.close()
		b.open = sig.Entry
	case SignalContinuation:
		if b.open == nil {
			b.dropped++
			return
		}
		b.open.AppendBody(sig.Text)
	}
}

// Finish files the open entry, if any, and returns the journal.
func (b *Builder) Finish() *Journal {
	b.close()
	return b.journal
}

// Dropped returns how many continuation lines had no entry to attach to.
func (b *Builder) Dropped() int {
	return b.dropped
}

func (b *Builder) close() {
	if b.open == nil {
		return
	}
	date := SentinelDate
	if b.hasDate {
		date = b.currentDate
	}
	b.journal.Add(date, b.open)
	b.open = nil
}

// Build parses a complete sequence of lines.
func Build(lines []string) *Journal {
	b := NewBuilder()
	for _, line := range lines {
		b.Feed(line)
	}
	return b.Finish()
}

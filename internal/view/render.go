package view

import (
	"sort"
	"strings"

	"dvlg/internal/journal"
)

// Category groups entry kinds for ordering and blank-line separation
type Category int

const (
	CategoryTodo Category = iota
	CategoryCalendar
	CategoryNote
	CategoryLearned
	CategoryIdea
	CategoryQuestion
)

// CategoryOf returns the rendering category of an entry. Questions and
// answers share one.
func CategoryOf(e journal.Entry) Category {
	switch e.Kind() {
	case journal.KindTodo:
		return CategoryTodo
	case journal.KindCalendar:
		return CategoryCalendar
	case journal.KindNote:
		return CategoryNote
	case journal.KindLearned:
		return CategoryLearned
	case journal.KindIdea:
		return CategoryIdea
	default:
		return CategoryQuestion
	}
}

// LineKind says what part of the view a Line is
type LineKind int

const (
	LineDate LineKind = iota
	LineHeader
	LineBody
	LineBlank
)

// Line is one rendered output line. Category is meaningful for header and
// body lines, Entry only for header lines.
type Line struct {
	Kind     LineKind
	Category Category
	Entry    journal.Entry
	Text     string
}

// Options configure Render
type Options struct {
	Filter   Filter
	Tag      string
	TagMatch TagMatcher
}

// Render produces the filtered, grouped view of j.
func Render(j *journal.Journal, opts Options) []Line {
	if opts.Filter == FilterCalendar {
		return renderCalendar(j, opts)
	}

	var lines []Line
	for _, date := range j.Dates() {
		selected := selectEntries(j.Entries(date), opts)
		if len(selected) == 0 {
			continue
		}
		if opts.Filter == FilterAll {
			sortForDisplay(selected)
		}

		if len(lines) > 0 {
			lines = append(lines, Line{Kind: LineBlank})
		}
		lines = append(lines, Line{Kind: LineDate, Text: "@" + date})
		lines = appendEntries(lines, selected)
	}
	return lines
}

// renderCalendar merges the events of every date section and orders them by
// the date written inside their brackets, without section headers.
func renderCalendar(j *journal.Journal, opts Options) []Line {
	var events []journal.Entry
	for _, date := range j.Dates() {
		events = append(events, selectEntries(j.Entries(date), opts)...)
	}
	sortForDisplay(events)
	return appendEntries(nil, events)
}

func selectEntries(entries []journal.Entry, opts Options) []journal.Entry {
	var selected []journal.Entry
	for _, e := range entries {
		if opts.Filter.Matches(e, opts.Tag, opts.TagMatch) {
			selected = append(selected, e)
		}
	}
	return selected
}

// sortForDisplay orders todos first in their original order, then calendar
// events by their own date, then notes by tag, then the remaining categories.
func sortForDisplay(entries []journal.Entry) {
	sort.SliceStable(entries, func(i, k int) bool {
		ci, ck := CategoryOf(entries[i]), CategoryOf(entries[k])
		if ci != ck {
			return ci < ck
		}
		return sortKey(entries[i]) < sortKey(entries[k])
	})
}

func sortKey(e journal.Entry) string {
	switch v := e.(type) {
	case *journal.Calendar:
		return v.Date
	case *journal.Note:
		return v.Tag
	}
	return ""
}

func appendEntries(lines []Line, entries []journal.Entry) []Line {
	for i, e := range entries {
		cat := CategoryOf(e)
		if i > 0 && CategoryOf(entries[i-1]) != cat {
			lines = append(lines, Line{Kind: LineBlank})
		}
		lines = append(lines, Line{Kind: LineHeader, Category: cat, Entry: e, Text: e.Header()})
		if body := e.Body(); body != "" {
			for _, b := range strings.Split(body, "\n") {
				lines = append(lines, Line{Kind: LineBody, Category: cat, Text: b})
			}
		}
	}
	return lines
}

// Strings returns the plain text of lines
func Strings(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

package journal

import "strings"

// SignalKind tells the builder what a line means
type SignalKind int

const (
	SignalContinuation SignalKind = iota
	SignalDate
	SignalEntry
)

// Signal is the classification of one line. Date is set for SignalDate,
// Entry for SignalEntry and Text for SignalContinuation.
type Signal struct {
	Kind  SignalKind
	Date  string
	Entry Entry
	Text  string
}

const (
	sigilAnswer   = "?!"
	sigilLearned  = "!"
	sigilIdea     = "$"
	sigilQuestion = "?"
	sigilNote     = "/"
)

// rule recognizes one line shape. Rules are tried in order and the first
// match wins, so a rule may assume every earlier rule rejected the line.
type rule struct {
	name  string
	match func(line string) (Signal, bool)
}

var rules = []rule{
	{"date", matchDate},
	{"todo", matchTodo},
	{"calendar", matchCalendar},
	{"sigil", matchSigil},
}

// Suffix sigils. "?!" has to come before the single-character sigils or an
// answer would be read as a learned item or a question.
var sigils = []struct {
	sigil string
	build func(tag, title string) Entry
}{
	{sigilAnswer, func(tag, title string) Entry { return &Answer{Tag: tag, Answer: title} }},
	{sigilLearned, func(tag, title string) Entry { return &Learned{Tag: tag, Title: title} }},
	{sigilIdea, func(tag, title string) Entry { return &Idea{Tag: tag, Title: title} }},
	{sigilQuestion, func(tag, title string) Entry { return &Question{Tag: tag, Question: title} }},
}

// Classify decides what a single journal line is. It never fails: a line no
// rule recognizes is continuation text for the open entry.
func Classify(line string) Signal {
	for _, r := range rules {
		if sig, ok := r.match(line); ok {
			return sig
		}
	}
	return Signal{Kind: SignalContinuation, Text: line}
}

func matchDate(line string) (Signal, bool) {
	if !strings.HasPrefix(line, "@") {
		return Signal{}, false
	}
	return Signal{Kind: SignalDate, Date: strings.TrimSpace(line[1:])}, true
}

func matchTodo(line string) (Signal, bool) {
	if len(line) < 5 || !strings.HasPrefix(line, "- [") || line[4] != ']' {
		return Signal{}, false
	}
	state, ok := stateFromMarker(line[3])
	if !ok {
		return Signal{}, false
	}
	todo := &Todo{State: state, Title: strings.TrimSpace(line[5:])}
	return Signal{Kind: SignalEntry, Entry: todo}, true
}

func matchCalendar(line string) (Signal, bool) {
	if !strings.HasPrefix(line, "[") {
		return Signal{}, false
	}
	end := strings.Index(line, "]")
	if end < 0 {
		return Signal{}, false
	}
	cal := &Calendar{Date: line[1:end], Title: strings.TrimSpace(line[end+1:])}
	return Signal{Kind: SignalEntry, Entry: cal}, true
}

func matchSigil(line string) (Signal, bool) {
	head, title, _ := strings.Cut(line, " ")
	title = strings.TrimSpace(title)

	for _, s := range sigils {
		if strings.HasSuffix(head, s.sigil) {
			tag := strings.TrimSuffix(head, s.sigil)
			tag = strings.TrimPrefix(tag, "/")
			return Signal{Kind: SignalEntry, Entry: s.build(tag, title)}, true
		}
	}

	if strings.HasPrefix(head, "/") {
		tag := strings.TrimPrefix(head, "/")
		tag = strings.TrimSuffix(tag, sigilNote)
		if strings.ContainsAny(tag, sigilLearned+sigilIdea+sigilQuestion) {
			return Signal{}, false
		}
		return Signal{Kind: SignalEntry, Entry: &Note{Tag: tag, Title: title}}, true
	}

	return Signal{}, false
}

package journal

import "strings"

// Kind identifies the variant of an Entry
type Kind int

const (
	KindTodo Kind = iota
	KindLearned
	KindIdea
	KindQuestion
	KindAnswer
	KindCalendar
	KindNote
)

func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindLearned:
		return "learned"
	case KindIdea:
		return "idea"
	case KindQuestion:
		return "question"
	case KindAnswer:
		return "answer"
	case KindCalendar:
		return "calendar"
	case KindNote:
		return "note"
	default:
		return ""
	}
}

// TodoState is the checkbox state of a Todo
type TodoState int

const (
	StateOpen TodoState = iota
	StateDoing
	StateDone
	StateDropped
)

// Marker returns the character written between the brackets of "- [ ]".
func (s TodoState) Marker() byte {
	switch s {
	case StateDoing:
		return '/'
	case StateDone:
		return 'x'
	case StateDropped:
		return '-'
	default:
		return ' '
	}
}

func (s TodoState) String() string {
	switch s {
	case StateDoing:
		return "doing"
	case StateDone:
		return "done"
	case StateDropped:
		return "dropped"
	default:
		return "open"
	}
}

// stateFromMarker maps a checkbox character to a state.
func stateFromMarker(c byte) (TodoState, bool) {
	switch c {
	case ' ':
		return StateOpen, true
	case 'x':
		return StateDone, true
	case '/':
		return StateDoing, true
	case '-':
		return StateDropped, true
	}
	return StateOpen, false
}

// Entry is one structured record of a journal.
type Entry interface {
	Kind() Kind
	// Header reconstructs the line that introduced the entry.
	Header() string
	Body() string
	AppendBody(line string)
}

// extra holds the continuation lines of an entry
type extra struct {
	text string
}

func (e *extra) Body() string {
	return e.text
}

func (e *extra) AppendBody(line string) {
	if e.text != "" {
		e.text += "\n"
	}
	e.text += line
}

type Todo struct {
	extra
	State TodoState
	Title string
}

type Learned struct {
	extra
	Tag   string
	Title string
}

type Idea struct {
	extra
	Tag   string
	Title string
}

type Question struct {
	extra
	Tag      string
	Question string
}

// Answer answers a Question. Sharing a tag with the question is a convention,
// nothing links the two.
type Answer struct {
	extra
	Tag    string
	Answer string
}

// Calendar is an event; Date is free text taken from between the brackets.
type Calendar struct {
	extra
	Date  string
	Title string
}

type Note struct {
	extra
	Tag   string
	Title string
}

func (*Todo) Kind() Kind     { return KindTodo }
func (*Learned) Kind() Kind  { return KindLearned }
func (*Idea) Kind() Kind     { return KindIdea }
func (*Question) Kind() Kind { return KindQuestion }
func (*Answer) Kind() Kind   { return KindAnswer }
func (*Calendar) Kind() Kind { return KindCalendar }
func (*Note) Kind() Kind     { return KindNote }

func (t *Todo) Header() string {
	return headerLine("- ["+string(t.State.Marker())+"]", t.Title)
}

func (l *Learned) Header() string {
	return headerLine(taggedSigil(l.Tag, sigilLearned), l.Title)
}

func (i *Idea) Header() string {
	return headerLine(taggedSigil(i.Tag, sigilIdea), i.Title)
}

func (q *Question) Header() string {
	return headerLine(taggedSigil(q.Tag, sigilQuestion), q.Question)
}

func (a *Answer) Header() string {
	return headerLine(taggedSigil(a.Tag, sigilAnswer), a.Answer)
}

func (c *Calendar) Header() string {
	return headerLine("["+c.Date+"]", c.Title)
}

func (n *Note) Header() string {
	return headerLine(taggedSigil(n.Tag, sigilNote), n.Title)
}

// Tag returns the tag of a tagged entry, or "" for Todo and Calendar.
func Tag(e Entry) string {
	switch v := e.(type) {
	case *Learned:
		return v.Tag
	case *Idea:
		return v.Tag
	case *Question:
		return v.Tag
	case *Answer:
		return v.Tag
	case *Note:
		return v.Tag
	}
	return ""
}

// Title returns the one-line text of an entry.
func Title(e Entry) string {
	switch v := e.(type) {
	case *Todo:
		return v.Title
	case *Learned:
		return v.Title
	case *Idea:
		return v.Title
	case *Question:
		return v.Question
	case *Answer:
		return v.Answer
	case *Calendar:
		return v.Title
	case *Note:
		return v.Title
	}
	return ""
}

func taggedSigil(tag, sigil string) string {
	if tag == "" {
		return sigil
	}
	return "/" + tag + sigil
}

func headerLine(head, title string) string {
	return strings.TrimRight(head+" "+title, " ")
}

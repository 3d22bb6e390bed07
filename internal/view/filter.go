package view

import (
	"fmt"
	"strings"

	"dvlg/internal/journal"

	"github.com/sahilm/fuzzy"
)

// Filter selects which entries a view shows
type Filter int

const (
	FilterTodo Filter = iota
	FilterDoing
	FilterDone
	FilterDropped
	FilterLearned
	FilterQuestions
	FilterCalendar
	FilterNote
	FilterIdea
	FilterAll
)

var filterNames = []string{
	FilterTodo:      "todo",
	FilterDoing:     "doing",
	FilterDone:      "done",
	FilterDropped:   "dropped",
	FilterLearned:   "til",
	FilterQuestions: "qts",
	FilterCalendar:  "cal",
	FilterNote:      "note",
	FilterIdea:      "idea",
	FilterAll:       "fmt",
}

func (f Filter) String() string {
	if f < 0 || int(f) >= len(filterNames) {
		return ""
	}
	return filterNames[f]
}

// FilterNames lists the accepted filter names in display order
func FilterNames() []string {
	return append([]string(nil), filterNames...)
}

// UnknownFilterError is returned by ParseFilter for names outside FilterNames
type UnknownFilterError struct {
	Name string
}

func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("unknown filter %q (want one of %s)", e.Name, strings.Join(filterNames, ", "))
}

// ParseFilter maps a command-line filter name to a Filter
func ParseFilter(name string) (Filter, error) {
	for i, n := range filterNames {
		if n == name {
			return Filter(i), nil
		}
	}
	return 0, &UnknownFilterError{Name: name}
}

// TagMatcher reports whether an entry tag satisfies a query
type TagMatcher func(tag, query string) bool

// SubstringMatch requires the query to appear verbatim in the tag
func SubstringMatch(tag, query string) bool {
	return strings.Contains(tag, query)
}

// FuzzyMatch accepts tags that contain the query's characters in order
func FuzzyMatch(tag, query string) bool {
	if query == "" {
		return true
	}
	return len(fuzzy.Find(query, []string{tag})) > 0
}

// Matches reports whether e belongs in the view. The tag query only applies
// to notes; an empty query matches every note.
func (f Filter) Matches(e journal.Entry, tag string, match TagMatcher) bool {
	switch f {
	case FilterAll:
		return true
	case FilterTodo:
		return todoIn(e, journal.StateOpen)
	case FilterDoing:
		return todoIn(e, journal.StateDoing)
	case FilterDone:
		return todoIn(e, journal.StateDone)
	case FilterDropped:
		return todoIn(e, journal.StateDropped)
	case FilterLearned:
		return e.Kind() == journal.KindLearned
	case FilterIdea:
		return e.Kind() == journal.KindIdea
	case FilterQuestions:
		return e.Kind() == journal.KindQuestion || e.Kind() == journal.KindAnswer
	case FilterCalendar:
		return e.Kind() == journal.KindCalendar
	case FilterNote:
		note, ok := e.(*journal.Note)
		if !ok {
			return false
		}
		if tag == "" {
			return true
		}
		if match == nil {
			match = SubstringMatch
		}
		return match(note.Tag, tag)
	}
	return false
}

func todoIn(e journal.Entry, state journal.TodoState) bool {
	todo, ok := e.(*journal.Todo)
	return ok && todo.State == state
}

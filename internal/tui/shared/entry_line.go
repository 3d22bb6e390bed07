package shared

import (
	"strings"

	"dvlg/internal/journal"
	"dvlg/internal/tui/theme"
	"dvlg/internal/view"

	"github.com/charmbracelet/lipgloss"
)

// StyledLine renders one view line with the theme. With colors disabled the
// result equals l.Text.
func StyledLine(l view.Line) string {
	switch l.Kind {
	case view.LineDate:
		return render(theme.Date, l.Text)
	case view.LineBlank:
		return ""
	case view.LineBody:
		return render(theme.Body, l.Text)
	}

	switch e := l.Entry.(type) {
	case *journal.Todo:
		return render(todoStyle(e.State), l.Text)
	case *journal.Calendar:
		head, rest := splitHead(l.Text, "]")
		return render(theme.Calendar, head) + rest
	case *journal.Learned:
		return taggedLine(l.Text, theme.Learned)
	case *journal.Idea:
		return taggedLine(l.Text, theme.Idea)
	case *journal.Question, *journal.Answer:
		return taggedLine(l.Text, theme.Question)
	case *journal.Note:
		return taggedLine(l.Text, theme.Tag)
	}
	return l.Text
}

func todoStyle(s journal.TodoState) lipgloss.Style {
	switch s {
	case journal.StateDoing:
		return theme.TodoDoing
	case journal.StateDone:
		return theme.TodoDone
	case journal.StateDropped:
		return theme.TodoDropped
	default:
		return theme.TodoOpen
	}
}

// taggedLine colors the sigil token and leaves the title plain
func taggedLine(text string, style lipgloss.Style) string {
	head, rest, found := strings.Cut(text, " ")
	if !found {
		return render(style, head)
	}
	return render(style, head) + " " + rest
}

// splitHead splits text after the first occurrence of sep
func splitHead(text, sep string) (string, string) {
	i := strings.Index(text, sep)
	if i < 0 {
		return text, ""
	}
	return text[:i+len(sep)], text[i+len(sep):]
}

// render keeps tabs intact; body text is reproduced verbatim
func render(style lipgloss.Style, s string) string {
	return style.TabWidth(lipgloss.NoTabConversion).Render(s)
}

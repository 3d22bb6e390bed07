package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"dvlg/internal/journal"
	"dvlg/internal/view"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown turns a rendered view into a Markdown document: dates become
// second-level headings, todos become GFM task list items and entry bodies are
// kept verbatim inside fenced blocks.
func Markdown(lines []view.Line) string {
	var b strings.Builder
	var body []string

	flushBody := func() {
		if len(body) == 0 {
			return
		}
		fence := backticks(3, body...)
		b.WriteString("\n" + fence + "\n")
		for _, l := range body {
			b.WriteString(l + "\n")
		}
		b.WriteString(fence + "\n\n")
		body = nil
	}

	for _, l := range lines {
		switch l.Kind {
		case view.LineDate:
			flushBody()
			fmt.Fprintf(&b, "## %s\n\n", strings.TrimPrefix(l.Text, "@"))
		case view.LineHeader:
			flushBody()
			b.WriteString(markdownHeader(l) + "\n")
		case view.LineBody:
			body = append(body, l.Text)
		case view.LineBlank:
			flushBody()
			b.WriteString("\n")
		}
	}
	flushBody()

	return b.String()
}

// markdownHeader writes todos as task list items; every other entry is a
// list item with its sigil in code so Markdown does not reinterpret it.
func markdownHeader(l view.Line) string {
	if todo, ok := l.Entry.(*journal.Todo); ok {
		switch todo.State {
		case journal.StateDone:
			return "- [x] " + todo.Title
		case journal.StateOpen:
			return "- [ ] " + todo.Title
		}
		return listItem("- ["+string(todo.State.Marker())+"]", todo.Title)
	}
	head, rest, _ := strings.Cut(l.Text, " ")
	return listItem(head, rest)
}

func listItem(head, rest string) string {
	item := "- " + codeSpan(head)
	if rest == "" {
		return item
	}
	return item + " " + rest
}

// codeSpan wraps s in a backtick run longer than any run inside it. A space
// pads content that starts or ends with a backtick.
func codeSpan(s string) string {
	delim := backticks(1, s)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return delim + s + delim
}

// backticks returns a run of at least n backticks that is longer than the
// longest run found in texts.
func backticks(n int, texts ...string) string {
	longest := 0
	for _, t := range texts {
		run := 0
		for _, r := range t {
			if r != '`' {
				run = 0
				continue
			}
			run++
			longest = max(longest, run)
		}
	}
	return strings.Repeat("`", max(n, longest+1))
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML writes the view as an HTML fragment.
func HTML(w io.Writer, lines []view.Line) error {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(lines)), &buf); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

package tui

import (
	"fmt"
	"strings"

	"dvlg/internal/journal"
	"dvlg/internal/logs"
	"dvlg/internal/tui/shared"
	"dvlg/internal/tui/theme"
	"dvlg/internal/view"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel browses a journal one filter tab at a time
type AppModel struct {
	journal  *journal.Journal
	filter   view.Filter
	tagMatch view.TagMatcher
	lines    []string
	offset   int
	width    int
	height   int
	ready    bool
	showHelp bool

	// Tag search state
	searchActive bool
	searchInput  textinput.Model
	tagQuery     string
}

// NewAppModel creates the viewer showing filter first
func NewAppModel(j *journal.Journal, filter view.Filter, tag string, tagMatch view.TagMatcher) AppModel {
	si := textinput.New()
	si.Placeholder = "note tag..."
	si.CharLimit = 100
	si.Width = 40

	m := AppModel{
		journal:     j,
		filter:      filter,
		tagMatch:    tagMatch,
		searchInput: si,
		tagQuery:    tag,
	}
	m.refresh()
	return m
}

func (m *AppModel) refresh() {
	rendered := view.Render(m.journal, view.Options{
		Filter:   m.filter,
		Tag:      m.tagQuery,
		TagMatch: m.tagMatch,
	})
	m.lines = make([]string, len(rendered))
	for i, l := range rendered {
		m.lines[i] = shared.StyledLine(l)
	}
	m.offset = 0
}

// Filter returns the active filter tab
func (m AppModel) Filter() view.Filter {
	return m.filter
}

func (m AppModel) contentHeight() int {
	// tab bar (2 lines) + status bar (2 lines)
	return max(1, m.height-4)
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.offset = shared.ClampOffset(m.offset, len(m.lines), m.contentHeight())
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.searchActive {
			return m.handleSearchMode(msg)
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab", "l", "right":
			m.setFilter((m.filter + 1) % view.Filter(len(view.FilterNames())))
		case "shift+tab", "h", "left":
			n := view.Filter(len(view.FilterNames()))
			m.setFilter((m.filter + n - 1) % n)
		case "j", "down":
			m.scroll(1)
		case "k", "up":
			m.scroll(-1)
		case "ctrl+d", "pgdown":
			m.scroll(m.contentHeight() / 2)
		case "ctrl+u", "pgup":
			m.scroll(-m.contentHeight() / 2)
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = shared.ClampOffset(len(m.lines), len(m.lines), m.contentHeight())
		case "/":
			m.searchActive = true
			m.searchInput.SetValue(m.tagQuery)
			return m, m.searchInput.Focus()
		case "esc":
			if m.tagQuery != "" {
				m.tagQuery = ""
				m.refresh()
			}
		case "?":
			m.showHelp = true
		}
	}

	return m, nil
}

func (m *AppModel) setFilter(f view.Filter) {
	logs.Logger.Printf("switching view to %s", f)
	m.filter = f
	m.refresh()
}

func (m *AppModel) scroll(delta int) {
	m.offset = shared.ClampOffset(m.offset+delta, len(m.lines), m.contentHeight())
}

func (m AppModel) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchActive = false
		m.searchInput.Blur()
		m.tagQuery = strings.TrimSpace(m.searchInput.Value())
		if m.tagQuery != "" && m.filter != view.FilterNote {
			m.filter = view.FilterNote
		}
		m.refresh()
		return m, nil
	case "esc":
		m.searchActive = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(helpSections, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderTabs() + "\n")

	height := m.contentHeight()
	if len(m.lines) == 0 {
		b.WriteString(shared.CenterContent(theme.Muted.Render("No entries"), height))
	} else {
		b.WriteString(shared.Window(m.lines, m.offset, height))
	}

	b.WriteString("\n" + theme.StatusBar.Width(max(0, m.width)).Render(m.statusText()))
	return b.String()
}

func (m AppModel) renderTabs() string {
	tabs := make([]string, 0, len(view.FilterNames()))
	for i, name := range view.FilterNames() {
		if view.Filter(i) == m.filter {
			tabs = append(tabs, theme.TabActive.Render(name))
		} else {
			tabs = append(tabs, theme.TabInactive.Render(name))
		}
	}
	return theme.TabBar.Render(strings.Join(tabs, "  "))
}

func (m AppModel) statusText() string {
	if m.searchActive {
		return theme.SearchLabel.Render("tag: ") + m.searchInput.View()
	}

	status := fmt.Sprintf("%d/%d", min(m.offset+1, len(m.lines)), len(m.lines))
	if m.tagQuery != "" {
		status += "  " + theme.SearchLabel.Render("tag:"+m.tagQuery)
	}
	return status + "  " + theme.HelpHint.Render("tab:next view  /:tag  ?:help  q:quit")
}

var helpSections = []shared.HelpSection{
	{
		Title: "Views",
		Binds: []shared.HelpBind{
			{Key: "tab / l", Desc: "next filter"},
			{Key: "shift+tab / h", Desc: "previous filter"},
		},
	},
	{
		Title: "Scrolling",
		Binds: []shared.HelpBind{
			{Key: "j / k", Desc: "line down / up"},
			{Key: "ctrl+d / ctrl+u", Desc: "half page down / up"},
			{Key: "g / G", Desc: "top / bottom"},
		},
	},
	{
		Title: "Tags",
		Binds: []shared.HelpBind{
			{Key: "/", Desc: "filter notes by tag"},
			{Key: "esc", Desc: "clear tag filter"},
		},
	},
}

// Run starts the interactive viewer on the alternate screen.
func Run(m AppModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ---------------------------------------------------------------------------
// Color palette (ANSI 0-15 + one 256-color accent)
// ---------------------------------------------------------------------------

var (
	Text       = lipgloss.Color("7")
	TextMuted  = lipgloss.Color("8")
	TextBright = lipgloss.Color("15")

	Primary   = lipgloss.Color("4")   // blue
	Secondary = lipgloss.Color("6")   // cyan
	Accent    = lipgloss.Color("5")   // magenta
	Success   = lipgloss.Color("2")   // green
	Warning   = lipgloss.Color("3")   // yellow
	Danger    = lipgloss.Color("1")   // red
	Surface   = lipgloss.Color("236") // dark bg
	Border    = lipgloss.Color("8")   // dim
)

// ---------------------------------------------------------------------------
// Semantic text styles
// ---------------------------------------------------------------------------

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)

	Date = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Body = lipgloss.NewStyle().Foreground(Text)

	TodoOpen    = lipgloss.NewStyle().Bold(true)
	TodoDoing   = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	TodoDone    = lipgloss.NewStyle().Foreground(TextMuted)
	TodoDropped = lipgloss.NewStyle().Foreground(TextMuted).Strikethrough(true)

	Calendar = lipgloss.NewStyle().Foreground(Success)
	Tag      = lipgloss.NewStyle().Foreground(Secondary)
	Learned  = lipgloss.NewStyle().Foreground(Accent)
	Idea     = lipgloss.NewStyle().Foreground(Warning)
	Question = lipgloss.NewStyle().Foreground(Danger)
)

// ---------------------------------------------------------------------------
// Reusable component helpers
// ---------------------------------------------------------------------------

var (
	StatusBar = lipgloss.NewStyle().
			Foreground(TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)

	TabActive   = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	TabInactive = lipgloss.NewStyle().Foreground(TextMuted)
	TabBar      = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Border).
			PaddingLeft(1)

	SearchLabel = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
)

// SetColorMode applies a config color mode ("auto", "always", "never") to the
// default lipgloss renderer. "auto" keeps terminal detection.
func SetColorMode(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

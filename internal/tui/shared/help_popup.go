package shared

import (
	"strings"

	"dvlg/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// HelpBind represents a single keybind entry
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection represents a group of related keybinds
type HelpSection struct {
	Title string
	Binds []HelpBind
}

var (
	helpSectionStyle = theme.Title
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary).Width(14)
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpBoxStyle     = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(theme.Primary).
				Padding(1, 2)
)

// RenderHelpPopup renders the keybind sections in a box centered in a
// width x height area.
func RenderHelpPopup(sections []HelpSection, width, height int) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(helpSectionStyle.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			b.WriteString("  " + helpKeyStyle.Render(bind.Key) + helpDescStyle.Render(bind.Desc) + "\n")
		}
	}
	b.WriteString("\n" + theme.Muted.Render("Press any key to close"))

	box := helpBoxStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

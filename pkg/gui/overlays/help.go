package overlays

import (
	"strings"

	"github.com/madhoundes/pixelmuse/pkg/common"
	"github.com/madhoundes/pixelmuse/pkg/gui/theme"

	"github.com/charmbracelet/lipgloss"
)

// HelpDialog represents a help overlay showing all shortcuts
type HelpDialog struct {
	keyMap *common.GlobalKeyMap
	width  int
	height int
}

// Styling for help dialog
var (
	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(theme.BorderMuted)).
				Padding(1, 2).
				MaxWidth(65)

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.MuseColor)).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(theme.InfoStatus)).
				MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.WarningStatus)).
			Width(12)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextDescription))

	helpFooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextMuted)).
			Italic(true).
			MarginTop(1)
)

// NewHelpDialog creates a new help dialog
func NewHelpDialog(keyMap *common.GlobalKeyMap) *HelpDialog {
	return &HelpDialog{keyMap: keyMap}
}

// SetSize updates the dialog dimensions
func (h *HelpDialog) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the help dialog content
func (h *HelpDialog) View() string {
	var content []string

	content = append(content, helpTitleStyle.Render("pixelmuse - thumbnail prompts"))

	shortcuts := common.AllShortcuts(h.keyMap)
	for _, section := range common.HelpSectionOrder {
		items, ok := shortcuts[section]
		if !ok {
			continue
		}
		content = append(content, helpSectionStyle.Render(section))
		for _, shortcut := range items {
			content = append(content, "  "+helpKeyStyle.Render(shortcut.Key)+helpDescStyle.Render(shortcut.Description))
		}
	}

	content = append(content, "")
	content = append(content, helpFooterStyle.Render("Press any key to close"))

	return helpOverlayStyle.Render(strings.Join(content, "\n"))
}


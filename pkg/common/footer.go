package common

import (
	"strings"

	"github.com/madhoundes/pixelmuse/pkg/gui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Footer manages the bottom footer bar with keyboard shortcuts
type Footer struct {
	width           int
	height          int
	focused         string
	shortcutOverlay *ShortcutOverlay
}

// Styling for footer elements
var (
	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextDescription)).
			Bold(true)

	footerActiveKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.MuseColor)).
				Bold(true)

	footerDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextDescription))

	footerSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.SeparatorColor))

	footerStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// NewFooter creates a new footer component
func NewFooter() *Footer {
	return &Footer{
		height:  1,
		focused: FocusNone,
	}
}

// SetShortcutOverlay sets the shortcut overlay for the footer
func (f *Footer) SetShortcutOverlay(overlay *ShortcutOverlay) {
	f.shortcutOverlay = overlay
}

// SetSize updates the footer dimensions
func (f *Footer) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetFocus updates which field is focused
func (f *Footer) SetFocus(focused string) {
	f.focused = focused
}

// GetShortcuts returns the current shortcuts to display
func (f *Footer) GetShortcuts() []Shortcut {
	if f.shortcutOverlay != nil {
		f.shortcutOverlay.SetFocus(f.focused)
		return f.shortcutOverlay.FormatShortcuts()
	}
	return []Shortcut{}
}

// View renders the footer
func (f *Footer) View() string {
	if f.width == 0 {
		return ""
	}

	shortcuts := f.GetShortcuts()
	if len(shortcuts) == 0 {
		return ""
	}

	var local, global []string
	for _, shortcut := range shortcuts {
		if shortcut.IsGlobal {
			global = append(global, footerKeyStyle.Render(shortcut.Key)+" "+footerDescStyle.Render(shortcut.Description))
			continue
		}
		keyStyle := footerKeyStyle
		if f.focused != FocusNone {
			keyStyle = footerActiveKeyStyle
		}
		local = append(local, keyStyle.Render(shortcut.Key)+" "+footerDescStyle.Render(shortcut.Description))
	}

	dot := footerSeparatorStyle.Render(" • ")
	content := strings.Join(local, dot)
	if len(local) > 0 && len(global) > 0 {
		content += footerSeparatorStyle.Render(" │ ")
	}
	content += strings.Join(global, dot)

	return lipgloss.Place(
		f.width,
		f.height,
		lipgloss.Center,
		lipgloss.Center,
		footerStyle.Render(content),
	)
}

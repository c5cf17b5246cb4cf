package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// GlobalKeyMap defines the keybindings of the prompt screen.
//
// Quit and Keybindings only apply while no text field is being edited; ForceQuit
// always applies.
type GlobalKeyMap struct {
	Quit        key.Binding // q - quit application
	ForceQuit   key.Binding // ctrl+c - quit from anywhere
	Keybindings key.Binding // ? - show help
	DebugLog    key.Binding // ctrl+d - show the debug log

	// Prompt field
	EditPrompt key.Binding // i, tab - focus the prompt field
	Blur       key.Binding // esc - leave the focused field
	NextField  key.Binding // tab - prompt -> quality -> prompt
	Submit     key.Binding // enter - record a generation request

	// Quality selector
	QualityPrev key.Binding // ←, h
	QualityNext key.Binding // →, l

	// Recent requests
	ClearHistory key.Binding // ctrl+x - forget recent requests
}

// NewGlobalKeyMap creates a new GlobalKeyMap with default keybindings
func NewGlobalKeyMap() *GlobalKeyMap {
	return &GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Keybindings: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keybindings"),
		),
		DebugLog: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "debug log"),
		),

		EditPrompt: key.NewBinding(
			key.WithKeys("i", "tab"),
			key.WithHelp("i", "write prompt"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave field"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "generate"),
		),

		QualityPrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "lower quality"),
		),
		QualityNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "higher quality"),
		),

		ClearHistory: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear recent"),
		),
	}
}

// GlobalKeys is the shared key map
var GlobalKeys = NewGlobalKeyMap()

// ShortHelp returns a slice of key bindings to show in the short help view
func (k *GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Keybindings,
		k.Quit,
	}
}

// FullHelp returns a slice of key bindings to show in the full help view
func (k *GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.ForceQuit, k.Keybindings, k.DebugLog}, // Global
		{k.EditPrompt, k.NextField, k.Blur, k.Submit},    // Prompt
		{k.QualityPrev, k.QualityNext},                   // Quality
		{k.ClearHistory},                                 // History
	}
}

// GetHelpSections returns help sections with categorized keybindings
func (k *GlobalKeyMap) GetHelpSections() map[string][]key.Binding {
	return map[string][]key.Binding{
		"Global": {
			k.Quit,
			k.ForceQuit,
			k.Keybindings,
			k.DebugLog,
		},
		"Prompt": {
			k.EditPrompt,
			k.NextField,
			k.Blur,
			k.Submit,
		},
		"Quality": {
			k.QualityPrev,
			k.QualityNext,
		},
		"Recent Requests": {
			k.ClearHistory,
		},
	}
}

// HelpSectionOrder is the order sections appear in the help dialog
var HelpSectionOrder = []string{"Global", "Prompt", "Quality", "Recent Requests"}

package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// Focus names used by the footer and the shortcut overlay
const (
	FocusNone    = "none"
	FocusPrompt  = "prompt"
	FocusQuality = "quality"
)

// ShortcutOverlay manages the display of contextual shortcuts
type ShortcutOverlay struct {
	keyMap  *GlobalKeyMap
	focused string
}

// NewShortcutOverlay creates a new shortcut overlay
func NewShortcutOverlay(keyMap *GlobalKeyMap) *ShortcutOverlay {
	return &ShortcutOverlay{
		keyMap:  keyMap,
		focused: FocusNone,
	}
}

// SetFocus updates the focused field
func (s *ShortcutOverlay) SetFocus(focus string) {
	s.focused = focus
}

// GetContextualShortcuts returns shortcuts relevant to current context
func (s *ShortcutOverlay) GetContextualShortcuts() []key.Binding {
	switch s.focused {
	case FocusPrompt:
		return []key.Binding{s.keyMap.Submit, s.keyMap.NextField, s.keyMap.Blur, s.keyMap.ForceQuit}
	case FocusQuality:
		return []key.Binding{s.keyMap.QualityPrev, s.keyMap.QualityNext, s.keyMap.Submit, s.keyMap.NextField, s.keyMap.Blur}
	default:
		return []key.Binding{s.keyMap.EditPrompt, s.keyMap.ClearHistory, s.keyMap.Quit, s.keyMap.Keybindings}
	}
}

// FormatShortcuts formats the shortcuts for display
func (s *ShortcutOverlay) FormatShortcuts() []Shortcut {
	bindings := s.GetContextualShortcuts()
	shortcuts := make([]Shortcut, 0, len(bindings))

	for _, binding := range bindings {
		if binding.Enabled() {
			shortcuts = append(shortcuts, Shortcut{
				Key:         binding.Help().Key,
				Description: binding.Help().Desc,
				IsGlobal:    s.isGlobalKey(binding),
			})
		}
	}

	return shortcuts
}

// isGlobalKey checks if a keybinding is global
func (s *ShortcutOverlay) isGlobalKey(binding key.Binding) bool {
	helpKey := binding.Help().Key
	return helpKey == s.keyMap.Quit.Help().Key ||
		helpKey == s.keyMap.ForceQuit.Help().Key ||
		helpKey == s.keyMap.Keybindings.Help().Key
}

// Shortcut represents a keyboard shortcut with its description
type Shortcut struct {
	Key         string
	Description string
	IsGlobal    bool
}

// AllShortcuts returns all available shortcuts for the help dialog
func AllShortcuts(keyMap *GlobalKeyMap) map[string][]Shortcut {
	sections := keyMap.GetHelpSections()
	result := make(map[string][]Shortcut)

	for sectionName, bindings := range sections {
		shortcuts := make([]Shortcut, 0, len(bindings))
		for _, binding := range bindings {
			shortcuts = append(shortcuts, Shortcut{
				Key:         binding.Help().Key,
				Description: binding.Help().Desc,
			})
		}
		result[sectionName] = shortcuts
	}

	return result
}

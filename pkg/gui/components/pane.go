package components

import (
	"github.com/madhoundes/pixelmuse/pkg/gui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// TitleStyle defines how a pane's title should be rendered
type TitleStyle struct {
	Text      string // the title text
	Color     string // hex color of the title
	Shortcuts string // e.g. "[i write]"
}

// Pane represents a common interface for the screen's sections
type Pane interface {
	SetSize(width, height int)
	SetActive(active bool)
	IsActive() bool
	GetIndex() int

	GetTitle() string
	GetTitleStyle() TitleStyle

	View() string
	Update(msg tea.Msg) (Pane, tea.Cmd)

	// Keybindings shown in the footer while this pane is active
	GetPaneSpecificKeybindings() []key.Binding
}

// BasePane provides default implementations for common pane functionality
type BasePane struct {
	index    int
	width    int
	height   int
	isActive bool
	title    string
}

// NewBasePane creates a new BasePane with the given index and title
func NewBasePane(index int, title string) *BasePane {
	return &BasePane{
		index: index,
		title: title,
	}
}

// SetSize updates the pane dimensions
func (p *BasePane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetActive sets whether this pane is currently focused
func (p *BasePane) SetActive(active bool) {
	p.isActive = active
}

// IsActive returns whether this pane is currently focused
func (p *BasePane) IsActive() bool {
	return p.isActive
}

// GetIndex returns the pane's index
func (p *BasePane) GetIndex() int {
	return p.index
}

// GetTitle returns the pane's title
func (p *BasePane) GetTitle() string {
	return p.title
}

// GetTitleStyle returns the default title style
func (p *BasePane) GetTitleStyle() TitleStyle {
	return TitleStyle{
		Text:  p.title,
		Color: theme.MuseColor,
	}
}

// GetPaneSpecificKeybindings returns pane-specific keybindings - default is empty
func (p *BasePane) GetPaneSpecificKeybindings() []key.Binding {
	return []key.Binding{}
}

// GetWidth returns the current width
func (p *BasePane) GetWidth() int {
	return p.width
}

// GetHeight returns the current height
func (p *BasePane) GetHeight() int {
	return p.height
}

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// BlinkingBlock is a simple on/off block spinner
var BlinkingBlock = spinner.Spinner{
	Frames: []string{"█", "░"},
	FPS:    time.Millisecond * 500,
}

// StatusLoader renders a blinking block with a status label while work is pending.
type StatusLoader struct {
	spinner spinner.Model
	label   string
	active  bool
}

// NewStatusLoader returns an inactive loader.
func NewStatusLoader() *StatusLoader {
	return &StatusLoader{
		spinner: spinner.New(spinner.WithSpinner(BlinkingBlock)),
	}
}

// Start shows the loader with label and starts the animation.
func (l *StatusLoader) Start(label string) tea.Cmd {
	if l == nil {
		return nil
	}
	l.label = label
	l.active = true
	return l.spinner.Tick
}

// Stop hides the loader. Pending spinner ticks are dropped.
func (l *StatusLoader) Stop() {
	if l == nil {
		return
	}
	l.active = false
}

// Active reports whether the loader is shown.
func (l *StatusLoader) Active() bool {
	return l != nil && l.active
}

// Update advances the spinner animation when receiving tick messages.
func (l *StatusLoader) Update(msg tea.Msg) tea.Cmd {
	if l == nil || !l.active {
		return nil
	}

	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(tick)
		return cmd
	}
	return nil
}

// View renders the spinner and label.
func (l *StatusLoader) View() string {
	if !l.Active() {
		return ""
	}
	if l.label == "" {
		return l.spinner.View()
	}
	return l.spinner.View() + " " + l.label
}

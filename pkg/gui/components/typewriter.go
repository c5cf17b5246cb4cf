package components

import (
	"sync/atomic"
	"time"

	"github.com/madhoundes/pixelmuse/pkg/gui/theme"
	"github.com/madhoundes/pixelmuse/pkg/typewriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var lastTypewriterID int64

func nextTypewriterID() int {
	return int(atomic.AddInt64(&lastTypewriterID, 1))
}

type typewriterTimer int

const (
	revealTimer typewriterTimer = iota
	caretTimer
)

// TypewriterTickMsg advances a Typewriter. Only the most recently scheduled tick
// of each kind is honoured; older ones are dropped.
type TypewriterTickMsg struct {
	id    int
	tag   int
	timer typewriterTimer
}

// Scheduler turns a delay and a message into a command delivering it later.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

func tickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// CaretGlyph is drawn after the revealed suggestion
const CaretGlyph = "▎"

// Typewriter renders animated placeholder suggestions with a blinking caret
// for an empty, unfocused input.
type Typewriter struct {
	id       int
	machine  *typewriter.Machine
	schedule Scheduler

	revealTag int
	caretTag  int
	mounted   bool

	width      int
	TextStyle  lipgloss.Style
	CaretStyle lipgloss.Style
}

// TypewriterOption configures a Typewriter.
type TypewriterOption func(*Typewriter)

// WithScheduler replaces tea.Tick as the timer source.
func WithScheduler(s Scheduler) TypewriterOption {
	return func(t *Typewriter) {
		t.schedule = s
	}
}

// WithTypewriterTiming overrides the animation cadences.
func WithTypewriterTiming(timing typewriter.Timing) TypewriterOption {
	return func(t *Typewriter) {
		typewriter.WithTiming(timing)(t.machine)
	}
}

// NewTypewriter creates an unmounted typewriter over suggestions. Call Init to
// start it.
func NewTypewriter(suggestions []string, opts ...TypewriterOption) *Typewriter {
	t := &Typewriter{
		id:         nextTypewriterID(),
		machine:    typewriter.NewMachine(suggestions),
		schedule:   tickScheduler,
		TextStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextMuted)),
		CaretStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextDescription)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init mounts the typewriter and starts its timers.
func (t *Typewriter) Init() tea.Cmd {
	if t == nil {
		return nil
	}
	t.mounted = true
	return t.reconcile()
}

// SetShouldAnimate feeds the gating input: true when the host field is empty
// and not focused. Hosts may call it after every update; only changes
// reschedule timers.
func (t *Typewriter) SetShouldAnimate(v bool) tea.Cmd {
	if t == nil || t.machine.ShouldAnimate() == v {
		return nil
	}
	t.machine.SetShouldAnimate(v)
	if !t.mounted {
		return nil
	}
	return t.reconcile()
}

// SetReducedMotion keeps the typewriter idle while v is true.
func (t *Typewriter) SetReducedMotion(v bool) tea.Cmd {
	if t == nil || t.machine.ReducedMotion() == v {
		return nil
	}
	t.machine.SetReducedMotion(v)
	if !t.mounted {
		return nil
	}
	return t.reconcile()
}

// SetWidth limits the rendered text to width cells, caret included.
func (t *Typewriter) SetWidth(width int) {
	if t == nil {
		return
	}
	t.width = width
}

// Update handles the typewriter's own tick messages.
func (t *Typewriter) Update(msg tea.Msg) tea.Cmd {
	if t == nil || !t.mounted {
		return nil
	}

	tick, ok := msg.(TypewriterTickMsg)
	if !ok || tick.id != t.id {
		return nil
	}

	switch tick.timer {
	case revealTimer:
		if tick.tag != t.revealTag {
			return nil
		}
		t.machine.Advance()
		return t.reconcile()
	case caretTimer:
		if tick.tag != t.caretTag {
			return nil
		}
		t.machine.ToggleCaret()
		t.caretTag++
		return t.schedule(t.machine.Timing().Blink, TypewriterTickMsg{id: t.id, tag: t.caretTag, timer: caretTimer})
	}
	return nil
}

// Teardown unmounts the typewriter. Ticks already in flight are ignored.
func (t *Typewriter) Teardown() {
	if t == nil {
		return
	}
	t.mounted = false
	t.revealTag++
	t.caretTag++
	t.machine.Unmount()
}

func (t *Typewriter) reconcile() tea.Cmd {
	plan := t.machine.Reconcile()
	var cmds []tea.Cmd

	t.revealTag++
	if plan.RevealArmed {
		cmds = append(cmds, t.schedule(plan.RevealAfter, TypewriterTickMsg{id: t.id, tag: t.revealTag, timer: revealTimer}))
	}

	if plan.RestartCaret {
		t.caretTag++
		if plan.CaretArmed {
			cmds = append(cmds, t.schedule(plan.CaretAfter, TypewriterTickMsg{id: t.id, tag: t.caretTag, timer: caretTimer}))
		}
	}

	return tea.Batch(cmds...)
}

// State returns the current animation snapshot.
func (t *Typewriter) State() typewriter.State {
	return t.machine.State()
}

// Text returns the revealed part of the active suggestion.
func (t *Typewriter) Text() string {
	return t.machine.State().Text
}

// CaretVisible reports the blink phase of the caret.
func (t *Typewriter) CaretVisible() bool {
	return t.machine.State().CaretVisible
}

// IsTyping reports whether characters are currently being revealed.
func (t *Typewriter) IsTyping() bool {
	return t.machine.State().Typing
}

// View renders the revealed text followed by the caret.
func (t *Typewriter) View() string {
	if t == nil {
		return ""
	}

	text := t.Text()
	if t.width > 1 && runewidth.StringWidth(text) > t.width-1 {
		text = runewidth.Truncate(text, t.width-1, "…")
	}

	caret := " "
	if t.CaretVisible() {
		caret = t.CaretStyle.Render(CaretGlyph)
	}
	return t.TextStyle.Render(text) + caret
}

package typewriter

import (
	"strings"
	"time"
)

// Phase is the coarse state of the animation.
type Phase int

const (
	PhaseIdle    Phase = iota // gated off, reduced motion, or nothing to show
	PhaseTyping               // revealing characters
	PhaseHolding              // full suggestion shown, waiting to advance
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTyping:
		return "typing"
	case PhaseHolding:
		return "holding"
	default:
		return "idle"
	}
}

// State is the snapshot a host renders.
type State struct {
	Text         string // revealed prefix of the active suggestion
	Index        int    // active suggestion
	Typing       bool
	CaretVisible bool
	Phase        Phase
}

// Plan tells a host which timers to (re)arm after a state change. A host must
// cancel its pending reveal timer on every Plan, and its caret timer only when
// RestartCaret is set.
type Plan struct {
	RevealArmed bool
	RevealAfter time.Duration

	RestartCaret bool
	CaretArmed   bool
	CaretAfter   time.Duration
}

// Machine is the timer-free typewriter state machine. It is not safe for
// concurrent use; hosts serialise access.
type Machine struct {
	suggestions [][]string
	timing      Timing

	revealed int
	index    int
	typing   bool
	caret    bool

	shouldAnimate bool
	reducedMotion bool
	caretStarted  bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithTiming overrides the cadences. Zero fields keep their defaults.
func WithTiming(t Timing) Option {
	return func(m *Machine) {
		m.timing = t.withDefaults()
	}
}

// NewMachine returns an idle machine over suggestions. The slice is copied.
func NewMachine(suggestions []string, opts ...Option) *Machine {
	m := &Machine{
		timing: DefaultTiming(),
		caret:  true,
	}
	for _, s := range suggestions {
		m.suggestions = append(m.suggestions, splitCharacters(s))
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Timing returns the cadences in use.
func (m *Machine) Timing() Timing {
	return m.timing
}

// SetShouldAnimate records the gating input. Call Reconcile afterwards.
func (m *Machine) SetShouldAnimate(v bool) {
	m.shouldAnimate = v
}

// SetReducedMotion records the reduced-motion preference. Call Reconcile afterwards.
func (m *Machine) SetReducedMotion(v bool) {
	m.reducedMotion = v
}

// ShouldAnimate returns the last gating input.
func (m *Machine) ShouldAnimate() bool {
	return m.shouldAnimate
}

// ReducedMotion returns the last reduced-motion preference.
func (m *Machine) ReducedMotion() bool {
	return m.reducedMotion
}

func (m *Machine) canRun() bool {
	return m.shouldAnimate && !m.reducedMotion && len(m.suggestions) > 0
}

// Reconcile re-evaluates the machine after any input or timer change and returns
// the timers the host must arm.
func (m *Machine) Reconcile() Plan {
	wasTyping := m.typing
	var p Plan

	if !m.canRun() {
		m.revealed = 0
		m.typing = false
	} else if m.revealed < len(m.suggestions[m.index]) {
		m.typing = true
		p.RevealArmed = true
		p.RevealAfter = m.timing.Reveal
	} else {
		m.typing = false
		p.RevealArmed = true
		p.RevealAfter = m.timing.Hold
	}

	if !m.caretStarted || m.typing != wasTyping {
		m.caretStarted = true
		p.RestartCaret = true
		if m.typing {
			m.caret = true
		} else {
			p.CaretArmed = true
			p.CaretAfter = m.timing.Blink
		}
	}
	return p
}

// Advance applies a fired reveal timer: one more character while typing, or the
// reset to the next suggestion once holding. It is a no-op when idle.
func (m *Machine) Advance() {
	if !m.canRun() {
		return
	}
	if m.revealed < len(m.suggestions[m.index]) {
		m.revealed++
		return
	}
	m.revealed = 0
	m.index = (m.index + 1) % len(m.suggestions)
}

// ToggleCaret applies a fired caret timer. While typing the caret stays visible.
func (m *Machine) ToggleCaret() {
	if m.typing {
		m.caret = true
		return
	}
	m.caret = !m.caret
}

// Unmount drops the transient state tied to a host. The active index survives.
func (m *Machine) Unmount() {
	m.revealed = 0
	m.typing = false
	m.caret = true
	m.caretStarted = false
}

// Phase reports the current phase.
func (m *Machine) Phase() Phase {
	switch {
	case !m.canRun():
		return PhaseIdle
	case m.revealed < len(m.suggestions[m.index]):
		return PhaseTyping
	default:
		return PhaseHolding
	}
}

// State returns a snapshot.
func (m *Machine) State() State {
	return State{
		Text:         m.text(),
		Index:        m.index,
		Typing:       m.typing,
		CaretVisible: m.caret,
		Phase:        m.Phase(),
	}
}

func (m *Machine) text() string {
	if m.revealed == 0 || len(m.suggestions) == 0 {
		return ""
	}
	return strings.Join(m.suggestions[m.index][:m.revealed], "")
}

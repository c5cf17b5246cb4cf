package typewriter

import (
	"sync"
)

// Engine drives a Machine with real timers for hosts that are not bubbletea
// programs. All methods are safe for concurrent use.
type Engine struct {
	mu      sync.Mutex
	clock   Clock
	machine *Machine

	reveal timerSlot
	caret  timerSlot

	subs     map[int]chan State
	nextSub  int
	onChange func(State)
	closed   bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock replaces the wall clock.
func WithClock(c Clock) EngineOption {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithMachineOptions forwards options to the underlying Machine.
func WithMachineOptions(opts ...Option) EngineOption {
	return func(e *Engine) {
		for _, opt := range opts {
			opt(e.machine)
		}
	}
}

// WithOnChange registers a callback invoked, under the engine lock, after
// every state change. It must not call back into the Engine.
func WithOnChange(fn func(State)) EngineOption {
	return func(e *Engine) {
		e.onChange = fn
	}
}

// NewEngine mounts an engine over suggestions. It starts idle; the caret timer
// runs from the start.
func NewEngine(suggestions []string, opts ...EngineOption) *Engine {
	e := &Engine{
		clock:   realClock{},
		machine: NewMachine(suggestions),
		subs:    make(map[int]chan State),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.reconcileLocked()
	return e
}

// SetShouldAnimate feeds the gating input: true when the host field is empty and
// not focused. Repeating the current value does not disturb running timers.
func (e *Engine) SetShouldAnimate(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.machine.ShouldAnimate() == v {
		return
	}
	e.machine.SetShouldAnimate(v)
	e.reconcileLocked()
}

// SetReducedMotion forces the engine idle while v is true.
func (e *Engine) SetReducedMotion(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.machine.ReducedMotion() == v {
		return
	}
	e.machine.SetReducedMotion(v)
	e.reconcileLocked()
}

// State returns the current snapshot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.machine.State()
}

// Subscribe returns a channel carrying the latest state after each change. Slow
// readers only miss intermediate states. The channel is closed by cancel or Close.
func (e *Engine) Subscribe() (<-chan State, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ch := make(chan State, 1)
	if e.closed {
		close(ch)
		return ch, func() {}
	}
	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch
	ch <- e.machine.State()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			if c, ok := e.subs[id]; ok {
				delete(e.subs, id)
				close(c)
			}
		})
	}
}

// Close tears the engine down. No callback mutates state afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.reveal.stop()
	e.caret.stop()
	e.machine.Unmount()
	for id, ch := range e.subs {
		delete(e.subs, id)
		close(ch)
	}
}

func (e *Engine) reconcileLocked() {
	plan := e.machine.Reconcile()

	e.reveal.stop()
	if plan.RevealArmed {
		e.reveal.arm(e.clock, plan.RevealAfter, e.onReveal)
	}

	if plan.RestartCaret {
		e.caret.stop()
		if plan.CaretArmed {
			e.caret.arm(e.clock, plan.CaretAfter, e.onCaret)
		}
	}

	e.publishLocked()
}

func (e *Engine) onReveal(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.reveal.current(gen) {
		return
	}
	e.reveal.timer = nil
	e.machine.Advance()
	e.reconcileLocked()
}

func (e *Engine) onCaret(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.caret.current(gen) {
		return
	}
	e.machine.ToggleCaret()
	e.caret.arm(e.clock, e.machine.Timing().Blink, e.onCaret)
	e.publishLocked()
}

func (e *Engine) publishLocked() {
	s := e.machine.State()
	if e.onChange != nil {
		e.onChange(s)
	}
	for _, ch := range e.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}

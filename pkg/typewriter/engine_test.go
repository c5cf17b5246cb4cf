package typewriter

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualClock fires timers only when Advance moves virtual time past them.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	clock   *manualClock
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTimer{clock: c, at: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by d, firing due timers in order.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		sort.Slice(c.timers, func(i, j int) bool {
			if c.timers[i].at == c.timers[j].at {
				return c.timers[i].seq < c.timers[j].seq
			}
			return c.timers[i].at < c.timers[j].at
		})
		var next *manualTimer
		for _, t := range c.timers {
			if !t.stopped && !t.fired && t.at <= target {
				next = t
				break
			}
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		next.fired = true
		c.now = next.at
		c.mu.Unlock()
		next.f()
	}
}

// pending counts timers that are armed and not yet fired.
func (c *manualClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func newTestEngine(t *testing.T, suggestions []string) (*Engine, *manualClock) {
	t.Helper()
	clock := &manualClock{}
	e := NewEngine(suggestions, WithClock(clock))
	t.Cleanup(e.Close)
	return e, clock
}

func TestEngineScenario(t *testing.T) {
	e, clock := newTestEngine(t, []string{"AB", "CD"})
	e.SetShouldAnimate(true)
	assert.Equal(t, "", e.State().Text)

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, "A", e.State().Text)

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, "AB", e.State().Text)
	assert.False(t, e.State().Typing)

	clock.Advance(2499 * time.Millisecond)
	assert.Equal(t, "AB", e.State().Text)
	clock.Advance(time.Millisecond)
	assert.Equal(t, "", e.State().Text)
	assert.Equal(t, 1, e.State().Index)

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, "C", e.State().Text)
	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, "CD", e.State().Text)

	clock.Advance(2500 * time.Millisecond)
	assert.Equal(t, "", e.State().Text)
	assert.Equal(t, 0, e.State().Index)
}

func TestEngineGatingOffMidTyping(t *testing.T) {
	e, clock := newTestEngine(t, []string{"AB", "CD"})
	e.SetShouldAnimate(true)

	clock.Advance(75 * time.Millisecond)
	require.Equal(t, "A", e.State().Text)

	e.SetShouldAnimate(false)
	assert.Equal(t, "", e.State().Text)

	clock.Advance(200 * time.Millisecond)
	assert.Equal(t, "", e.State().Text)
	assert.Equal(t, PhaseIdle, e.State().Phase)
}

func TestEngineGatingOffMidHold(t *testing.T) {
	e, clock := newTestEngine(t, []string{"AB", "CD"})
	e.SetShouldAnimate(true)
	clock.Advance(1000 * time.Millisecond)
	require.Equal(t, "AB", e.State().Text)

	e.SetShouldAnimate(false)
	assert.Equal(t, "", e.State().Text)

	clock.Advance(5 * time.Second)
	assert.Equal(t, "", e.State().Text)
	assert.Equal(t, 0, e.State().Index, "hold timer was cancelled")
}

func TestEngineReducedMotion(t *testing.T) {
	e, clock := newTestEngine(t, []string{"AB"})
	e.SetReducedMotion(true)

	e.SetShouldAnimate(true)
	clock.Advance(time.Second)
	assert.Equal(t, "", e.State().Text)

	e.SetShouldAnimate(false)
	e.SetShouldAnimate(true)
	clock.Advance(time.Second)
	assert.Equal(t, "", e.State().Text)

	e.SetReducedMotion(false)
	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, "A", e.State().Text)
}

func TestEngineCaretBlinksOnlyWhenNotTyping(t *testing.T) {
	e, clock := newTestEngine(t, []string{"ABCDEFGHIJKLMNOPQRSTUVWXYZ"})

	assert.True(t, e.State().CaretVisible)
	clock.Advance(750 * time.Millisecond)
	assert.False(t, e.State().CaretVisible, "caret blinks while idle")
	clock.Advance(750 * time.Millisecond)
	assert.True(t, e.State().CaretVisible)
	clock.Advance(750 * time.Millisecond)
	assert.False(t, e.State().CaretVisible)

	e.SetShouldAnimate(true)
	assert.True(t, e.State().CaretVisible, "caret forced visible when typing starts")
	for i := 0; i < 25; i++ {
		clock.Advance(50 * time.Millisecond)
		assert.True(t, e.State().Typing)
		assert.True(t, e.State().CaretVisible)
	}

	clock.Advance(50 * time.Millisecond)
	require.False(t, e.State().Typing)
	assert.True(t, e.State().CaretVisible)
	clock.Advance(749 * time.Millisecond)
	assert.True(t, e.State().CaretVisible)
	clock.Advance(time.Millisecond)
	assert.False(t, e.State().CaretVisible)
}

func TestEngineKeepsAtMostOneTimerPerKind(t *testing.T) {
	e, clock := newTestEngine(t, []string{"AB", "CD"})

	for i := 0; i < 10; i++ {
		e.SetShouldAnimate(i%2 == 0)
		assert.LessOrEqual(t, clock.pending(), 2)
	}
	e.SetShouldAnimate(true)
	e.SetShouldAnimate(true)
	assert.Equal(t, 1, clock.pending(), "typing: reveal timer only")

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, clock.pending(), "holding: reveal and caret timers")

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, "AB", e.State().Text, "no accelerated reveal")
}

func TestEngineCloseStopsAllMutation(t *testing.T) {
	e, clock := newTestEngine(t, []string{"AB", "CD"})
	e.SetShouldAnimate(true)
	clock.Advance(50 * time.Millisecond)

	updates, cancel := e.Subscribe()
	defer cancel()
	<-updates

	e.Close()
	assert.Equal(t, 0, clock.pending())

	before := e.State()
	clock.Advance(10 * time.Second)
	assert.Equal(t, before, e.State())

	e.SetShouldAnimate(true)
	clock.Advance(time.Second)
	assert.Equal(t, before, e.State())

	_, open := <-updates
	assert.False(t, open, "subscriptions are closed on teardown")
}

func TestEngineSubscribeDeliversLatestState(t *testing.T) {
	e, clock := newTestEngine(t, []string{"AB"})
	updates, cancel := e.Subscribe()

	first := <-updates
	assert.Equal(t, "", first.Text)

	e.SetShouldAnimate(true)
	clock.Advance(100 * time.Millisecond)

	latest := <-updates
	assert.Equal(t, "AB", latest.Text)

	cancel()
	cancel()
	_, open := <-updates
	assert.False(t, open)
}

func TestEngineOnChange(t *testing.T) {
	var seen []string
	clock := &manualClock{}
	e := NewEngine([]string{"AB"}, WithClock(clock), WithOnChange(func(s State) {
		seen = append(seen, s.Text)
	}))
	defer e.Close()

	e.SetShouldAnimate(true)
	clock.Advance(100 * time.Millisecond)

	assert.Contains(t, seen, "A")
	assert.Equal(t, "AB", seen[len(seen)-1])
}

func TestTimerSlotInvalidatesStaleCallbacks(t *testing.T) {
	clock := &manualClock{}
	var slot timerSlot
	fired := 0

	var stale uint64
	slot.arm(clock, time.Second, func(gen uint64) {
		stale = gen
	})
	slot.arm(clock, time.Second, func(gen uint64) {
		if slot.current(gen) {
			fired++
		}
	})

	clock.Advance(time.Second)
	assert.Equal(t, 1, fired)
	assert.Zero(t, stale, "first timer was stopped before firing")
	assert.False(t, slot.current(0))
}

package typewriter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drive runs the machine the way a timer host would, without timers: it fires
// the reveal timer after each planned delay and reports elapsed virtual time.
func drive(t *testing.T, m *Machine, p Plan, until time.Duration) (time.Duration, Plan) {
	t.Helper()
	var elapsed time.Duration
	for p.RevealArmed && elapsed+p.RevealAfter <= until {
		elapsed += p.RevealAfter
		m.Advance()
		p = m.Reconcile()
	}
	return elapsed, p
}

func TestMachineRevealsOneCharacterPerTick(t *testing.T) {
	m := NewMachine([]string{"Hello"})
	m.SetShouldAnimate(true)
	p := m.Reconcile()

	require.True(t, p.RevealArmed)
	assert.Equal(t, TypingSpeed, p.RevealAfter)
	assert.Equal(t, "", m.State().Text)
	assert.True(t, m.State().Typing)

	want := []string{"H", "He", "Hel", "Hell", "Hello"}
	for _, w := range want {
		m.Advance()
		p = m.Reconcile()
		assert.Equal(t, w, m.State().Text)
	}

	assert.False(t, m.State().Typing)
	assert.Equal(t, PhaseHolding, m.Phase())
	assert.Equal(t, PauseDuration, p.RevealAfter)
}

func TestMachineScenarioTwoSuggestions(t *testing.T) {
	m := NewMachine([]string{"AB", "CD"})
	m.SetShouldAnimate(true)
	p := m.Reconcile()

	elapsed, p := drive(t, m, p, 100*time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, elapsed)
	assert.Equal(t, "AB", m.State().Text)
	assert.False(t, m.State().Typing)

	elapsed2, p := drive(t, m, p, 2500*time.Millisecond)
	assert.Equal(t, 2500*time.Millisecond, elapsed2)
	assert.Equal(t, "", m.State().Text)
	assert.Equal(t, 1, m.State().Index)

	_, p = drive(t, m, p, 50*time.Millisecond)
	assert.Equal(t, "C", m.State().Text)
	_, p = drive(t, m, p, 50*time.Millisecond)
	assert.Equal(t, "CD", m.State().Text)

	_, _ = drive(t, m, p, 2500*time.Millisecond)
	assert.Equal(t, "", m.State().Text)
	assert.Equal(t, 0, m.State().Index)
}

func TestMachineGatingClearsTextAndKeepsIndex(t *testing.T) {
	m := NewMachine([]string{"AB", "CD"})
	m.SetShouldAnimate(true)
	p := m.Reconcile()
	_, p = drive(t, m, p, 2600*time.Millisecond)
	_, _ = drive(t, m, p, 50*time.Millisecond)
	require.Equal(t, "C", m.State().Text)

	m.SetShouldAnimate(false)
	p = m.Reconcile()

	assert.False(t, p.RevealArmed)
	assert.Equal(t, "", m.State().Text)
	assert.False(t, m.State().Typing)
	assert.Equal(t, PhaseIdle, m.Phase())

	m.Advance()
	assert.Equal(t, "", m.State().Text, "advance while idle must not reveal")

	m.SetShouldAnimate(true)
	m.Reconcile()
	m.Advance()
	assert.Equal(t, "C", m.State().Text, "resumes on the same suggestion")
}

func TestMachineReducedMotionOverridesGating(t *testing.T) {
	m := NewMachine(DefaultSuggestions)
	m.SetReducedMotion(true)

	for _, v := range []bool{true, false, true} {
		m.SetShouldAnimate(v)
		p := m.Reconcile()
		assert.False(t, p.RevealArmed)
		m.Advance()
		assert.Equal(t, "", m.State().Text)
	}
}

func TestMachineEmptySuggestionsStayIdle(t *testing.T) {
	m := NewMachine(nil)
	m.SetShouldAnimate(true)
	p := m.Reconcile()

	assert.False(t, p.RevealArmed)
	assert.Equal(t, PhaseIdle, m.Phase())
	assert.NotPanics(t, m.Advance)
	assert.Equal(t, "", m.State().Text)
}

func TestMachineCaretPlan(t *testing.T) {
	m := NewMachine([]string{"A"})

	p := m.Reconcile()
	require.True(t, p.RestartCaret, "caret starts at mount")
	assert.True(t, p.CaretArmed)
	assert.Equal(t, CaretBlinkSpeed, p.CaretAfter)

	m.ToggleCaret()
	assert.False(t, m.State().CaretVisible)

	m.SetShouldAnimate(true)
	p = m.Reconcile()
	assert.True(t, p.RestartCaret)
	assert.False(t, p.CaretArmed, "no blinking while typing")
	assert.True(t, m.State().CaretVisible, "caret forced visible while typing")

	m.ToggleCaret()
	assert.True(t, m.State().CaretVisible)

	m.Advance()
	p = m.Reconcile()
	assert.True(t, p.RestartCaret)
	assert.True(t, p.CaretArmed)

	p = m.Reconcile()
	assert.False(t, p.RestartCaret, "caret timer kept while the typing flag is unchanged")
}

func TestMachineRevealsGraphemeClusters(t *testing.T) {
	m := NewMachine([]string{"a🎞️"})
	m.SetShouldAnimate(true)
	m.Reconcile()

	m.Advance()
	m.Reconcile()
	assert.Equal(t, "a", m.State().Text)

	m.Advance()
	m.Reconcile()
	assert.Equal(t, "a🎞️", m.State().Text)
	assert.Equal(t, PhaseHolding, m.Phase())
}

func TestMachineCyclesBackToFirstSuggestion(t *testing.T) {
	m := NewMachine(DefaultSuggestions)
	m.SetShouldAnimate(true)
	p := m.Reconcile()

	for i := 0; i < len(DefaultSuggestions); i++ {
		assert.Equal(t, i, m.State().Index)
		for p.RevealAfter == TypingSpeed {
			m.Advance()
			p = m.Reconcile()
		}
		assert.Equal(t, DefaultSuggestions[i], m.State().Text)
		m.Advance()
		p = m.Reconcile()
	}
	assert.Equal(t, 0, m.State().Index)
}

func TestWithTimingKeepsDefaultsForZeroFields(t *testing.T) {
	m := NewMachine([]string{"A"}, WithTiming(Timing{Hold: time.Second}))
	assert.Equal(t, Timing{Reveal: TypingSpeed, Hold: time.Second, Blink: CaretBlinkSpeed}, m.Timing())
}

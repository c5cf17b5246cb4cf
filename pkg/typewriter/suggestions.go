// Package typewriter animates rotating placeholder suggestions the way a person
// would type them: one character at a time, a pause on the finished text, then the
// next suggestion. Machine holds the state; Engine and the bubbletea component in
// pkg/gui/components drive it with timers.
package typewriter

import (
	"time"

	"github.com/rivo/uniseg"
)

// DefaultSuggestions are the thumbnail prompts shown in an empty prompt field.
var DefaultSuggestions = []string{
	"Trying to live on $10 a day 💸",
	"Reacting to my old cringy videos 😳",
	"Epic win moments in Fortnite 🎮",
	"How to edit videos for beginners 🎞️",
	"I built an app in 24 hours 💻",
	"My 30-day fitness transformation 💪",
	"Exploring hidden gems in my city 🏙️",
	"Top 10 budget travel hacks ✈️",
}

const (
	TypingSpeed     = 50 * time.Millisecond   // per revealed character
	PauseDuration   = 2500 * time.Millisecond // full suggestion shown before the next one
	CaretBlinkSpeed = 750 * time.Millisecond
)

// Timing groups the three cadences of the animation.
type Timing struct {
	Reveal time.Duration
	Hold   time.Duration
	Blink  time.Duration
}

// DefaultTiming returns the standard cadences.
func DefaultTiming() Timing {
	return Timing{
		Reveal: TypingSpeed,
		Hold:   PauseDuration,
		Blink:  CaretBlinkSpeed,
	}
}

func (t Timing) withDefaults() Timing {
	d := DefaultTiming()
	if t.Reveal <= 0 {
		t.Reveal = d.Reveal
	}
	if t.Hold <= 0 {
		t.Hold = d.Hold
	}
	if t.Blink <= 0 {
		t.Blink = d.Blink
	}
	return t
}

// splitCharacters breaks s into user-perceived characters so an emoji with a
// variation selector is revealed in one step.
func splitCharacters(s string) []string {
	chars := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		chars = append(chars, g.Str())
	}
	return chars
}

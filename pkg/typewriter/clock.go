package typewriter

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The zero Engine uses the wall clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// timerSlot owns at most one pending timer. Arming it stops the previous one.
type timerSlot struct {
	timer Timer
	gen   uint64
}

// arm cancels any pending timer, then schedules f. The returned generation is
// what the callback must still see for its firing to count.
func (s *timerSlot) arm(c Clock, d time.Duration, f func(gen uint64)) {
	s.stop()
	gen := s.gen
	s.timer = c.AfterFunc(d, func() { f(gen) })
}

// stop cancels the pending timer and invalidates callbacks already in flight.
func (s *timerSlot) stop() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

func (s *timerSlot) current(gen uint64) bool {
	return s.timer != nil && s.gen == gen
}

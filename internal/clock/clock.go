// Package clock supplies wall-clock time as float64 seconds.
package clock

import "time"

type Clock interface {
	Now() float64
}

// System reports seconds elapsed since it was created, using the monotonic
// reading carried by time.Time.
type System struct {
	epoch time.Time
}

func NewSystem() *System {
	return &System{epoch: time.Now()}
}

func (s *System) Now() float64 {
	return time.Since(s.epoch).Seconds()
}

// Manual is a clock that only moves when told to.
type Manual struct {
	t float64
}

func NewManual(start float64) *Manual {
	return &Manual{t: start}
}

func (m *Manual) Now() float64       { return m.t }
func (m *Manual) Set(t float64)      { m.t = t }
func (m *Manual) Advance(dt float64) { m.t += dt }

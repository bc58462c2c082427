package service

import "time"

// Clock abstracts wall-clock time. Every selection-phase computation and
// window transition depends on "now", so tests inject a fixed clock instead
// of sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() Clock {
	return systemClock{}
}

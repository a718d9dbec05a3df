package pursuer

import "time"

// Clock schedules one-shot callbacks. Callbacks may run on any goroutine; the
// spawner marshals them onto the loop through Config.Dispatch.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback created by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// Random is the randomness source used for spawn placement.
// *math/rand/v2.Rand satisfies it.
type Random interface {
	IntN(n int) int
	Float64() float64
}

type systemClock struct{}

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

package ports

import "time"

// Clock returns the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the Clock backed by time.Now.
var SystemClock Clock = ClockFunc(time.Now)

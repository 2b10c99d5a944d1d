package engine

import "time"

// DefaultStepInterval is the playback cadence of animated movements.
const DefaultStepInterval = 100 * time.Millisecond

// Clock supplies the current time to the playback timer.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

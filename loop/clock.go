package loop

import "time"

// Clock abstracts the monotonic time source and the scheduler's only
// suspension point. Tests substitute a fake; production code uses the
// system clock.
type Clock interface {
	// Now returns the current time. Readings must be monotonic.
	Now() time.Time

	// Sleep blocks for the given duration.
	Sleep(d time.Duration)
}

// systemClock is the real time source.
type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock is the Clock used unless WithClock overrides it.
var SystemClock Clock = systemClock{}

package loop

import "time"

// scheduler holds the drift-corrected tick state. boundary is the last
// consumed tick boundary; a tick becomes due once a full tick length has
// accumulated past it.
type scheduler struct {
	tickLength time.Duration
	boundary   time.Time
}

// start anchors the first tick boundary at now.
func (s *scheduler) start(now time.Time) {
	s.boundary = now
}

// next decides whether a tick is due at now.
//
// When due, it consumes the largest multiple of the tick length that has
// elapsed since the boundary, advances the boundary by exactly that amount,
// and returns (delta, true). The sub-tick remainder stays behind the
// boundary and carries over, so a 3.5-tick overshoot yields one tick of
// 3 tick lengths with half a tick carried forward. A single long stall
// collapses into one oversized delta rather than a burst of catch-up ticks.
//
// When not due, it returns the time remaining until the tick boundary and
// false; the caller sleeps for exactly that long.
func (s *scheduler) next(now time.Time) (time.Duration, bool) {
	elapsed := now.Sub(s.boundary)
	if elapsed < s.tickLength {
		return s.tickLength - elapsed, false
	}
	delta := elapsed - elapsed%s.tickLength
	s.boundary = s.boundary.Add(delta)
	return delta, true
}

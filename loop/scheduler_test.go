package loop

import (
	"testing"
	"time"
)

func TestSchedulerNotDueBeforeFullTick(t *testing.T) {
	base := time.Unix(0, 0)
	s := scheduler{tickLength: 10 * time.Millisecond}
	s.start(base)

	remaining, due := s.next(base.Add(3 * time.Millisecond))
	if due {
		t.Fatal("tick due before a full tick length elapsed")
	}
	if remaining != 7*time.Millisecond {
		t.Errorf("remaining = %s, want 7ms", remaining)
	}
}

func TestSchedulerDueAtExactBoundary(t *testing.T) {
	base := time.Unix(0, 0)
	s := scheduler{tickLength: 10 * time.Millisecond}
	s.start(base)

	delta, due := s.next(base.Add(10 * time.Millisecond))
	if !due {
		t.Fatal("tick not due at exact boundary")
	}
	if delta != 10*time.Millisecond {
		t.Errorf("delta = %s, want 10ms", delta)
	}
}

func TestSchedulerRemainderCarriesOver(t *testing.T) {
	base := time.Unix(0, 0)
	s := scheduler{tickLength: 10 * time.Millisecond}
	s.start(base)

	// 35ms elapsed: consume 30ms, carry 5ms.
	delta, due := s.next(base.Add(35 * time.Millisecond))
	if !due {
		t.Fatal("tick not due after 3.5 tick lengths")
	}
	if delta != 30*time.Millisecond {
		t.Errorf("delta = %s, want 30ms", delta)
	}

	// 6ms later the carried 5ms pushes elapsed to 11ms: one more tick.
	delta, due = s.next(base.Add(41 * time.Millisecond))
	if !due {
		t.Fatal("carried remainder lost: tick not due at 41ms")
	}
	if delta != 10*time.Millisecond {
		t.Errorf("delta = %s, want 10ms", delta)
	}

	// Carried remainder is now 1ms; 8ms later only 9ms accumulated.
	remaining, due := s.next(base.Add(49 * time.Millisecond))
	if due {
		t.Fatal("tick due with only 9ms accumulated")
	}
	if remaining != 1*time.Millisecond {
		t.Errorf("remaining = %s, want 1ms", remaining)
	}
}

func TestSchedulerStallCoalesces(t *testing.T) {
	base := time.Unix(0, 0)
	s := scheduler{tickLength: 10 * time.Millisecond}
	s.start(base)

	delta, due := s.next(base.Add(1 * time.Second))
	if !due {
		t.Fatal("tick not due after a 1s stall")
	}
	if delta != 1*time.Second {
		t.Errorf("delta = %s, want 1s (a stall is one oversized tick, not a burst)", delta)
	}

	// The stall leaves no backlog.
	if _, due := s.next(base.Add(1*time.Second + 5*time.Millisecond)); due {
		t.Error("tick due immediately after the stall was consumed")
	}
}

func TestSchedulerDeltasArePositiveMultiples(t *testing.T) {
	const tick = 7 * time.Millisecond
	base := time.Unix(0, 0)
	s := scheduler{tickLength: tick}
	s.start(base)

	increments := []time.Duration{
		3 * time.Millisecond,
		4 * time.Millisecond,
		1 * time.Millisecond,
		20 * time.Millisecond,
		6 * time.Millisecond,
		6 * time.Millisecond,
		6 * time.Millisecond,
		100 * time.Millisecond,
		7 * time.Millisecond,
	}

	now := base
	var total time.Duration
	for i, inc := range increments {
		now = now.Add(inc)
		delta, due := s.next(now)
		if !due {
			continue
		}
		if delta <= 0 {
			t.Fatalf("step %d: delta = %s, want positive", i, delta)
		}
		if delta%tick != 0 {
			t.Fatalf("step %d: delta = %s, not a multiple of %s", i, delta, tick)
		}
		total += delta
	}

	// Consumed time never exceeds real elapsed time.
	if elapsed := now.Sub(base); total > elapsed {
		t.Errorf("consumed %s, but only %s elapsed", total, elapsed)
	}
}

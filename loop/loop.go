package loop

import (
	"sync/atomic"
	"time"

	"github.com/pulseloop/pulse/display"
	"github.com/pulseloop/pulse/input"
	"github.com/pulseloop/pulse/logging"
	"github.com/pulseloop/pulse/reactive"
)

// ApplicationLoop is the capability interface a loop exposes to host
// applications: reactive endpoints for time, window geometry, and input,
// plus the blocking Start operation.
//
// The interface is polymorphic over the button representation B; *Loop
// implements it with B = input.Button.
type ApplicationLoop[B any] interface {
	// Ticks is the stream of elapsed-time deltas, one per tick. Every
	// delta is a positive multiple of the configured tick length.
	Ticks() *reactive.Stream[time.Duration]

	// Position is the window position cell, seeded with (0,0).
	Position() *reactive.Cell[display.Point]

	// Size is the window size cell, seeded with (0,0).
	Size() *reactive.Cell[display.Size]

	// Buttons is the stream of button state transitions.
	Buttons() *reactive.Stream[input.ButtonEvent[B]]

	// Characters is the stream of text input characters.
	Characters() *reactive.Stream[rune]

	// Cursor is the pointer position cell, seeded with (0,0).
	Cursor() *reactive.Cell[display.Point]

	// Wheel is the most-recent wheel delta cell, seeded with 0.
	Wheel() *reactive.Cell[int]

	// Focus is the window focus cell, seeded with true.
	Focus() *reactive.Cell[bool]

	// Start runs the loop until the display reports a close request.
	Start() error
}

// Loop converts a polled display into reactive endpoints on a fixed tick.
// Create one with New; each instance runs Start at most once.
type Loop struct {
	display display.Display
	clock   Clock
	logger  *logging.Logger
	sched   scheduler
	started atomic.Bool

	ticks   *reactive.Sink[time.Duration]
	winpos  *reactive.Sink[display.Point]
	winsize *reactive.Sink[display.Size]
	buttons *reactive.Sink[input.ButtonEvent[input.Button]]
	motion  *reactive.Sink[display.Point]
	wheel   *reactive.Sink[int]
	focus   *reactive.Sink[bool]
	chars   *reactive.Sink[rune]

	position *reactive.Cell[display.Point]
	size     *reactive.Cell[display.Size]
	cursor   *reactive.Cell[display.Point]
	wheelVal *reactive.Cell[int]
	focused  *reactive.Cell[bool]
}

var _ ApplicationLoop[input.Button] = (*Loop)(nil)

// Option configures a Loop.
type Option func(*Loop)

// WithClock substitutes the time source. Intended for tests.
func WithClock(c Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// WithLogger sets the loop's logger. Defaults to logging.Nop.
func WithLogger(log *logging.Logger) Option {
	return func(l *Loop) {
		l.logger = log
	}
}

// New creates a loop over d with the given tick length.
//
// The tick length is fixed for the instance's lifetime and must be positive;
// zero or negative lengths are rejected (they would fault the drift
// correction).
func New(d display.Display, tickLength time.Duration, opts ...Option) (*Loop, error) {
	if d == nil {
		return nil, ErrNilDisplay
	}
	if tickLength <= 0 {
		return nil, ErrNonPositiveTickLength
	}

	l := &Loop{
		display: d,
		clock:   SystemClock,
		logger:  logging.Nop,
		sched:   scheduler{tickLength: tickLength},
		ticks:   reactive.NewSink[time.Duration](),
		winpos:  reactive.NewSink[display.Point](),
		winsize: reactive.NewSink[display.Size](),
		buttons: reactive.NewSink[input.ButtonEvent[input.Button]](),
		motion:  reactive.NewSink[display.Point](),
		wheel:   reactive.NewSink[int](),
		focus:   reactive.NewSink[bool](),
		chars:   reactive.NewSink[rune](),
	}
	for _, opt := range opts {
		opt(l)
	}

	// Cells are created once so every accessor call observes the same
	// history and the seed values are in place before the first event.
	l.position = l.winpos.Stream().Hold(display.Point{})
	l.size = l.winsize.Stream().Hold(display.Size{})
	l.cursor = l.motion.Stream().Hold(display.Point{})
	l.wheelVal = l.wheel.Stream().Hold(0)
	l.focused = l.focus.Stream().Hold(true)

	return l, nil
}

// TickLength returns the configured tick length.
func (l *Loop) TickLength() time.Duration {
	return l.sched.tickLength
}

// Ticks returns the stream of per-tick elapsed-time deltas.
func (l *Loop) Ticks() *reactive.Stream[time.Duration] {
	return l.ticks.Stream()
}

// Position returns the window position cell.
func (l *Loop) Position() *reactive.Cell[display.Point] {
	return l.position
}

// Size returns the window size cell.
func (l *Loop) Size() *reactive.Cell[display.Size] {
	return l.size
}

// Buttons returns the button transition stream.
func (l *Loop) Buttons() *reactive.Stream[input.ButtonEvent[input.Button]] {
	return l.buttons.Stream()
}

// Characters returns the text input stream.
func (l *Loop) Characters() *reactive.Stream[rune] {
	return l.chars.Stream()
}

// Cursor returns the pointer position cell.
func (l *Loop) Cursor() *reactive.Cell[display.Point] {
	return l.cursor
}

// Wheel returns the most-recent wheel delta cell.
func (l *Loop) Wheel() *reactive.Cell[int] {
	return l.wheelVal
}

// Focus returns the window focus cell.
func (l *Loop) Focus() *reactive.Cell[bool] {
	return l.focused
}

// Start runs the scheduler until the display reports a close request.
//
// Each iteration either sleeps until the next tick boundary or, when a tick
// is due, polls the display, dispatches every raw event to its endpoint,
// emits the tick delta, and blocks on the display's render barrier. The
// first close request in a batch terminates the loop immediately: later
// events in that batch are not dispatched and no tick is emitted for it.
//
// Start blocks until termination and may be called once per instance;
// further calls return ErrAlreadyStarted.
func (l *Loop) Start() error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	l.logger.Debug("loop starting, tick length %s", l.sched.tickLength)
	l.sched.start(l.clock.Now())

	for {
		now := l.clock.Now()
		delta, due := l.sched.next(now)
		if !due {
			l.clock.Sleep(delta)
			continue
		}

		for _, ev := range l.display.PollEvents() {
			if ev.Type == display.EventClosed {
				l.logger.Debug("close requested, loop stopping")
				return nil
			}
			l.dispatch(ev)
		}

		l.ticks.Send(delta)
		l.display.Synchronize()
	}
}

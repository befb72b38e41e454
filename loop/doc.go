// Package loop implements a drift-corrected, fixed-tick application loop
// that converts a polled display into reactive endpoints.
//
// A Loop owns one sink per endpoint. Start runs the tick scheduler: it
// sleeps until the next tick boundary is due, drains the display's event
// queue, classifies each raw event onto exactly one endpoint, emits the
// elapsed time on the tick stream, and then blocks on the display's render
// barrier before timing the next tick. A window-close request terminates
// Start; the remainder of that poll batch is abandoned.
//
// # Drift correction
//
// Each tick carries the elapsed time as an exact multiple of the configured
// tick length. When the loop falls behind (a long frame, a debugger pause),
// the backlog collapses into a single oversized delta instead of a burst of
// catch-up ticks, and the sub-tick remainder carries over to the next
// boundary, so timing error never accumulates.
//
// # Consuming endpoints
//
//	d, err := terminal.New()
//	l, err := loop.New(d, 16*time.Millisecond)
//	...
//	l.Buttons().Subscribe(func(ev input.ButtonEvent[input.Button]) { ... })
//	size := l.Size() // cell, reads (0,0) until the first resize
//	err = l.Start()  // blocks until the display reports a close request
package loop

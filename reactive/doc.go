// Package reactive provides the push-based primitives the application loop
// exposes: sinks, streams, and cells.
//
// A Sink is an exclusive-write endpoint. Sending on a sink delivers the value
// synchronously and in order to every observer registered on the sink's
// Stream before Send returns. A Stream is the multicast, read-only view of a
// sink: any number of observers may subscribe, all of them see the same
// values in the same order, and an observer attached after an emission never
// sees it. A Cell is the continuously-readable view of a stream: it holds the
// most recently emitted value, or its initial value if nothing has been
// emitted yet.
//
// # Subscriptions
//
// Subscribe returns a Subscription handle. Cancelling the handle unregisters
// the observer; a cancelled subscription receives no further values and
// cannot be resumed. Subscriptions may also be paused and resumed.
//
//	ticks := loop.Ticks()
//	sub, err := ticks.Subscribe(func(d time.Duration) { ... })
//	...
//	sub.Cancel()
//
// # Delivery
//
// Delivery is synchronous and single-threaded from the sender's point of
// view: observers run in the goroutine that called Send, in registration
// order. Observer panics propagate to the sender unless the sink was built
// with WithPanicHandler.
//
// # Combinators
//
// Streams can be transformed without consuming them: Map and Filter derive
// new streams, Merge interleaves two streams in arrival order, and Hold
// converts a stream into a cell.
package reactive

package display

// Display is the windowing collaborator the loop polls each tick.
type Display interface {
	// PollEvents drains and returns all currently queued raw events.
	// It must not block; an empty queue yields an empty batch.
	PollEvents() []Event

	// Synchronize blocks until pending render work for the current frame
	// is complete. The loop calls it once per tick, after emitting the
	// tick, and will not time the next tick until it returns.
	Synchronize()
}

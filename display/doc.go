// Package display defines the boundary between the application loop and the
// windowing system: the raw platform event vocabulary and the Display
// interface the loop polls.
//
// The loop treats a Display as an external collaborator. PollEvents must
// drain all currently queued events without blocking; Synchronize must block
// until pending render work for the current frame is complete, which is the
// loop's backpressure barrier.
//
// Null is an in-memory Display for tests and headless hosts: events are
// posted to it programmatically and drained in batches.
package display

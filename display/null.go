package display

import "sync"

// Null is an in-memory Display for tests and headless hosts.
// Events posted with Post are returned by the next PollEvents call.
type Null struct {
	mu      sync.Mutex
	pending []Event
	polls   int
	syncs   int

	// OnSynchronize, if set, runs inside every Synchronize call.
	OnSynchronize func()
}

// NewNull creates an empty null display.
func NewNull() *Null {
	return &Null{}
}

// Post queues events for the next poll.
func (n *Null) Post(events ...Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, events...)
}

// PollEvents drains the queued events.
func (n *Null) PollEvents() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.polls++
	batch := n.pending
	n.pending = nil
	return batch
}

// Synchronize counts the call and runs OnSynchronize if set.
func (n *Null) Synchronize() {
	n.mu.Lock()
	n.syncs++
	hook := n.OnSynchronize
	n.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// Polls returns how many times PollEvents has been called.
func (n *Null) Polls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.polls
}

// Synchronizations returns how many times Synchronize has been called.
func (n *Null) Synchronizations() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.syncs
}

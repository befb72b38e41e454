package reactive

import "sync/atomic"

// SubscriptionState represents the state of a subscription.
type SubscriptionState int32

const (
	// SubscriptionStateActive means the subscription is receiving values.
	SubscriptionStateActive SubscriptionState = iota

	// SubscriptionStatePaused means the subscription is temporarily not receiving values.
	SubscriptionStatePaused

	// SubscriptionStateCancelled means the subscription has been permanently cancelled.
	SubscriptionStateCancelled
)

// String returns a human-readable state name.
func (s SubscriptionState) String() string {
	switch s {
	case SubscriptionStateActive:
		return "active"
	case SubscriptionStatePaused:
		return "paused"
	case SubscriptionStateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Subscription is the handle returned by Stream.Subscribe.
// Cancelling it unregisters the observer.
type Subscription struct {
	id    string
	state atomic.Int32

	// unregister removes the observer from its broadcaster.
	// Set once at construction, called at most once.
	unregister func(id string)
}

// newSubscription creates an active subscription.
func newSubscription(id string, unregister func(id string)) *Subscription {
	s := &Subscription{id: id, unregister: unregister}
	s.state.Store(int32(SubscriptionStateActive))
	return s
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// State returns the current subscription state.
func (s *Subscription) State() SubscriptionState {
	return SubscriptionState(s.state.Load())
}

// IsActive returns true if the subscription can receive values.
func (s *Subscription) IsActive() bool {
	return s.State() == SubscriptionStateActive
}

// Pause temporarily stops value delivery to this subscription.
func (s *Subscription) Pause() {
	s.state.CompareAndSwap(int32(SubscriptionStateActive), int32(SubscriptionStatePaused))
}

// Resume restarts value delivery after a pause.
func (s *Subscription) Resume() {
	s.state.CompareAndSwap(int32(SubscriptionStatePaused), int32(SubscriptionStateActive))
}

// Cancel permanently cancels the subscription.
// After cancellation, the subscription cannot be resumed.
func (s *Subscription) Cancel() {
	prev := s.state.Swap(int32(SubscriptionStateCancelled))
	if SubscriptionState(prev) != SubscriptionStateCancelled && s.unregister != nil {
		s.unregister(s.id)
	}
}

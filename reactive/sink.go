package reactive

import (
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// PanicHandler is called when an observer panics during delivery.
// value is the value being delivered, recovered is the panic value.
type PanicHandler func(value any, recovered any, stack []byte)

// Sink is an exclusive-write endpoint that originates a Stream.
// The zero value is not usable; create sinks with NewSink.
type Sink[T any] struct {
	b *broadcaster[T]
}

// SinkOption configures a Sink.
type SinkOption func(*sinkConfig)

type sinkConfig struct {
	panicHandler PanicHandler
}

// WithPanicHandler installs a handler for observer panics.
// Without one, observer panics propagate to the sender.
func WithPanicHandler(h PanicHandler) SinkOption {
	return func(c *sinkConfig) {
		c.panicHandler = h
	}
}

// NewSink creates a new sink.
func NewSink[T any](opts ...SinkOption) *Sink[T] {
	var cfg sinkConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Sink[T]{b: &broadcaster[T]{panicHandler: cfg.panicHandler}}
}

// Send delivers v to every observer registered on the sink's stream,
// in registration order. Send returns after all observers have run.
func (s *Sink[T]) Send(v T) {
	s.b.send(v)
}

// Stream returns the multicast read view of the sink.
// Every call returns a view of the same underlying emissions.
func (s *Sink[T]) Stream() *Stream[T] {
	return &Stream[T]{b: s.b}
}

// Stats returns delivery counters for the sink.
func (s *Sink[T]) Stats() Stats {
	return s.b.stats()
}

// Stats contains sink delivery counters.
type Stats struct {
	// Sent is the number of values sent on the sink.
	Sent uint64

	// Delivered is the number of observer notifications completed.
	Delivered uint64

	// ObserverPanics is the number of observer panics recovered.
	ObserverPanics uint64

	// ActiveObservers is the current number of non-cancelled observers.
	ActiveObservers int
}

// broadcaster holds the observer registry shared by a sink and its streams.
// Observers are kept in registration order; delivery walks a snapshot so
// observers may subscribe or cancel from inside a callback.
type broadcaster[T any] struct {
	mu        sync.Mutex
	observers []*observer[T]

	panicHandler PanicHandler

	sent           atomic.Uint64
	delivered      atomic.Uint64
	observerPanics atomic.Uint64
}

// observer pairs a callback with its subscription handle.
type observer[T any] struct {
	sub *Subscription
	fn  func(T)
}

// attach registers fn and returns its subscription handle.
func (b *broadcaster[T]) attach(fn func(T)) *Subscription {
	sub := newSubscription(uuid.NewString(), b.remove)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers = append(b.observers, &observer[T]{sub: sub, fn: fn})
	return sub
}

// remove unregisters the observer with the given subscription ID.
func (b *broadcaster[T]) remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, o := range b.observers {
		if o.sub.ID() == id {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

// send delivers v to a snapshot of the current observers.
func (b *broadcaster[T]) send(v T) {
	b.mu.Lock()
	snapshot := make([]*observer[T], len(b.observers))
	copy(snapshot, b.observers)
	b.mu.Unlock()

	b.sent.Add(1)

	for _, o := range snapshot {
		if !o.sub.IsActive() {
			continue
		}
		b.notify(o, v)
	}
}

// notify runs a single observer, recovering panics if a handler is set.
func (b *broadcaster[T]) notify(o *observer[T], v T) {
	if b.panicHandler != nil {
		defer func() {
			if r := recover(); r != nil {
				b.observerPanics.Add(1)
				b.panicHandler(v, r, debug.Stack())
			}
		}()
	}
	o.fn(v)
	b.delivered.Add(1)
}

// stats returns a snapshot of the delivery counters.
func (b *broadcaster[T]) stats() Stats {
	b.mu.Lock()
	active := 0
	for _, o := range b.observers {
		if o.sub.IsActive() {
			active++
		}
	}
	b.mu.Unlock()

	return Stats{
		Sent:            b.sent.Load(),
		Delivered:       b.delivered.Load(),
		ObserverPanics:  b.observerPanics.Load(),
		ActiveObservers: active,
	}
}

package reactive

// Stream is a multicast, in-order, replay-free sequence of values observable
// by any number of subscribers. Streams are views: holding one does not
// consume it, and all views of the same sink observe the same emissions.
type Stream[T any] struct {
	b *broadcaster[T]
}

// Subscribe registers fn to be called for every subsequent emission.
// Values emitted before Subscribe are never replayed.
func (s *Stream[T]) Subscribe(fn func(T)) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilObserver
	}
	return s.b.attach(fn), nil
}

// Hold converts the stream into a cell seeded with initial.
// The cell tracks the most recently emitted value from this point on.
func (s *Stream[T]) Hold(initial T) *Cell[T] {
	c := &Cell[T]{value: initial, updates: s}
	s.b.attach(c.set)
	return c
}

// Map derives a stream whose values are fn applied to each emission of s.
func Map[T, U any](s *Stream[T], fn func(T) U) *Stream[U] {
	out := NewSink[U]()
	s.b.attach(func(v T) {
		out.Send(fn(v))
	})
	return out.Stream()
}

// Filter derives a stream carrying only the emissions of s for which pred
// returns true.
func Filter[T any](s *Stream[T], pred func(T) bool) *Stream[T] {
	out := NewSink[T]()
	s.b.attach(func(v T) {
		if pred(v) {
			out.Send(v)
		}
	})
	return out.Stream()
}

// Merge derives a stream interleaving the emissions of a and b in arrival
// order.
func Merge[T any](a, b *Stream[T]) *Stream[T] {
	out := NewSink[T]()
	a.b.attach(out.Send)
	b.b.attach(out.Send)
	return out.Stream()
}

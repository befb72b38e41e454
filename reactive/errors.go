package reactive

import "errors"

// Sentinel errors for the reactive primitives.
var (
	// ErrNilObserver is returned when a nil observer function is subscribed.
	ErrNilObserver = errors.New("observer cannot be nil")
)

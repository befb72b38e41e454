package loop

import "errors"

// Sentinel errors for loop construction and lifecycle.
var (
	// ErrNilDisplay is returned when New is given a nil display.
	ErrNilDisplay = errors.New("display cannot be nil")

	// ErrNonPositiveTickLength is returned when New is given a tick length
	// of zero or less.
	ErrNonPositiveTickLength = errors.New("tick length must be positive")

	// ErrAlreadyStarted is returned by Start when the loop has already run.
	// A loop instance runs at most once.
	ErrAlreadyStarted = errors.New("loop already started")
)

package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidTickLength is returned when the configured tick length is
	// zero or negative.
	ErrInvalidTickLength = errors.New("tick_length must be positive")
)

package config

import "time"

// Duration is a time.Duration that unmarshals from TOML strings like "16ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds the host-tunable loop settings.
type Config struct {
	// TickLength is the fixed tick length. Must be positive.
	TickLength Duration `toml:"tick_length"`

	// Mouse enables mouse event reporting on the display.
	Mouse bool `toml:"mouse"`

	// Paste enables bracketed paste on the display.
	Paste bool `toml:"paste"`

	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickLength: Duration(16 * time.Millisecond),
		Mouse:      true,
		Paste:      true,
		LogLevel:   "info",
	}
}

// Validate checks the configuration for values the loop would reject.
func (c Config) Validate() error {
	if c.TickLength.Std() <= 0 {
		return ErrInvalidTickLength
	}
	return nil
}

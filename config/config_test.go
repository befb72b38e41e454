package config

import (
	"errors"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.TickLength.Std() != 16*time.Millisecond {
		t.Errorf("TickLength = %s, want 16ms", cfg.TickLength.Std())
	}
	if !cfg.Mouse {
		t.Error("Mouse = false, want true")
	}
	if !cfg.Paste {
		t.Error("Paste = false, want true")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tick    Duration
		wantErr error
	}{
		{"positive", Duration(time.Millisecond), nil},
		{"zero", 0, ErrInvalidTickLength},
		{"negative", Duration(-time.Second), ErrInvalidTickLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.TickLength = tt.tick
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDurationUnmarshalText(t *testing.T) {
	tests := []struct {
		text    string
		want    time.Duration
		wantErr bool
	}{
		{"16ms", 16 * time.Millisecond, false},
		{"1s", time.Second, false},
		{"250us", 250 * time.Microsecond, false},
		{"fast", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		var d Duration
		err := d.UnmarshalText([]byte(tt.text))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && d.Std() != tt.want {
			t.Errorf("UnmarshalText(%q) = %s, want %s", tt.text, d.Std(), tt.want)
		}
	}
}

func TestDurationMarshalText(t *testing.T) {
	d := Duration(16 * time.Millisecond)
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "16ms" {
		t.Errorf("MarshalText() = %q, want 16ms", text)
	}
}

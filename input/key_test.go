package input

import "testing"

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Key
	}{
		{"lowercase a", 'a', KeyA},
		{"lowercase z", 'z', KeyZ},
		{"uppercase A", 'A', KeyA},
		{"uppercase M", 'M', KeyM},
		{"digit 0", '0', Key0},
		{"digit 9", '9', Key9},
		{"space", ' ', KeySpace},
		{"punctuation", '!', KeyNone},
		{"non-latin", 'é', KeyNone},
		{"control", '\n', KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyFromRune(tt.r); got != tt.want {
				t.Errorf("KeyFromRune(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyA, "A"},
		{KeyZ, "Z"},
		{Key0, "0"},
		{Key7, "7"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyEscape, "Esc"},
		{KeySpace, "Space"},
		{KeyPageDown, "PgDn"},
		{KeyNone, "None"},
		{Key(999), "Key(999)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

package input

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseExtra1
	MouseExtra2
)

// String returns a human-readable button name.
func (b MouseButton) String() string {
	switch b {
	case MouseNone:
		return "None"
	case MouseLeft:
		return "Left"
	case MouseMiddle:
		return "Middle"
	case MouseRight:
		return "Right"
	case MouseExtra1:
		return "Extra1"
	case MouseExtra2:
		return "Extra2"
	default:
		return "Unknown"
	}
}

// State represents a button state transition.
type State int

const (
	// Pressed means the button went down.
	Pressed State = iota

	// Released means the button went up.
	Released
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// Source identifies which device a button belongs to.
type Source int

const (
	SourceKeyboard Source = iota
	SourceMouse
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceMouse:
		return "mouse"
	default:
		return "unknown"
	}
}

// Button is the closed sum of physical buttons: a keyboard key or a mouse
// button, tagged by Source. Buttons are immutable values compared with ==.
type Button struct {
	Source Source
	Key    Key
	Mouse  MouseButton
}

// Keyboard constructs the button for a keyboard key.
func Keyboard(k Key) Button {
	return Button{Source: SourceKeyboard, Key: k}
}

// Mouse constructs the button for a mouse button.
func Mouse(b MouseButton) Button {
	return Button{Source: SourceMouse, Mouse: b}
}

// String returns a human-readable button name, e.g. "key A" or "mouse Left".
func (b Button) String() string {
	switch b.Source {
	case SourceKeyboard:
		return "key " + b.Key.String()
	case SourceMouse:
		return "mouse " + b.Mouse.String()
	default:
		return "unknown"
	}
}

// ButtonEvent records one state transition of one button. Events for the
// same button are emitted in raw-event arrival order.
//
// The button representation is a type parameter so implementations with a
// different closed button set can reuse the record unchanged.
type ButtonEvent[B any] struct {
	// Button identifies the physical button.
	Button B

	// State is the transition that occurred.
	State State
}

package display

import "github.com/pulseloop/pulse/input"

// Point is a position in window coordinates.
type Point struct {
	X, Y int
}

// Size is a window extent.
type Size struct {
	Width, Height int
}

// EventType identifies the type of a raw platform event.
type EventType int

const (
	// EventNone is an event carrying no information. It is dropped.
	EventNone EventType = iota

	// EventKey is a keyboard key press or release.
	EventKey

	// EventMouseButton is a pointer button press or release.
	EventMouseButton

	// EventMouseMotion is a pointer position report.
	EventMouseMotion

	// EventWheel is a signed scroll wheel delta.
	EventWheel

	// EventFocus is a window focus change.
	EventFocus

	// EventResize is a window size change.
	EventResize

	// EventMove is a window position change.
	EventMove

	// EventChar is a character of text input.
	EventChar

	// EventClosed is a window-close request. It terminates the loop.
	EventClosed
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventKey:
		return "key"
	case EventMouseButton:
		return "mouse-button"
	case EventMouseMotion:
		return "mouse-motion"
	case EventWheel:
		return "wheel"
	case EventFocus:
		return "focus"
	case EventResize:
		return "resize"
	case EventMove:
		return "move"
	case EventChar:
		return "char"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Event is one raw platform event. Only the fields relevant to Type are
// meaningful; everything else is left zero. Displays may produce event types
// beyond this vocabulary; the loop silently ignores what it does not know.
type Event struct {
	Type EventType

	// Key event fields. Key is input.KeyNone when the platform could not
	// resolve a key code; such events are dropped by the loop.
	Key   input.Key
	State input.State

	// Mouse button event fields.
	Button input.MouseButton

	// Wheel event fields.
	Delta int

	// Motion and move event fields.
	X, Y int

	// Resize event fields.
	Width, Height int

	// Focus event fields.
	Focused bool

	// Char event fields.
	Rune rune
}

// KeyEvent builds a key press/release event.
func KeyEvent(k input.Key, s input.State) Event {
	return Event{Type: EventKey, Key: k, State: s}
}

// MouseButtonEvent builds a pointer button press/release event.
func MouseButtonEvent(b input.MouseButton, s input.State) Event {
	return Event{Type: EventMouseButton, Button: b, State: s}
}

// MotionEvent builds a pointer motion event.
func MotionEvent(x, y int) Event {
	return Event{Type: EventMouseMotion, X: x, Y: y}
}

// WheelEvent builds a wheel delta event.
func WheelEvent(delta int) Event {
	return Event{Type: EventWheel, Delta: delta}
}

// FocusEvent builds a focus change event.
func FocusEvent(focused bool) Event {
	return Event{Type: EventFocus, Focused: focused}
}

// ResizeEvent builds a window resize event.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// MoveEvent builds a window move event.
func MoveEvent(x, y int) Event {
	return Event{Type: EventMove, X: x, Y: y}
}

// CharEvent builds a character input event.
func CharEvent(r rune) Event {
	return Event{Type: EventChar, Rune: r}
}

// ClosedEvent builds a window-close request.
func ClosedEvent() Event {
	return Event{Type: EventClosed}
}

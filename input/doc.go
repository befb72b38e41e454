// Package input defines the closed classification of physical buttons the
// loop reports: keyboard keys and mouse buttons, their press/release state
// transitions, and the ButtonEvent record emitted on the button stream.
//
// Button is a comparable value type; two events for the same physical button
// compare equal on the Button field. ButtonEvent is generic over the button
// representation so alternative loop implementations can substitute their own
// closed button set while keeping the stream contract.
package input

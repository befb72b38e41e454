// Package terminal provides a display.Display backed by a tcell terminal
// screen.
//
// Terminals differ from windowing systems in a few ways the adapter papers
// over:
//
//   - Key release is not reported, so every key event synthesizes a
//     press/release pair on the raw event stream.
//   - Mouse events report button state rather than transitions; the adapter
//     diffs consecutive state masks into press/release events and position
//     changes into motion events.
//   - Bracketed paste arrives as start/end markers around a flood of rune
//     key events; the adapter buffers the flood and replays it as character
//     events, one per grapheme cluster.
//   - There is no window-close button; a configurable close key (Ctrl+C by
//     default) produces the close request.
//
// Synchronize flushes the screen, which is the loop's render barrier.
package terminal

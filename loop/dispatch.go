package loop

import (
	"github.com/pulseloop/pulse/display"
	"github.com/pulseloop/pulse/input"
)

// dispatch classifies one raw event into at most one sink write.
//
// Key events without a resolvable key code and event types outside the
// classification table are dropped silently. Close requests never reach
// dispatch; Start handles them before classification.
func (l *Loop) dispatch(ev display.Event) {
	switch ev.Type {
	case display.EventKey:
		if ev.Key == input.KeyNone {
			return
		}
		l.buttons.Send(input.ButtonEvent[input.Button]{
			Button: input.Keyboard(ev.Key),
			State:  ev.State,
		})
	case display.EventMouseButton:
		l.buttons.Send(input.ButtonEvent[input.Button]{
			Button: input.Mouse(ev.Button),
			State:  ev.State,
		})
	case display.EventWheel:
		l.wheel.Send(ev.Delta)
	case display.EventMouseMotion:
		l.motion.Send(display.Point{X: ev.X, Y: ev.Y})
	case display.EventFocus:
		l.focus.Send(ev.Focused)
	case display.EventResize:
		l.winsize.Send(display.Size{Width: ev.Width, Height: ev.Height})
	case display.EventMove:
		l.winpos.Send(display.Point{X: ev.X, Y: ev.Y})
	case display.EventChar:
		l.chars.Send(ev.Rune)
	default:
		// Outside the classification table: dropped.
	}
}

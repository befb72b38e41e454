package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/pulseloop/pulse/display"
	"github.com/pulseloop/pulse/input"
)

// convert translates one tcell event into zero or more raw display events.
// Callers hold d.mu.
func (d *Display) convert(ev tcell.Event) []display.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return d.convertKey(e)
	case *tcell.EventMouse:
		return d.convertMouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return []display.Event{display.ResizeEvent(w, h)}
	case *tcell.EventPaste:
		return d.convertPaste(e)
	case *tcell.EventFocus:
		return []display.Event{display.FocusEvent(e.Focused)}
	default:
		return nil
	}
}

// convertKey turns a key event into a press/release pair, plus a character
// event for printable runes. Terminals do not report key-up, so the release
// is synthesized immediately after the press.
func (d *Display) convertKey(e *tcell.EventKey) []display.Event {
	if e.Key() == d.cfg.closeKey {
		return []display.Event{display.ClosedEvent()}
	}

	if d.pasting {
		// Pasted content arrives as rune keys between the bracketed
		// paste markers; buffer it for convertPaste.
		switch e.Key() {
		case tcell.KeyRune:
			d.pasteBuf = append(d.pasteBuf, e.Rune())
		case tcell.KeyEnter:
			d.pasteBuf = append(d.pasteBuf, '\n')
		case tcell.KeyTab:
			d.pasteBuf = append(d.pasteBuf, '\t')
		}
		return nil
	}

	if e.Key() == tcell.KeyRune {
		r := e.Rune()
		key := input.KeyFromRune(r)
		out := []display.Event{display.KeyEvent(key, input.Pressed)}
		if unicode.IsPrint(r) {
			out = append(out, display.CharEvent(r))
		}
		return append(out, display.KeyEvent(key, input.Released))
	}

	key := mapKey(e.Key())
	return []display.Event{
		display.KeyEvent(key, input.Pressed),
		display.KeyEvent(key, input.Released),
	}
}

// tcellButtons orders the reportable buttons for mask diffing.
var tcellButtons = []struct {
	mask   tcell.ButtonMask
	button input.MouseButton
}{
	{tcell.ButtonPrimary, input.MouseLeft},
	{tcell.ButtonMiddle, input.MouseMiddle},
	{tcell.ButtonSecondary, input.MouseRight},
	{tcell.Button4, input.MouseExtra1},
	{tcell.Button5, input.MouseExtra2},
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// convertMouse diffs a mouse state report against the previous one:
// position changes become motion events, wheel bits become signed deltas,
// and held-button changes become press/release transitions.
func (d *Display) convertMouse(e *tcell.EventMouse) []display.Event {
	var out []display.Event

	x, y := e.Position()
	if !d.hasPointer || x != d.lastX || y != d.lastY {
		d.hasPointer = true
		d.lastX, d.lastY = x, y
		out = append(out, display.MotionEvent(x, y))
	}

	btns := e.Buttons()
	if btns&tcell.WheelUp != 0 {
		out = append(out, display.WheelEvent(1))
	}
	if btns&tcell.WheelDown != 0 {
		out = append(out, display.WheelEvent(-1))
	}

	// Wheel bits are momentary; only real buttons participate in the diff.
	held := btns &^ wheelMask
	for _, b := range tcellButtons {
		was := d.lastButtons&b.mask != 0
		is := held&b.mask != 0
		switch {
		case is && !was:
			out = append(out, display.MouseButtonEvent(b.button, input.Pressed))
		case was && !is:
			out = append(out, display.MouseButtonEvent(b.button, input.Released))
		}
	}
	d.lastButtons = held

	return out
}

// convertPaste handles the bracketed paste markers. The start marker opens
// the buffer; the end marker replays the buffered text as character events,
// one per grapheme cluster (a multi-rune cluster collapses to its base rune,
// since the character endpoint is one rune wide).
func (d *Display) convertPaste(e *tcell.EventPaste) []display.Event {
	if e.Start() {
		d.pasting = true
		d.pasteBuf = d.pasteBuf[:0]
		return nil
	}

	d.pasting = false
	var out []display.Event
	g := uniseg.NewGraphemes(string(d.pasteBuf))
	for g.Next() {
		out = append(out, display.CharEvent(g.Runes()[0]))
	}
	return out
}

// mapKey resolves a special tcell key to its key code, or input.KeyNone when
// the key is outside the standard set.
func mapKey(k tcell.Key) input.Key {
	switch k {
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyEnter:
		return input.KeyEnter
	case tcell.KeyTab:
		return input.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.KeyBackspace
	case tcell.KeyDelete:
		return input.KeyDelete
	case tcell.KeyInsert:
		return input.KeyInsert
	case tcell.KeyHome:
		return input.KeyHome
	case tcell.KeyEnd:
		return input.KeyEnd
	case tcell.KeyPgUp:
		return input.KeyPageUp
	case tcell.KeyPgDn:
		return input.KeyPageDown
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyF1:
		return input.KeyF1
	case tcell.KeyF2:
		return input.KeyF2
	case tcell.KeyF3:
		return input.KeyF3
	case tcell.KeyF4:
		return input.KeyF4
	case tcell.KeyF5:
		return input.KeyF5
	case tcell.KeyF6:
		return input.KeyF6
	case tcell.KeyF7:
		return input.KeyF7
	case tcell.KeyF8:
		return input.KeyF8
	case tcell.KeyF9:
		return input.KeyF9
	case tcell.KeyF10:
		return input.KeyF10
	case tcell.KeyF11:
		return input.KeyF11
	case tcell.KeyF12:
		return input.KeyF12
	default:
		return input.KeyNone
	}
}

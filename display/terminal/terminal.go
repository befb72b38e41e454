package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/pulseloop/pulse/display"
)

// Display implements display.Display over a tcell screen.
type Display struct {
	mu     sync.Mutex
	screen tcell.Screen
	cfg    config

	// Conversion state (guarded by mu).
	lastButtons tcell.ButtonMask
	lastX       int
	lastY       int
	hasPointer  bool
	pasting     bool
	pasteBuf    []rune
}

type config struct {
	mouse    bool
	paste    bool
	closeKey tcell.Key
}

// Option configures a Display.
type Option func(*config)

// WithoutMouse disables mouse event reporting.
func WithoutMouse() Option {
	return func(c *config) {
		c.mouse = false
	}
}

// WithoutPaste disables bracketed paste.
func WithoutPaste() Option {
	return func(c *config) {
		c.paste = false
	}
}

// WithCloseKey sets the key that produces the close request.
// Defaults to Ctrl+C.
func WithCloseKey(k tcell.Key) Option {
	return func(c *config) {
		c.closeKey = k
	}
}

// New allocates a terminal display over a freshly created tcell screen.
// Call Init before use and Fini when done.
func New(opts ...Option) (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewWithScreen(screen, opts...), nil
}

// NewWithScreen wraps an existing screen, e.g. a tcell simulation screen in
// tests.
func NewWithScreen(screen tcell.Screen, opts ...Option) *Display {
	cfg := config{mouse: true, paste: true, closeKey: tcell.KeyCtrlC}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Display{screen: screen, cfg: cfg}
}

// Init initializes the screen and enables the configured reporting modes.
func (d *Display) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	if d.cfg.mouse {
		d.screen.EnableMouse()
	}
	if d.cfg.paste {
		d.screen.EnablePaste()
	}
	d.screen.EnableFocus()
	return nil
}

// Fini releases the screen and restores the terminal state.
func (d *Display) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.screen.Fini()
}

// Screen exposes the underlying tcell screen for host drawing.
func (d *Display) Screen() tcell.Screen {
	return d.screen
}

// PollEvents drains the screen's queue without blocking.
func (d *Display) PollEvents() []display.Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	var batch []display.Event
	for d.screen.HasPendingEvent() {
		ev := d.screen.PollEvent()
		if ev == nil {
			break
		}
		batch = append(batch, d.convert(ev)...)
	}
	return batch
}

// Synchronize flushes pending drawing to the terminal.
func (d *Display) Synchronize() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.screen.Show()
}

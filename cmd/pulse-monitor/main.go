// Package main is a small host application that visualizes every endpoint
// the loop exposes: it renders the live cursor, wheel, focus, size and
// button state on each tick.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pulseloop/pulse/config"
	"github.com/pulseloop/pulse/display/terminal"
	"github.com/pulseloop/pulse/input"
	"github.com/pulseloop/pulse/logging"
	"github.com/pulseloop/pulse/loop"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		tickFlag    time.Duration
		logLevel    string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "pulse.toml", "Path to configuration file")
	flag.DurationVar(&tickFlag, "tick", 0, "Tick length override (e.g. 16ms)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("pulse-monitor %s\n", version)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	if tickFlag > 0 {
		cfg.TickLength = config.Duration(tickFlag)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logFile, err := os.OpenFile("pulse-monitor.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
		return 1
	}
	defer logFile.Close()

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Output: logFile,
		Prefix: "pulse-monitor",
	})

	var dispOpts []terminal.Option
	if !cfg.Mouse {
		dispOpts = append(dispOpts, terminal.WithoutMouse())
	}
	if !cfg.Paste {
		dispOpts = append(dispOpts, terminal.WithoutPaste())
	}
	disp, err := terminal.New(dispOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating display: %v\n", err)
		return 1
	}
	if err := disp.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing display: %v\n", err)
		return 1
	}
	defer disp.Fini()

	l, err := loop.New(disp, cfg.TickLength.Std(), loop.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating loop: %v\n", err)
		return 1
	}

	// Live log-level updates while the monitor runs.
	if watcher, werr := config.NewWatcher(configPath, config.WithWatcherLogger(logger)); werr == nil {
		defer watcher.Close()
		_, _ = watcher.Changes().Subscribe(func(c config.Config) {
			logger.SetLevel(logging.ParseLevel(c.LogLevel))
		})
	} else if !errors.Is(werr, os.ErrNotExist) {
		logger.Warn("config watcher unavailable: %v", werr)
	}

	m := newMonitor(l, disp.Screen())
	m.subscribe()

	logger.Info("starting, tick length %s", cfg.TickLength.Std())
	if err := l.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Info("stopped")
	return 0
}

// monitor renders the endpoint dashboard.
type monitor struct {
	loop   *loop.Loop
	screen tcell.Screen

	ticks      uint64
	lastDelta  time.Duration
	lastButton string
	lastChar   rune
}

func newMonitor(l *loop.Loop, screen tcell.Screen) *monitor {
	return &monitor{loop: l, screen: screen, lastButton: "-"}
}

// subscribe wires the monitor to every endpoint. Rendering happens on the
// tick stream, so a frame is drawn exactly once per tick.
func (m *monitor) subscribe() {
	_, _ = m.loop.Buttons().Subscribe(func(ev input.ButtonEvent[input.Button]) {
		m.lastButton = fmt.Sprintf("%s %s", ev.Button, ev.State)
	})
	_, _ = m.loop.Characters().Subscribe(func(r rune) {
		m.lastChar = r
	})
	_, _ = m.loop.Ticks().Subscribe(func(d time.Duration) {
		m.ticks++
		m.lastDelta = d
		m.render()
	})
}

// render draws the dashboard; the loop's Synchronize call flushes it.
func (m *monitor) render() {
	m.screen.Clear()

	cursor := m.loop.Cursor().Now()
	size := m.loop.Size().Now()
	focus := m.loop.Focus().Now()
	wheel := m.loop.Wheel().Now()

	style := tcell.StyleDefault
	m.drawText(0, 0, style.Bold(true), "pulse-monitor (Ctrl+C to quit)")
	m.drawText(0, 2, style, fmt.Sprintf("ticks   %d (last delta %s)", m.ticks, m.lastDelta))
	m.drawText(0, 3, style, fmt.Sprintf("size    %dx%d", size.Width, size.Height))
	m.drawText(0, 4, style, fmt.Sprintf("cursor  (%d,%d)", cursor.X, cursor.Y))
	m.drawText(0, 5, style, fmt.Sprintf("wheel   %d", wheel))
	m.drawText(0, 6, style, fmt.Sprintf("focus   %v", focus))
	m.drawText(0, 7, style, fmt.Sprintf("button  %s", m.lastButton))
	if m.lastChar != 0 {
		m.drawText(0, 8, style, fmt.Sprintf("char    %q", m.lastChar))
	}

	m.drawMarker(cursor.X, cursor.Y, size.Width, size.Height)
}

// drawMarker paints the cursor position with a hue derived from it.
func (m *monitor) drawMarker(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	hue := 360.0 * float64(x) / float64(w)
	sat := 0.4 + 0.6*float64(y)/float64(h)
	c := colorfulHSV(hue, sat)
	style := tcell.StyleDefault.Foreground(c).Bold(true)
	m.screen.SetContent(x, y, '█', nil, style)
}

func (m *monitor) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		m.screen.SetContent(x+i, y, r, nil, style)
	}
}

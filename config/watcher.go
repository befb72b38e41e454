package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pulseloop/pulse/logging"
	"github.com/pulseloop/pulse/reactive"
)

// defaultDebounce coalesces the write bursts editors produce when saving.
const defaultDebounce = 100 * time.Millisecond

// Watcher monitors a configuration file and publishes each successfully
// reloaded Config on a reactive stream. Failed reloads are logged and
// skipped; the last good configuration stays in effect.
type Watcher struct {
	loader   *Loader
	path     string
	debounce time.Duration
	logger   *logging.Logger

	fsw  *fsnotify.Watcher
	sink *reactive.Sink[Config]

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the reload debounce interval.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithWatcherLogger sets the watcher's logger. Defaults to logging.Nop.
func WithWatcherLogger(log *logging.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = log
	}
}

// WithWatcherFS sets the file system the reload loader reads from.
func WithWatcherFS(fs FileSystem) WatcherOption {
	return func(w *Watcher) {
		w.loader = NewLoaderWithFS(fs, w.path)
	}
}

// NewWatcher starts watching the configuration file at path.
//
// The containing directory is watched rather than the file itself, since
// editors typically replace files on save.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	w := &Watcher{
		loader:   NewLoader(abs),
		path:     abs,
		debounce: defaultDebounce,
		logger:   logging.Nop,
		sink:     reactive.NewSink[Config](),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.fsw, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.fsw.Add(filepath.Dir(abs)); err != nil {
		_ = w.fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Changes returns the stream of reloaded configurations.
func (w *Watcher) Changes() *reactive.Stream[Config] {
	return w.sink.Stream()
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

// run debounces file events and reloads.
func (w *Watcher) run() {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-w.done:
			timer.Stop()
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error: %v", err)

		case <-timer.C:
			w.reload()
		}
	}
}

// reload loads the file and publishes the result on success.
func (w *Watcher) reload() {
	cfg, err := w.loader.Load()
	if err != nil {
		w.logger.Warn("config reload failed, keeping previous: %v", err)
		return
	}
	w.logger.Info("config reloaded from %s", w.path)
	w.sink.Send(cfg)
}

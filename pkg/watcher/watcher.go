package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher re-runs a callback whenever a watched file is written.
// Bursts of events within the debounce interval trigger one call.
type Watcher struct {
	fsw       *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	timers    map[string]*time.Timer
	debounce  time.Duration
}

// New creates a watcher
func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		fsw:       fsw,
		callbacks: make(map[string]func(string)),
		timers:    make(map[string]*time.Timer),
		debounce:  debounce,
	}, nil
}

// Watch registers onChange for path. The parent directory is watched so
// that editors replacing the file by rename are noticed too.
func (w *Watcher) Watch(path string, onChange func(string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.fsw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}
	w.callbacks[absPath] = onChange

	return nil
}

// Run dispatches events until ctx is done or the watcher is closed
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.schedule(filepath.Clean(event.Name))
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	callback, ok := w.callbacks[path]
	if !ok {
		return
	}

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		log.Debug().Str("path", path).Msg("file changed")
		callback(path)
	})
}

// Close stops the watcher and pending callbacks
func (w *Watcher) Close() error {
	w.mu.Lock()
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.mu.Unlock()

	return w.fsw.Close()
}

// Package watch turns changes to a theme profile on disk into theme-change signals.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"lookandfeel/internal/logger"
)

// DefaultDebounce coalesces the burst of events editors produce on a single save.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports changes to one file. The parent directory is watched so that editors which
// save by renaming a temporary file over the original are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	log      *log.Logger

	mu      sync.Mutex
	signals int
}

// New creates a Watcher for path that calls onChange after each debounced burst of writes.
func New(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watch path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		log:      logger.NewStyledLogger("watch"),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Signals returns how many change signals have been delivered.
func (w *Watcher) Signals() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.signals
}

// Run watches until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.log.Info("Watching profile", "path", w.path)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("Profile event", "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.mu.Lock()
			w.signals++
			w.mu.Unlock()
			w.log.Info("Profile changed", "path", w.path)
			if w.onChange != nil {
				w.onChange()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("Watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}

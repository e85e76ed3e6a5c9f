// ABOUTME: fsnotify-based watcher for config hot-reload
// ABOUTME: Watches parent directories so editors that replace files are seen; changes are debounced

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	pilog "github.com/mauromedda/hecto-go/internal/log"
)

// DefaultDebounce collapses the burst of events a single save produces.
const DefaultDebounce = 250 * time.Millisecond

// Watcher calls onChange once per burst of changes to any watched file.
type Watcher struct {
	fsw       *fsnotify.Watcher
	paths     map[string]struct{}
	onChange  func()
	debounce  time.Duration
	closeOnce sync.Once
}

// NewWatcher starts watching the directories holding paths. Directories that
// do not exist are skipped, so files created later under them are missed
// until the next start.
func NewWatcher(paths []string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		paths:    make(map[string]struct{}, len(paths)),
		onChange: onChange,
		debounce: DefaultDebounce,
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		p = filepath.Clean(p)
		w.paths[p] = struct{}{}
		dirs[filepath.Dir(p)] = struct{}{}
	}
	for dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			pilog.Debug("config watcher: skipping %s: %v", dir, err)
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
		pilog.Debug("config watcher: watching %s", dir)
	}
	return w, nil
}

// SetDebounce overrides DefaultDebounce. Call before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run dispatches change notifications until ctx is done, then closes the
// watcher. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			w.onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			pilog.Warn("config watcher: %v", err)
		}
	}
}

// Close stops the underlying fsnotify watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if _, ok := w.paths[filepath.Clean(ev.Name)]; !ok {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}

package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a Store when its backing file changes on disk.
//
// Edits made through Store.Update are indistinguishable from external
// edits at the file system level; the store's change comparison keeps a
// reload of identical content from notifying observers twice.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher

	// Debounce window to coalesce rapid write events.
	debounce time.Duration

	// onError receives reload and watch errors, if set.
	onError func(error)

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce window for rapid changes.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets a handler for reload and watch errors.
func WithErrorHandler(fn func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// NewWatcher starts watching the store's backing file.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file on save (write to temp, rename over)
// still produce events.
func NewWatcher(store *Store, opts ...WatcherOption) (*Watcher, error) {
	if store.Path() == "" {
		return nil, ErrNoPath
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		store:    store,
		watcher:  fsw,
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	dir := filepath.Dir(store.Path())
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	target, _ := filepath.Abs(w.store.Path())

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.matches(event, target) {
				continue
			}
			// Restart the debounce window on every matching event.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			if err := w.store.Load(); err != nil {
				w.sendError(err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// matches reports whether a file event concerns the settings file.
func (w *Watcher) matches(event fsnotify.Event, target string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	path, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return path == target
}

func (w *Watcher) sendError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

var (
	// ErrWatcherClosed is returned by operations on a closed watcher.
	ErrWatcherClosed = errors.New("watcher is closed")
	// ErrAlreadyWatching is returned when a directory is added twice.
	ErrAlreadyWatching = errors.New("directory already watched")
	// ErrNotWatching is returned when removing a directory that is not watched.
	ErrNotWatching = errors.New("directory not watched")
)

// defaultDebounce coalesces the burst of events an installer produces when
// it copies a module into place.
const defaultDebounce = 200 * time.Millisecond

// DirWatcher delivers "directory changed" notifications for a set of
// directories. Directories are passed and reported in '/' form, ending with
// '/', exactly as they were added.
type DirWatcher interface {
	Add(dir string) error
	Remove(dir string) error
	Watched() []string
	// Run pumps events until ctx is done or the watcher is closed, calling
	// onChange once per debounced burst per directory.
	Run(ctx context.Context, onChange func(dir string)) error
	Close() error
}

// FSNotifyDirWatcher implements DirWatcher using fsnotify.
type FSNotifyDirWatcher struct {
	mu sync.Mutex

	fsw *fsnotify.Watcher

	// cleaned OS path -> directory as registered by the caller
	dirs map[string]string

	debounce time.Duration
	timers   map[string]*time.Timer
	closed   bool
}

// DirWatcherOption configures an FSNotifyDirWatcher.
type DirWatcherOption func(*FSNotifyDirWatcher)

// WithDebounce sets the quiet period before a change is reported. Zero
// reports every event immediately.
func WithDebounce(d time.Duration) DirWatcherOption {
	return func(w *FSNotifyDirWatcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// NewFSNotifyDirWatcher creates a watcher with no directories registered.
func NewFSNotifyDirWatcher(opts ...DirWatcherOption) (*FSNotifyDirWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	w := &FSNotifyDirWatcher{
		fsw:      fsw,
		dirs:     make(map[string]string),
		debounce: defaultDebounce,
		timers:   make(map[string]*time.Timer),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Add starts watching dir.
func (w *FSNotifyDirWatcher) Add(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	key := osKey(dir)
	if _, ok := w.dirs[key]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyWatching, dir)
	}

	if err := w.fsw.Add(key); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.dirs[key] = dir
	slog.Debug("Watching plugin directory", "dir", dir)

	return nil
}

// Remove stops watching dir. A directory that disappeared from disk is
// already dropped by the kernel; that is not reported as an error.
func (w *FSNotifyDirWatcher) Remove(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	key := osKey(dir)
	if _, ok := w.dirs[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNotWatching, dir)
	}

	delete(w.dirs, key)

	if t := w.timers[dir]; t != nil {
		t.Stop()
		delete(w.timers, dir)
	}

	if err := w.fsw.Remove(key); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
		return fmt.Errorf("unwatch %s: %w", dir, err)
	}

	slog.Debug("Stopped watching plugin directory", "dir", dir)

	return nil
}

// Watched returns the registered directories, sorted.
func (w *FSNotifyDirWatcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	dirs := make([]string, 0, len(w.dirs))
	for _, dir := range w.dirs {
		dirs = append(dirs, dir)
	}

	slices.Sort(dirs)

	return dirs
}

// Run blocks until ctx is cancelled or Close is called. It returns nil in
// both cases.
func (w *FSNotifyDirWatcher) Run(ctx context.Context, onChange func(dir string)) error {
	defer w.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return w.channelClosed("event")
			}

			w.handleEvent(ctx, event, onChange)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return w.channelClosed("error")
			}

			slog.Warn("Directory watcher error", "error", err)
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *FSNotifyDirWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}

	w.closed = true
	w.mu.Unlock()

	w.stopTimers()

	return w.fsw.Close()
}

func (w *FSNotifyDirWatcher) handleEvent(ctx context.Context, event fsnotify.Event, onChange func(dir string)) {
	// Permission changes do not add or remove providers.
	if event.Op == fsnotify.Chmod {
		return
	}

	dir := w.ownerOf(event.Name)
	if dir == "" {
		return
	}

	slog.Debug("Plugin directory event", "dir", dir, "name", event.Name, "op", event.Op.String())

	if w.debounce == 0 {
		onChange(dir)
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	if t := w.timers[dir]; t != nil {
		t.Reset(w.debounce)
		return
	}

	w.timers[dir] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, dir)
		closed := w.closed
		w.mu.Unlock()

		if closed || ctx.Err() != nil {
			return
		}

		onChange(dir)
	})
}

// ownerOf maps an event path to the watched directory it belongs to: either
// the directory itself or its parent.
func (w *FSNotifyDirWatcher) ownerOf(name string) string {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := filepath.Clean(name)
	if dir, ok := w.dirs[key]; ok {
		return dir
	}

	return w.dirs[filepath.Dir(key)]
}

func (w *FSNotifyDirWatcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for dir, t := range w.timers {
		t.Stop()
		delete(w.timers, dir)
	}
}

func (w *FSNotifyDirWatcher) channelClosed(kind string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	return fmt.Errorf("fsnotify %s channel closed unexpectedly", kind)
}

func osKey(dir string) string {
	return filepath.Clean(filepath.FromSlash(dir))
}

var _ DirWatcher = (*FSNotifyDirWatcher)(nil)

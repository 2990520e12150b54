package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"pluginscout.dev/pkg/pluginscout/internal/adapter"
	m "pluginscout.dev/pkg/pluginscout/internal/model"
)

// ErrCacheClosed is returned by AddWatchPath after Close.
var ErrCacheClosed = errors.New("plugin cache is closed")

// Cache maps capability keys to the module that provides them. Lookups
// never wait for scans: results are eventually consistent with the
// directories on disk.
type Cache interface {
	// Find returns the module providing key, or "" when none is known.
	Find(key string) string
	// AddWatchPath registers the directory of path and scans it once.
	AddWatchPath(path string) error
	// RemoveWatchPath unregisters the directory of path, cancels its scan
	// and forgets everything it provided.
	RemoveWatchPath(path string) error
	// ScanDirectory schedules a rescan of the directory of path.
	ScanDirectory(path string)
	// DirectoryChanged reacts to a filesystem change notification.
	DirectoryChanged(path string)
	// RemovePath forgets every entry whose module path starts with prefix.
	RemovePath(prefix string)
	Remove(key string) bool
	Entries() []m.CacheEntry
	WatchPaths() []string
	Status() m.WorkerStatus
	WaitIdle(ctx context.Context) error
	Close() error
}

type discoveryCache struct {
	lock    *SharedLock
	store   *entryStore
	worker  ScanWorker
	watcher adapter.DirWatcher

	watchChanges bool
	// watched maps a directory to whether the watcher subscription is live.
	watched map[string]bool
	closed  bool
}

// NewCache constructs a Cache from opts.
func NewCache(opts Options) (Cache, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("create plugin cache: %w", err)
	}

	store := newEntryStore(opts.Lock)
	s := &scanner{
		fs:     opts.FS,
		loader: NewLockedLoader(opts.Lock, opts.Opener),
		query:  opts.Query,
		filter: opts.FilenameFilter,
		store:  store,
	}

	var worker ScanWorker
	if opts.IsolationMode {
		worker = newInlineWorker(opts.Lock, s.scan)
	} else {
		worker = newBackgroundWorker(opts.Lock, s.scan, opts.CancelTimeout)
	}

	return &discoveryCache{
		lock:         opts.Lock,
		store:        store,
		worker:       worker,
		watcher:      opts.Watcher,
		watchChanges: opts.WatchDirectoryChanges,
		watched:      make(map[string]bool),
	}, nil
}

func (c *discoveryCache) Find(key string) string {
	return c.store.find(key)
}

func (c *discoveryCache) AddWatchPath(path string) error {
	dir := DirectoryPath(path)
	if dir == "" {
		return nil
	}

	c.lock.Lock()
	if c.closed {
		c.lock.Unlock()
		return ErrCacheClosed
	}

	subscribed, known := c.watched[dir]
	if !known {
		c.watched[dir] = false
	}
	c.lock.Unlock()

	var err error
	if c.watchChanges && !subscribed {
		err = c.subscribe(dir)
	}

	c.worker.Enqueue(dir)

	return err
}

func (c *discoveryCache) subscribe(dir string) error {
	if err := c.watcher.Add(dir); err != nil && !errors.Is(err, adapter.ErrAlreadyWatching) {
		slog.Warn("Failed to watch plugin directory", "dir", dir, "error", err)
		return fmt.Errorf("watch plugin dir: %w", err)
	}

	c.lock.Lock()
	_, still := c.watched[dir]
	if still {
		c.watched[dir] = true
	}
	c.lock.Unlock()

	// Removed while subscribing.
	if !still {
		if err := c.watcher.Remove(dir); err != nil {
			slog.Debug("Failed to unwatch plugin directory", "dir", dir, "error", err)
		}
	}

	return nil
}

func (c *discoveryCache) RemoveWatchPath(path string) error {
	dir := DirectoryPath(path)
	if dir == "" {
		return nil
	}

	c.lock.Lock()
	if c.closed {
		c.lock.Unlock()
		return nil
	}

	subscribed := c.watched[dir]
	delete(c.watched, dir)
	c.lock.Unlock()

	var err error
	if subscribed {
		if removeErr := c.watcher.Remove(dir); removeErr != nil {
			slog.Warn("Failed to unwatch plugin directory", "dir", dir, "error", removeErr)
			err = fmt.Errorf("unwatch plugin dir: %w", removeErr)
		}
	}

	c.worker.Cancel(dir)
	c.RemovePath(dir)

	return err
}

func (c *discoveryCache) ScanDirectory(path string) {
	dir := DirectoryPath(path)
	if dir == "" {
		return
	}

	c.worker.Enqueue(dir)
}

func (c *discoveryCache) DirectoryChanged(path string) {
	slog.Debug("Plugin directory changed", "path", path)
	c.ScanDirectory(path)
}

func (c *discoveryCache) RemovePath(prefix string) {
	removed := c.store.removePrefix(prefix)
	if removed > 0 {
		slog.Debug("Removed plugin cache entries", "prefix", prefix, "count", removed)
	}
}

func (c *discoveryCache) Remove(key string) bool {
	return c.store.remove(key)
}

func (c *discoveryCache) Entries() []m.CacheEntry {
	return c.store.snapshot()
}

func (c *discoveryCache) WatchPaths() []string {
	c.lock.Lock()
	defer c.lock.Unlock()

	dirs := make([]string, 0, len(c.watched))
	for dir := range c.watched {
		dirs = append(dirs, dir)
	}

	slices.Sort(dirs)

	return dirs
}

func (c *discoveryCache) Status() m.WorkerStatus {
	return c.worker.Status()
}

func (c *discoveryCache) WaitIdle(ctx context.Context) error {
	return c.worker.WaitIdle(ctx)
}

// Close stops scanning and drops every watcher subscription. The watcher
// itself is left open for its owner to close.
func (c *discoveryCache) Close() error {
	c.lock.Lock()
	if c.closed {
		c.lock.Unlock()
		return nil
	}

	c.closed = true

	var subscribed []string

	for dir, live := range c.watched {
		if live {
			subscribed = append(subscribed, dir)
		}
	}

	c.watched = make(map[string]bool)
	c.lock.Unlock()

	c.worker.Stop()

	var errs []error

	for _, dir := range subscribed {
		if err := c.watcher.Remove(dir); err != nil && !errors.Is(err, adapter.ErrWatcherClosed) {
			errs = append(errs, fmt.Errorf("unwatch plugin dir %s: %w", dir, err))
		}
	}

	return errors.Join(errs...)
}

package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"pluginscout.dev/pkg/pluginscout/internal/adapter"
)

// ErrCapabilityNotFound is returned when no module provides a capability.
var ErrCapabilityNotFound = errors.New("capability not found")

// Resolver answers "which module provides key" with a verified path. It
// trusts the cache only after re-querying the cached module, falls back to
// searching its directories, and feeds what it learns back into the cache.
type Resolver struct {
	cache      Cache
	loader     *LockedLoader
	query      CapabilityQuery
	fs         adapter.PluginFSAdapter
	filter     func() string
	searchDirs []string
}

// NewResolver constructs a Resolver over cache. opts must be the options
// the cache was built with; searchDirs are '/' separated directories.
func NewResolver(cache Cache, opts Options, searchDirs []string) (*Resolver, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("create resolver: %w", err)
	}

	dirs := make([]string, 0, len(searchDirs))

	for _, dir := range searchDirs {
		dir = ensureDirSuffix(dir)
		if dir != "" && !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	return &Resolver{
		cache:      cache,
		loader:     NewLockedLoader(opts.Lock, opts.Opener),
		query:      opts.Query,
		fs:         opts.FS,
		filter:     opts.FilenameFilter,
		searchDirs: dirs,
	}, nil
}

// Resolve returns the path of a module providing key.
func (r *Resolver) Resolve(ctx context.Context, key string) (string, error) {
	if path := r.cache.Find(key); path != "" {
		if r.provides(path, key) {
			return path, nil
		}

		slog.Info("Cached plugin no longer provides capability", "key", key, "path", path)
		r.updateCachePath(path)
	}

	for _, dir := range r.searchDirs {
		files, err := r.fs.ListCandidates(dir, r.filter())
		if err != nil {
			slog.Debug("Skipping plugin search directory", "dir", dir, "error", err)
			continue
		}

		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return "", fmt.Errorf("resolve %s: %w", key, err)
			}

			if r.provides(file, key) {
				r.updateCachePath(file)
				return file, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrCapabilityNotFound, key)
}

func (r *Resolver) provides(path, key string) bool {
	keys, ok := r.loader.QueryCapabilities(path, r.query)
	return ok && slices.Contains(keys, key)
}

// updateCachePath refreshes the cache for the directory of path: writable
// directories are watched, read-only ones scanned once and missing ones
// forgotten.
func (r *Resolver) updateCachePath(path string) {
	dir := DirectoryPath(path)
	if dir == "" {
		return
	}

	info, err := r.fs.DirInfo(dir)
	if err != nil {
		slog.Warn("Failed to inspect plugin directory", "dir", dir, "error", err)
		return
	}

	switch {
	case info.Exists && info.Writable:
		if err := r.cache.AddWatchPath(dir); err != nil {
			slog.Debug("Plugin directory scanned without watch", "dir", dir, "error", err)
		}
	case info.Exists:
		r.cache.ScanDirectory(dir)
	default:
		if err := r.cache.RemoveWatchPath(dir); err != nil {
			slog.Warn("Failed to forget plugin directory", "dir", dir, "error", err)
		}
	}
}

package domain

import (
	"log/slog"
	"sync/atomic"

	"pluginscout.dev/pkg/pluginscout/internal/adapter"
)

// scanRun is one directory scan. stop is the cooperative cancellation
// request; done is closed when the scan returns.
type scanRun struct {
	dir  string
	stop atomic.Bool
	done chan struct{}
}

func newScanRun(dir string) *scanRun {
	return &scanRun{dir: dir, done: make(chan struct{})}
}

func (r *scanRun) requestStop() {
	r.stop.Store(true)
}

func (r *scanRun) stopped() bool {
	return r.stop.Load()
}

type scanner struct {
	fs     adapter.PluginFSAdapter
	loader *LockedLoader
	query  CapabilityQuery
	filter func() string
	store  *entryStore
}

// scan replaces everything known about run.dir with what the directory
// provides now. Stale entries go first so a module that vanished stops
// resolving even when the directory cannot be listed anymore.
func (s *scanner) scan(run *scanRun) {
	dir := run.dir

	removed := s.store.removePrefix(dir)

	files, err := s.fs.ListCandidates(dir, s.filter())
	if err != nil {
		slog.Warn("Failed to list plugin directory", "dir", dir, "error", err)
		return
	}

	slog.Debug("Scanning plugin directory", "dir", dir, "candidates", len(files), "stale", removed)

	for _, file := range files {
		if run.stopped() {
			slog.Debug("Plugin directory scan cancelled", "dir", dir)
			return
		}

		keys, ok := s.loader.QueryCapabilities(file, s.query)
		if !ok {
			continue
		}

		if !s.store.insert(keys, file, run.stopped) {
			slog.Debug("Plugin directory scan cancelled", "dir", dir)
			return
		}
	}
}

package domain

import (
	"errors"
	"runtime"
	"time"

	"pluginscout.dev/pkg/pluginscout/internal/adapter"
)

// DefaultCancelTimeout bounds how long Cancel and Stop wait for a running
// scan before detaching it.
const DefaultCancelTimeout = 5 * time.Second

var (
	// ErrMissingOpener is returned when Options has no ModuleOpener.
	ErrMissingOpener = errors.New("module opener is required")
	// ErrMissingQuery is returned when Options has no CapabilityQuery.
	ErrMissingQuery = errors.New("capability query is required")
	// ErrMissingWatcher is returned when directory watching is enabled
	// without a DirWatcher.
	ErrMissingWatcher = errors.New("directory watcher is required when watching changes")
)

// Options configures a Cache and its Resolver.
type Options struct {
	// IsolationMode scans on the calling goroutine instead of a background
	// worker.
	IsolationMode bool
	// WatchDirectoryChanges subscribes watched directories with Watcher.
	WatchDirectoryChanges bool
	// FilenameFilter returns the glob candidate module names must match.
	FilenameFilter func() string

	Opener adapter.ModuleOpener
	Query  CapabilityQuery

	FS      adapter.PluginFSAdapter
	Watcher adapter.DirWatcher
	Lock    *SharedLock

	CancelTimeout time.Duration
}

// DefaultFilenameFilter returns the shared library pattern of the running
// platform.
func DefaultFilenameFilter() string {
	return filenameFilterFor(runtime.GOOS)
}

func filenameFilterFor(goos string) string {
	switch goos {
	case "darwin":
		return "*.dylib"
	case "windows":
		return "*.dll"
	default:
		return "*.so"
	}
}

func (o Options) withDefaults() (Options, error) {
	if o.Opener == nil {
		return o, ErrMissingOpener
	}

	if o.Query == nil {
		return o, ErrMissingQuery
	}

	if o.WatchDirectoryChanges && o.Watcher == nil {
		return o, ErrMissingWatcher
	}

	if o.FilenameFilter == nil {
		o.FilenameFilter = DefaultFilenameFilter
	}

	if o.FS == nil {
		o.FS = adapter.NewLocalPluginFSAdapter()
	}

	if o.Lock == nil {
		o.Lock = ProcessLock()
	}

	if o.CancelTimeout <= 0 {
		o.CancelTimeout = DefaultCancelTimeout
	}

	return o, nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"pluginscout.dev/pkg/pluginscout/internal/adapter"
	"pluginscout.dev/pkg/pluginscout/internal/controller"
	"pluginscout.dev/pkg/pluginscout/internal/domain"
)

const (
	loaderGoPlugin = "goplugin"
	loaderManifest = "manifest"
)

var errUnknownLoader = errors.New("unknown loader kind")

func newModuleOpener(kind string, symbol string) (adapter.ModuleOpener, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case loaderGoPlugin, "":
		return adapter.NewGoPluginOpener(), nil
	case loaderManifest:
		return adapter.NewManifestOpener(symbol), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", errUnknownLoader, kind, loaderGoPlugin, loaderManifest)
	}
}

// cacheOptionsFromConfig builds cache options from viper. watcher may be nil,
// in which case directory watching is turned off regardless of config.
func cacheOptionsFromConfig(watcher adapter.DirWatcher) (domain.Options, error) {
	symbol := strings.TrimSpace(viper.GetString(loaderSymbolKey))
	if symbol == "" {
		symbol = adapter.DefaultCapabilitySymbol
	}

	opener, err := newModuleOpener(viper.GetString(loaderKindKey), symbol)
	if err != nil {
		return domain.Options{}, err
	}

	opts := domain.Options{
		IsolationMode:         viper.GetBool(cacheIsolationKey),
		WatchDirectoryChanges: watcher != nil && viper.GetBool(cacheWatchChangesKey),
		Opener:                opener,
		Query:                 domain.SymbolQuery(symbol),
		FS:                    adapter.NewLocalPluginFSAdapter(),
		Watcher:               watcher,
		CancelTimeout:         viper.GetDuration(cacheCancelTimeoutKey),
	}

	if filter := strings.TrimSpace(viper.GetString(cacheFilterKey)); filter != "" {
		opts.FilenameFilter = func() string { return filter }
	}

	return opts, nil
}

func newCacheFromConfig(watcher adapter.DirWatcher) (domain.Cache, domain.Options, error) {
	opts, err := cacheOptionsFromConfig(watcher)
	if err != nil {
		return nil, opts, err
	}

	cache, err := domain.NewCache(opts)
	if err != nil {
		return nil, opts, err
	}

	return cache, opts, nil
}

func closeCache(cache domain.Cache) {
	if err := cache.Close(); err != nil {
		slog.Warn("Failed to close plugin cache", "error", err)
	}
}

// parseDirs turns command line directories into absolute '/' separated
// directory paths ending with '/'. No arguments means the working directory.
func parseDirs(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	dirs := make([]string, 0, len(args))

	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolve directory %s: %w", arg, err)
		}

		dir := filepath.ToSlash(abs)
		if !strings.HasSuffix(dir, "/") {
			dir += "/"
		}

		dirs = append(dirs, dir)
	}

	return dirs, nil
}

func scanAndWait(ctx context.Context, cache domain.Cache, dirs []string) error {
	for _, dir := range dirs {
		cache.ScanDirectory(dir)
	}

	if err := cache.WaitIdle(ctx); err != nil {
		return fmt.Errorf("wait for scans: %w", err)
	}

	return nil
}

func snapshotSource(cache domain.Cache) func() controller.Snapshot {
	return func() controller.Snapshot {
		return controller.Snapshot{
			Entries: cache.Entries(),
			Watched: cache.WatchPaths(),
			Status:  cache.Status(),
		}
	}
}

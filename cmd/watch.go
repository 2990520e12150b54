package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"pluginscout.dev/pkg/pluginscout/internal/adapter"
	"pluginscout.dev/pkg/pluginscout/internal/controller"
	"pluginscout.dev/pkg/pluginscout/internal/domain"
)

var (
	debounceFlag time.Duration
	refreshFlag  time.Duration
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dirs...]",
		Short: "Watch plugin directories and show the live cache",
		Long: `Scan the given directories, subscribe to their change notifications and
keep the capability table current until interrupted.

` + dirsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs, err := parseDirs(args)
			if err != nil {
				return err
			}

			watcher, err := adapter.NewFSNotifyDirWatcher(adapter.WithDebounce(viper.GetDuration(watchDebounceKey)))
			if err != nil {
				return err
			}
			defer watcher.Close()

			opts, err := cacheOptionsFromConfig(watcher)
			if err != nil {
				return err
			}

			opts.WatchDirectoryChanges = true

			cache, err := domain.NewCache(opts)
			if err != nil {
				return err
			}
			defer closeCache(cache)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, cache, watcher, dirs, newUI(cmd))
		},
	}

	cmd.Flags().DurationVar(&debounceFlag, debounceFlagName, viper.GetDuration(watchDebounceKey), "quiet period before a directory change triggers a rescan")
	bindFlagToConfig(cmd.Flags().Lookup(debounceFlagName), watchDebounceKey)

	cmd.Flags().DurationVar(&refreshFlag, refreshFlagName, viper.GetDuration(watchRefreshKey), "display refresh interval")
	bindFlagToConfig(cmd.Flags().Lookup(refreshFlagName), watchRefreshKey)

	return cmd
}

// runWatch registers dirs and runs the event pump next to the UI until ctx
// is done or the UI returns.
func runWatch(ctx context.Context, cache domain.Cache, watcher adapter.DirWatcher, dirs []string, ui controller.UI) error {
	for _, dir := range dirs {
		if err := cache.AddWatchPath(dir); err != nil {
			slog.Warn("Watching without change notifications", "dir", dir, "error", err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watcher.Run(gctx, cache.DirectoryChanged)
	})

	g.Go(func() error {
		// Quitting the UI ends the watch.
		defer cancel()
		return ui.Watch(gctx, snapshotSource(cache))
	})

	return g.Wait()
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

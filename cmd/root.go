// Package cmd provides the root command and CLI setup for pluginscout.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"pluginscout.dev/pkg/pluginscout/internal/controller"
)

var (
	isolationFlag     bool
	watchChangesFlag  bool
	filterFlag        string
	cancelTimeoutFlag time.Duration
	loaderFlag        string
	symbolFlag        string
	logFileFlag       string
	verboseFlag       bool
)

const dirsHelp = `Directories default to the working directory. Module files are matched
against the filename filter (*.so, *.dylib or *.dll depending on the platform
unless --filter is set) and asked for the capabilities they provide.`

const rootLongDescription = `pluginscout discovers which plugin module provides a capability.

It scans plugin directories, loads each candidate module one at a time and
records the capability keys it exports. Watched directories are rescanned
whenever they change.

` + dirsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "pluginscout",
		Short:         "Plugin capability discovery cache",
		Long:          rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.BoolVar(&isolationFlag, isolationFlagName, viper.GetBool(cacheIsolationKey), "scan on the calling goroutine instead of a background worker")
	bindFlagToConfig(flags.Lookup(isolationFlagName), cacheIsolationKey)

	flags.BoolVar(&watchChangesFlag, watchChangesFlagName, viper.GetBool(cacheWatchChangesKey), "subscribe watched directories to change notifications")
	bindFlagToConfig(flags.Lookup(watchChangesFlagName), cacheWatchChangesKey)

	flags.StringVar(&filterFlag, filterFlagName, viper.GetString(cacheFilterKey), "glob candidate module file names must match (default: platform shared library suffix)")
	bindFlagToConfig(flags.Lookup(filterFlagName), cacheFilterKey)

	flags.DurationVar(&cancelTimeoutFlag, cancelTimeoutFlagName, viper.GetDuration(cacheCancelTimeoutKey), "how long to wait for a cancelled scan before detaching it")
	bindFlagToConfig(flags.Lookup(cancelTimeoutFlagName), cacheCancelTimeoutKey)

	flags.StringVar(&loaderFlag, loaderFlagName, viper.GetString(loaderKindKey), "module loader: goplugin or manifest")
	bindFlagToConfig(flags.Lookup(loaderFlagName), loaderKindKey)

	flags.StringVar(&symbolFlag, symbolFlagName, viper.GetString(loaderSymbolKey), "exported symbol holding the capability list")
	bindFlagToConfig(flags.Lookup(symbolFlagName), loaderSymbolKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func newUI(cmd *cobra.Command) controller.UI {
	return controller.NewUI(cmd,
		controller.IsTTY(cmd.OutOrStdout()),
		controller.WithRefreshInterval(viper.GetDuration(watchRefreshKey)),
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

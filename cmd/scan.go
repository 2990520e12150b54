package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"pluginscout.dev/pkg/pluginscout/internal/controller"
	m "pluginscout.dev/pkg/pluginscout/internal/model"
)

var outputFormatFlag string

const scanLongDescription = `Scan plugin directories and print every capability key with the module
that provides it. When two modules provide the same key the first one found
wins.

` + dirsHelp

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [dirs...]",
		Short: "Scan plugin directories and list their capabilities",
		Long:  scanLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs, err := parseDirs(args)
			if err != nil {
				return err
			}

			cache, _, err := newCacheFromConfig(nil)
			if err != nil {
				return err
			}
			defer closeCache(cache)

			if err := scanAndWait(cmd.Context(), cache, dirs); err != nil {
				return err
			}

			return displayEntries(cmd, cache.Entries())
		},
	}

	cmd.Flags().StringVarP(&outputFormatFlag, formatFlagName, "f", viper.GetString(outputFormatKey), "output format: table, yaml or json")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), outputFormatKey)

	return cmd
}

func displayEntries(cmd *cobra.Command, entries []m.CacheEntry) error {
	format := viper.GetString(outputFormatKey)
	if format == controller.FormatTable || format == "" {
		return newUI(cmd).DisplayEntries(cmd.Context(), entries)
	}

	return controller.EncodeEntries(cmd.OutOrStdout(), format, entries)
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

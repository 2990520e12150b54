package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"pluginscout.dev/pkg/pluginscout/internal/domain"
)

var searchDirsFlag []string

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve KEY",
		Short: "Resolve a capability through the search path",
		Long: `Look KEY up the way a plugin host does: verify a cached provider, otherwise
walk the search directories module by module until one provides it. The
directory of the provider is then watched when writable and scanned once
when read-only.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			search := viper.GetStringSlice(resolveSearchKey)

			dirs := []string{}
			if len(search) > 0 {
				parsed, err := parseDirs(search)
				if err != nil {
					return err
				}

				dirs = parsed
			}

			cache, opts, err := newCacheFromConfig(nil)
			if err != nil {
				return err
			}
			defer closeCache(cache)

			resolver, err := domain.NewResolver(cache, opts, dirs)
			if err != nil {
				return err
			}

			path, err := resolver.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return newUI(cmd).DisplayResolution(cmd.Context(), args[0], path)
		},
	}

	cmd.Flags().StringArrayVarP(&searchDirsFlag, searchFlagName, "s", viper.GetStringSlice(resolveSearchKey), "plugin search directory (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(searchFlagName), resolveSearchKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

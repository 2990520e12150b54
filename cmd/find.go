package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"pluginscout.dev/pkg/pluginscout/internal/domain"
)

// findCmd represents the find command.
var findCmd = newFindCmd()

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find KEY [dirs...]",
		Short: "Print the module providing a capability",
		Long: `Scan the given directories and print the module that provides KEY.
Exits with an error when no module provides it.

` + dirsHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			dirs, err := parseDirs(args[1:])
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

			path := cache.Find(key)
			if path == "" {
				return fmt.Errorf("%w: %s", domain.ErrCapabilityNotFound, key)
			}

			return newUI(cmd).DisplayResolution(cmd.Context(), key, path)
		},
	}
}

func init() {
	rootCmd.AddCommand(findCmd)
}

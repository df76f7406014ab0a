package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/govalues/numeral/internal/config"
)

var (
	cfg     config.Config
	logger  *slog.Logger
	verbose bool
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "numsys",
		Short:        "Positional numeral systems: conversions, arithmetic and problem sheets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")

	root.AddCommand(convertCmd(), addCmd(), mulCmd(), sheetCmd())
	return root
}

// baseFlag returns the value of the --base flag of cmd if it was set,
// or the configured default base otherwise.
func baseFlag(cmd *cobra.Command, base int) int {
	if cmd.Flags().Changed("base") {
		return base
	}
	return cfg.Base
}

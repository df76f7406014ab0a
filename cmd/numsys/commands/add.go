package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/govalues/numeral"
)

// add <a> <b>: add two numerals of the same base.
func addCmd() *cobra.Command {
	var base int
	cmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two numerals of the same base",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base = baseFlag(cmd, base)
			logger.Debug("adding", "a", args[0], "b", args[1], "base", base)
			a, err := numeral.Parse(args[0], base)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", args[0], err)
			}
			b, err := numeral.Parse(args[1], base)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", args[1], err)
			}
			sum, err := a.Add(b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum.Answer())
			return nil
		},
	}
	cmd.Flags().IntVarP(&base, "base", "b", 10, "base of both numerals, overrides NUMSYS_BASE")
	return cmd
}

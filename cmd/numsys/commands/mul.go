package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/govalues/numeral/problem"
)

// mul <a> <b>: multiply two numerals and print the long multiplication.
func mulCmd() *cobra.Command {
	var base int
	cmd := &cobra.Command{
		Use:   "mul <a> <b>",
		Short: "Multiply two numerals of the same base by hand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base = baseFlag(cmd, base)
			logger.Debug("multiplying", "a", args[0], "b", args[1], "base", base)
			p, err := problem.NewMultiplication(args[0], args[1], base)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.WithAnswer())
			if s, ok := p.Solution(); ok {
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&base, "base", "b", 10, "base of both numerals, overrides NUMSYS_BASE")
	return cmd
}

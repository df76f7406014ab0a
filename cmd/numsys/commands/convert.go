package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/govalues/numeral/problem"
)

// convert <value> --from B1 --to B2: write a numeral in another base.
func convertCmd() *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Write a numeral in another base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("from") {
				from = cfg.Base
			}
			logger.Debug("converting", "value", args[0], "from", from, "to", to)
			p, err := problem.NewConversion(args[0], from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.WithAnswer())
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 10, "base of the value, overrides NUMSYS_BASE")
	cmd.Flags().IntVar(&to, "to", 0, "base to convert to")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

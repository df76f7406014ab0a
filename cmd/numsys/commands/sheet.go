package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/govalues/numeral/internal/i18n"
	"github.com/govalues/numeral/problem"
)

// sheet: generate a problem sheet followed by its answers.
func sheetCmd() *cobra.Command {
	var (
		count     int
		seed      uint64
		lang      string
		minBase   int
		maxBase   int
		maxDigits int
	)
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Generate a problem sheet followed by its answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Seed
			}
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			if !cmd.Flags().Changed("lang") {
				lang = cfg.Lang
			}
			tag := i18n.Match(lang)
			logger.Debug("generating sheet", "count", count, "seed", seed, "lang", tag.String())

			g, err := problem.NewGenerator(seed,
				problem.WithBases(minBase, maxBase),
				problem.WithMaxDigits(maxDigits),
			)
			if err != nil {
				return err
			}
			set := g.Set(count)

			p := i18n.Printer(tag)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.Sprintf(i18n.Problems))
			fmt.Fprintln(out, set.String())
			fmt.Fprintln(out)
			fmt.Fprintln(out, p.Sprintf(i18n.Answers))
			fmt.Fprintln(out, set.Answers())
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of problems")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "generator seed, 0 for a time-based seed, overrides NUMSYS_SEED")
	cmd.Flags().StringVar(&lang, "lang", "en", "language of the headings, overrides NUMSYS_LANG")
	cmd.Flags().IntVar(&minBase, "min-base", 2, "smallest base of the problems")
	cmd.Flags().IntVar(&maxBase, "max-base", 16, "largest base of the problems")
	cmd.Flags().IntVar(&maxDigits, "max-digits", 6, "largest number of digits of a numeral")
	return cmd
}

package cmd

import (
	"fmt"

	"deedles.dev/xlattice/grid"
	"deedles.dev/xlattice/wordsearch"
	"github.com/spf13/cobra"
)

func newWordSearchCommand(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordsearch [input]",
		Short: "Count words along straight rays and crossed words",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lines, err := load(cmd, args)
			if err != nil {
				return err
			}

			g, err := grid.Runes(lines)
			if err != nil {
				return fmt.Errorf("parse letters: %w", err)
			}

			crosses, err := wordsearch.CountCrosses(g, cfg.Cross)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d\n", cfg.Word, wordsearch.CountWord(g, cfg.Word))
			fmt.Fprintf(out, "crossed %s: %d\n", cfg.Cross, crosses)
			return nil
		},
	}
	cmd.Flags().String("word", "XMAS", "word to search for along any ray")
	cmd.Flags().String("cross", "MAS", "word to search for crossed diagonally")

	return cmd
}

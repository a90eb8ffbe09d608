package cmd

import (
	"fmt"
	"log"

	"deedles.dev/xlattice/trail"
	"github.com/spf13/cobra"
)

func newTrailsCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "trails [input]",
		Short: "Score and rate every trailhead on a topographic map",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lines, err := load(cmd, args)
			if err != nil {
				return err
			}

			m, err := trail.Parse(lines)
			if err != nil {
				return err
			}
			if cfg.Verbose {
				for head := range trail.Trailheads(m) {
					s := trail.Explore(m, head)
					log.Printf("%v: score %d, rating %d", head, s.Score(), s.Rating)
				}
			}

			totals := trail.Survey(m)
			fmt.Fprintf(cmd.OutOrStdout(), "trailheads: %d, score %d, rating %d\n", totals.Trailheads, totals.Score, totals.Rating)
			return nil
		},
	}
}

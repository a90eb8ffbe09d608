package cmd

import (
	"fmt"
	"log"

	"deedles.dev/xlattice/patrol"
	"github.com/spf13/cobra"
)

func newPatrolCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "patrol [input]",
		Short: "Count the cells a guard visits and the obstacles that would trap it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lines, err := load(cmd, args)
			if err != nil {
				return err
			}

			level, guard, err := patrol.Parse(lines)
			if err != nil {
				return err
			}
			if cfg.Verbose {
				log.Printf("level %v, guard at %v", level.Bounds, guard)
			}

			visited, err := patrol.Visited(guard, level)
			if err != nil {
				return fmt.Errorf("walk: %w", err)
			}
			loops, err := patrol.FindLoopObstacles(guard, level)
			if err != nil {
				return fmt.Errorf("find loops: %w", err)
			}
			if cfg.Verbose {
				for _, p := range loops.Sorted() {
					log.Printf("obstacle at %v creates a loop", p)
				}
			}

			out := cmd.OutOrStdout()
			if cfg.Render {
				fmt.Fprintln(out, level.Draw(guard, loops, 'O'))
			}
			fmt.Fprintf(out, "visited positions: %d\n", visited.Len())
			fmt.Fprintf(out, "loop obstacles: %d\n", loops.Len())
			return nil
		},
	}
}

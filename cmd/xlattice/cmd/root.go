package cmd

import (
	"fmt"
	"iter"
	"log"

	"deedles.dev/xlattice/input"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the xlattice command tree.
func NewRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "xlattice",
		Short:         "Grid traversal puzzles on an unsigned lattice",
		Long:          `xlattice reads a grid from a text file and prints totals for one of several traversals.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	root.PersistentFlags().String("input", "", "input file path (default from config, then input.txt)")
	root.PersistentFlags().Bool("render", false, "print the map after solving")
	root.PersistentFlags().BoolP("verbose", "v", false, "log each result as it is found")

	load := func(cmd *cobra.Command, args []string) (*Config, iter.Seq2[int, string], error) {
		cfg, err := LoadConfig(configFile, cmd)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) > 0 {
			cfg.Input = args[0]
		}

		lines, err := input.LinesIndexed(cfg.Input)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load input: %w", err)
		}
		if cfg.Verbose {
			log.Printf("loaded %v", cfg.Input)
		}
		return cfg, lines, nil
	}

	root.AddCommand(
		newPatrolCommand(load),
		newWordSearchCommand(load),
		newAntennasCommand(load),
		newTrailsCommand(load),
	)

	return root
}

type loader func(cmd *cobra.Command, args []string) (*Config, iter.Seq2[int, string], error)

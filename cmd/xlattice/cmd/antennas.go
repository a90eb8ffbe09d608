package cmd

import (
	"fmt"

	"deedles.dev/xlattice/antenna"
	"github.com/spf13/cobra"
)

func newAntennasCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "antennas [input]",
		Short: "Count unique antinodes of same-frequency antenna pairs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lines, err := load(cmd, args)
			if err != nil {
				return err
			}

			m, err := antenna.Parse(lines)
			if err != nil {
				return err
			}

			antinodes := antenna.Antinodes(m)
			harmonics := antenna.Harmonics(m)

			out := cmd.OutOrStdout()
			if cfg.Render {
				fmt.Fprintln(out, m.Draw(antinodes))
			}
			fmt.Fprintf(out, "unique antinodes: %d\n", antinodes.Len())
			fmt.Fprintf(out, "unique harmonic antinodes: %d\n", harmonics.Len())
			return nil
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Creates a report",
	Long:  `Counts lines, chord lines, chords and chord roots of a sheet.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		stats := chord.GetStats(text)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "lines: %v\n", stats.Lines)
		fmt.Fprintf(out, "chord lines: %v\n", stats.ChordLines)
		fmt.Fprintf(out, "chords: %v\n", stats.Chords)
		if stats.Unresolved > 0 {
			fmt.Fprintf(out, "unresolved: %v\n", stats.Unresolved)
		}
		for _, r := range util.GetKeys(stats.Roots) {
			fmt.Fprintf(out, "  %v: %v\n", r, stats.Roots[r])
		}
		return nil
	},
}

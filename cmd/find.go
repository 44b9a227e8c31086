package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/model"
	"github.com/spf13/cobra"
)

var (
	findSimplify bool
	findJSON     bool
)

func init() {
	findCmd.Flags().BoolVar(&findSimplify, "simplify", false, "simplify every chord")
	findCmd.Flags().BoolVar(&findJSON, "json", false, "print JSON")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find [file]",
	Short: "Lists the chords of a sheet",
	Long:  `Lists the chords of a sheet with their start and end offsets.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		var chords []model.Chord
		if findSimplify {
			chords = chord.FindSimplified(text)
		} else {
			chords = chord.Find(text)
		}
		if chords == nil {
			chords = []model.Chord{}
		}

		out := cmd.OutOrStdout()
		if findJSON {
			return json.NewEncoder(out).Encode(model.FindResponse{Chords: chords})
		}
		for _, c := range chords {
			fmt.Fprintf(out, "%v\t%v\t%v\n", c.Start, c.End, c.Symbol)
		}
		return nil
	},
}

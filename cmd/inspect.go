package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/token"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Shows how every line was classified",
	Long: `Shows how every line was classified. Words marked * are chords,
words marked ? start like a chord but are not one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, line := range chord.Inspect(text) {
			verdict := "text"
			if line.ChordLine {
				verdict = "chords"
			}
			fmt.Fprintf(w, "%v\t%v\t%v\n", line.Number, verdict, describe(line.Words))
		}
		return w.Flush()
	},
}

func describe(words []token.Word) string {
	parts := make([]string, 0, len(words))
	for _, word := range words {
		switch {
		case word.Chord:
			parts = append(parts, word.Text+"*")
		case word.CouldBeChord:
			parts = append(parts, word.Text+"?")
		default:
			parts = append(parts, word.Text)
		}
	}
	return strings.Join(parts, " ")
}

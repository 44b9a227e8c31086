package cmd

import (
	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/root"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

var (
	transposeFrom = root.C
	transposeTo   = root.C
	transposeOut  string
)

func init() {
	transposeCmd.Flags().Var(&transposeFrom, "from", "key the sheet is written in")
	transposeCmd.Flags().Var(&transposeTo, "to", "key to transpose to, nothing changes when unset")
	transposeCmd.Flags().StringVarP(&transposeOut, "out", "o", "", "output file, stdout when empty")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose [file]",
	Short: "Transposes the chords of a sheet",
	Long:  `Transposes the chords of a sheet from one key to another, e.g. --from C --to Eb.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("to") {
			text = chord.TransposeText(text, transposeFrom, transposeTo)
		}
		return util.WriteOutput(transposeOut, cmd.OutOrStdout(), text)
	},
}

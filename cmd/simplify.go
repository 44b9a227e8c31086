package cmd

import (
	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

var simplifyOut string

func init() {
	simplifyCmd.Flags().StringVarP(&simplifyOut, "out", "o", "", "output file, stdout when empty")
	rootCmd.AddCommand(simplifyCmd)
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify [file]",
	Short: "Simplifies the chords of a sheet",
	Long:  `Simplifies the chords of a sheet, e.g. Cmaj7 becomes C, keeping columns aligned.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		return util.WriteOutput(simplifyOut, cmd.OutOrStdout(), chord.SimplifyText(text))
	},
}

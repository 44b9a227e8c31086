package cmd

import (
	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/logging"
	"github.com/jsphweid/chordsheet/midi"
	"github.com/jsphweid/chordsheet/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportOut      string
	exportOctave   int
	exportBpm      float64
	exportSimplify bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "chords.mid", "MIDI file to write")
	exportCmd.Flags().IntVar(&exportOctave, "octave", constants.DefaultOctave, "octave of the chord roots")
	exportCmd.Flags().Float64Var(&exportBpm, "bpm", constants.DefaultBpm, "tempo")
	exportCmd.Flags().BoolVar(&exportSimplify, "simplify", false, "simplify chords before voicing them")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Writes the chords of a sheet as a MIDI file",
	Long:  `Writes the chords of a sheet as a MIDI file, one bar per chord.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		var chords []model.Chord
		if exportSimplify {
			chords = chord.FindSimplified(text)
		} else {
			chords = chord.Find(text)
		}
		logging.L().Info("exporting chords",
			zap.Int("chords", len(chords)),
			zap.String("out", exportOut))
		return midi.WriteFile(exportOut, midi.Render(chords, exportOctave, exportBpm))
	},
}

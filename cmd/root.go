package cmd

import (
	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/logging"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        = constants.Default()
)

var rootCmd = &cobra.Command{
	Use:   "chordsheet",
	Short: "Finds, simplifies and transposes chords in chord sheets",
	Long: `Reads song sheets with chords written above the lyrics, finds the chord
symbols, and rewrites them without breaking the column layout.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := constants.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		_, err = logging.Setup(cfg.Debug)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// readInput reads the sheet named by the first argument, or stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	return util.ReadInput(path, cmd.InOrStdin())
}

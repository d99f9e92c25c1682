package cmd

import (
	"github.com/joho/godotenv"
	"github.com/jsphweid/chordex/constants"
	"github.com/spf13/cobra"
)

// fallback key and tempo for files that don't set their own
var (
	keyFlag int
	bpmFlag float64
)

var rootCmd = &cobra.Command{
	Use:   "chordex",
	Short: "Scale-degree chord analysis",
	Long: `chordex analyzes chord progressions written as key, bass degree, shape and
accidentals, and exports them to MIDI.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a missing .env is fine
		_ = godotenv.Load()
		applyEnvDefaults(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&keyFlag, "key", constants.DefaultKey, "key on the circle of fifths (0 = C, 1 = G, -1 = F)")
	rootCmd.PersistentFlags().Float64Var(&bpmFlag, "bpm", constants.DefaultBpm, "tempo")
}

func applyEnvDefaults(cmd *cobra.Command) {
	if f := cmd.Flag("key"); f == nil || !f.Changed {
		keyFlag = constants.GetDefaultKey()
	}
	if f := cmd.Flag("bpm"); f == nil || !f.Changed {
		bpmFlag = constants.GetDefaultBpm()
	}
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

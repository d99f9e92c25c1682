package cmd

import (
	"fmt"

	"github.com/jsphweid/chordex/batch"
	"github.com/jsphweid/chordex/constants"
	"github.com/spf13/cobra"
)

var batchClean bool

func init() {
	batchCmd.Flags().BoolVar(&batchClean, "clean", false, "remove earlier .mid exports from the out dir first")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Exports every chord file in a directory",
	Long:  `Exports every chord file in a directory to MIDI, one file each, into the out dir`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		outDir := constants.GetOutDir()
		if batchClean {
			cobra.CheckErr(batch.DeleteAll(outDir))
		}

		paths, err := batch.GatherChordFiles(args[0])
		cobra.CheckErr(err)
		res, err := batch.ExportAll(paths, outDir, keyFlag, bpmFlag)
		cobra.CheckErr(err)
		fmt.Printf("Wrote %v of %v files to %s\n", len(res.Written), len(paths), outDir)
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/chordex/file"
	"github.com/spf13/cobra"
)

var normalizeOut string

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOut, "out", "o", "", "write to this path instead of stdout")
	rootCmd.AddCommand(normalizeCmd)
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file>",
	Short: "Rewrites a chord file with its defaults filled in",
	Long:  `Validates a chord file and writes it back with an explicit key and bpm on the first chord`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, _ := loadSequence(args[0], keyFlag, bpmFlag)
		doc = file.Prepare(doc, keyFlag, bpmFlag)
		if normalizeOut == "" {
			cobra.CheckErr(file.Write(os.Stdout, doc))
			return
		}
		cobra.CheckErr(file.WriteFile(normalizeOut, doc))
		fmt.Printf("Wrote %s\n", normalizeOut)
	},
}

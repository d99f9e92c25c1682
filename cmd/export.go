package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/sample"
	"github.com/spf13/cobra"
)

var (
	exportOut   string
	exportFrom  int
	exportCount int
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default: a new file in the out dir)")
	exportCmd.Flags().IntVar(&exportFrom, "from", 1, "first chord to export")
	exportCmd.Flags().IntVar(&exportCount, "count", 0, "number of chords to export (0 = all)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "midi <file>",
	Short: "Exports a chord file to MIDI",
	Long:  `Exports a chord file, or a window of it, to a standard MIDI file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := Export(args[0], exportOut, exportFrom, exportCount)
		fmt.Printf("Wrote %s\n", path)
	},
}

func defaultExportPath() string {
	dir := constants.GetOutDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		panic("Could not create out dir: " + err.Error())
	}
	return filepath.Join(dir, uuid.New().String()+".mid")
}

// Export writes chords from..from+count-1 (1-based) of the file and returns
// the path written.
func Export(path, out string, from, count int) string {
	_, seq := loadSequence(path, keyFlag, bpmFlag)
	s, err := sample.Create(seq, from-1, count)
	if err != nil {
		panic(err)
	}

	if out == "" {
		out = defaultExportPath()
	}
	if err := midi.WriteFile(out, s); err != nil {
		panic(err)
	}
	return out
}

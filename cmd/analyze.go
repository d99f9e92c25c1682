package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/file"
	"github.com/jsphweid/chordex/model"
	"github.com/spf13/cobra"
)

var analyzeJSON bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyzes a chord file",
	Long:  `Prints function, scale level, real name and tension for every chord in a chord file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res := Analyze(args[0], keyFlag, bpmFlag)
		if analyzeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			cobra.CheckErr(enc.Encode(model.AnalyzeResponse{Chords: res}))
			return
		}
		PrintAnalysis(os.Stdout, res)
	},
}

// loadSequence panics when the file can't be read or holds a bad chord.
func loadSequence(path string, key int, bpm float64) (model.ChordFile, []model.ChordSpec) {
	doc, err := file.ReadFile(path)
	if err != nil {
		panic(err)
	}
	seq, err := file.Resolve(doc, key, bpm)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", path, err))
	}
	return doc, seq
}

func Analyze(path string, key int, bpm float64) []model.ChordAnalysis {
	_, seq := loadSequence(path, key, bpm)
	res, err := chord.Analyze(seq)
	if err != nil {
		panic(err)
	}
	return res
}

func PrintAnalysis(w io.Writer, res []model.ChordAnalysis) {
	for _, a := range res {
		fmt.Fprintf(w, "%3d  %-3s  %d:%-7s  %-10s  fn %-7s  level %-3s  [%s]  %-4s  %v\n",
			a.Index, a.KeyName, a.Bass, a.Shape, a.Accd, a.MainFunction,
			a.ScaleLevel, a.RealName, a.Tension, a.Pitches)
		if a.Memo != "" {
			fmt.Fprintf(w, "     %s\n", a.Memo)
		}
	}
}

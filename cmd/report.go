package cmd

import (
	"fmt"
	"math"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/util"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Creates a report",
	Long:  `Summarizes the length, tension and scale levels of a chord file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		printReport(buildReport(Analyze(args[0], keyFlag, bpmFlag)))
	},
}

type progressionReport struct {
	numChords   int
	totalBeats  float64
	seconds     float64
	keyChanges  int
	meanTension float64
	stdTension  float64
	maxTension  float64
	strengths   map[string]int
	levels      map[string]int
}

func buildReport(res []model.ChordAnalysis) progressionReport {
	report := progressionReport{
		numChords: len(res),
		strengths: make(map[string]int),
		levels:    make(map[string]int),
	}

	beats := make([]float64, 0, len(res))
	var tensions []float64
	for i, a := range res {
		beats = append(beats, a.Beats)
		report.seconds += a.Beats * 60 / a.Bpm
		report.levels[a.ScaleLevel] += 1
		if i == 0 {
			continue
		}
		if a.Key != res[i-1].Key {
			report.keyChanges += 1
		}
		mag := math.Abs(a.TensionValue)
		tensions = append(tensions, mag)
		report.maxTension = math.Max(report.maxTension, mag)
		report.strengths[a.Strength] += 1
	}
	report.totalBeats = util.Sum(beats)

	if len(tensions) > 0 {
		report.meanTension = stat.Mean(tensions, nil)
	}
	if len(tensions) > 1 {
		report.stdTension = stat.StdDev(tensions, nil)
	}
	return report
}

func printReport(report progressionReport) {
	fmt.Printf("numChords: %v\n", report.numChords)
	fmt.Printf("totalBeats: %v\n", report.totalBeats)
	fmt.Printf("seconds: %.2f\n", report.seconds)
	fmt.Printf("keyChanges: %v\n", report.keyChanges)
	fmt.Printf("meanTension: %.2f (std %.2f, max %v)\n", report.meanTension, report.stdTension, report.maxTension)
	for _, s := range []string{chord.StrengthStrong, chord.StrengthUp, chord.StrengthDown, chord.StrengthWeak, chord.StrengthNone} {
		fmt.Printf("  %-6s %v\n", s, report.strengths[s])
	}
	for _, level := range util.GetKeysSorted(report.levels) {
		fmt.Printf("level %s: %v\n", level, report.levels[level])
	}
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a MIDI file",
	Long:  `Lists the tempo changes and the chords (notes starting together) of a MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		panic(err)
	}

	sum := midi.Summarize(s)
	fmt.Println(sum)
	for _, c := range sum.Chords {
		beat := float64(c.Tick)
		if sum.TicksPerBeat > 0 {
			beat /= float64(sum.TicksPerBeat)
		}
		fmt.Printf("tick %6d  beat %6.2f  %s\n", c.Tick, beat, strings.Join(c.Names, " "))
	}
}

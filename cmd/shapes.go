package cmd

import (
	"fmt"

	"github.com/jsphweid/chordex/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(shapesCmd)
}

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Lists the shape catalog",
	Long:  `Lists every basic shape with each of its inversions and their main functions`,
	Run: func(cmd *cobra.Command, args []string) {
		group := ""
		for _, e := range chord.Catalog() {
			if e.Group != group {
				group = e.Group
				fmt.Printf("%s\n", group)
			}
			mark := " "
			if e.Common {
				mark = "*"
			}
			fmt.Printf("  %s %-7s on %d  %-7s fn %s\n", mark, e.Basic, e.Bass, e.Shape, e.MainFunction)
		}
	},
}

package scale

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/util"
	"golang.org/x/exp/slices"
)

// semitone offset of each diatonic degree from the key root
var DiatonicSteps = [7]int{0, 2, 4, 5, 7, 9, 11}

var ChromaticNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// circle-of-fifths position of each diatonic degree (F=0 ... B=6)
var FifthsOrder = [7]int{1, 3, 5, 0, 2, 4, 6}

var FifthsLetters = [7]string{"F", "C", "G", "D", "A", "E", "B"}

// per-degree placement on the half/third step axis, used by tension
var FunctionalAxis = [7]int{0, -10, 4, -7, 7, -3, 11}

var LevelMarks = [7]string{"α", "β", "γ", "δ", "ε", "ζ", "η"}

const (
	NumDegrees      = 7
	NumPitchClasses = 12

	// a chromatic semitone is 7 steps on the circle of fifths
	FifthsPerSemitone = 7
)

// ApplyAccidentals shifts base[i] by +unit when degree i+1 is raised and by
// -unit when it is lowered. A degree listed both ways is treated as raised.
func ApplyAccidentals(base [7]int, accd []int, unit int) [7]int {
	res := base
	for i := range res {
		degree := i + 1
		switch {
		case slices.Contains(accd, degree):
			res[i] += unit
		case slices.Contains(accd, -degree):
			res[i] -= unit
		}
	}
	return res
}

// Spell names the note at a circle-of-fifths location (0 = F). Every pair of
// sharps is collapsed into a double sharp.
func Spell(location int) string {
	name := FifthsLetters[util.Wrap(location, 0, NumDegrees)]
	n := util.FloorDiv(location, NumDegrees)
	switch {
	case n > 0:
		return name + strings.ReplaceAll(strings.Repeat("#", n), "##", "×")
	case n < 0:
		return name + strings.Repeat("♭", -n)
	}
	return name
}

type Key struct {
	Label string
	Value int
}

// Keys are the tonics offered by the editor, by circle-of-fifths position.
var Keys = []Key{
	{"C", 0},
	{"D♭", -5},
	{"D", 2},
	{"E♭", -3},
	{"E", 4},
	{"F", -1},
	{"G♭", -6},
	{"G", 1},
	{"A♭", -4},
	{"A", 3},
	{"B♭", -2},
	{"B", 5},
}

func KeyName(key int) string {
	for _, k := range Keys {
		if k.Value == key {
			return k.Label
		}
	}
	return Spell(FifthsOrder[0] + key)
}

// AccidentalLabel renders a signed accidental the way the editor lists them.
func AccidentalLabel(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("%d＃", n)
	case n < 0:
		return fmt.Sprintf("%d♭", -n)
	}
	return "0"
}

package model

import (
	"strconv"

	"github.com/jsphweid/chordex/scale"
	"github.com/jsphweid/chordex/util"
)

// Pitch is a resolved note. Number counts semitones from C0 the way the chord
// names do, so Number 60 is named C5.
type Pitch struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

func NewPitch(n int) Pitch {
	name := scale.ChromaticNames[util.Wrap(n, 0, scale.NumPitchClasses)]
	return Pitch{
		Number: n,
		Name:   name + strconv.Itoa(util.FloorDiv(n, scale.NumPitchClasses)),
	}
}

// PitchFromMIDIKey is the inverse of MIDIKey.
func PitchFromMIDIKey(key uint8) Pitch {
	return NewPitch(int(key) - 12)
}

// MIDIKey is the MIDI key for the pitch's name, with C4 at 60.
func (p Pitch) MIDIKey() uint8 {
	return uint8(p.Number + 12)
}

func PitchNames(pitches []Pitch) []string {
	res := make([]string, 0, len(pitches))
	for _, p := range pitches {
		res = append(res, p.Name)
	}
	return res
}

package chord

import (
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/scale"
	"github.com/jsphweid/chordex/util"
)

const (
	// bass sounds in 29-40, upper tones in 53-64
	BassWindowStart  = 29
	UpperWindowStart = 53
	WindowWidth      = 12
)

// ResolvePitches returns the bass followed by one pitch per shape tone.
func ResolvePitches(c model.ChordSpec) ([]model.Pitch, error) {
	if err := validateHarmony(c.Bass, c.Shape, c.Accd); err != nil {
		return nil, err
	}

	steps := scale.ApplyAccidentals(scale.DiatonicSteps, c.Accd, 1)
	keyOffset := util.Wrap(c.Key*scale.FifthsPerSemitone, 0, scale.NumPitchClasses)

	notes := make([]int, 0, len(c.Shape)+1)
	notes = append(notes, util.Wrap(keyOffset+steps[c.Bass-1], BassWindowStart, WindowWidth))
	for _, n := range c.Shape {
		index := util.Wrap(c.Bass+n-2, 0, scale.NumDegrees)
		notes = append(notes, util.Wrap(keyOffset+steps[index], UpperWindowStart, WindowWidth))
	}

	res := make([]model.Pitch, 0, len(notes))
	for _, n := range notes {
		res = append(res, model.NewPitch(n))
	}
	return res, nil
}

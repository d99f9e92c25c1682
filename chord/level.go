package chord

import (
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/scale"
	"github.com/jsphweid/chordex/util"
)

// LevelUndetermined is returned when the altered degrees still span exactly
// six fifths, i.e. they form one of the diatonic modes.
const LevelUndetermined = "-"

func CalcScaleLevel(accd model.Accidentals) (string, error) {
	if err := ValidateAccidentals(accd); err != nil {
		return "", err
	}

	positions := scale.ApplyAccidentals(scale.FifthsOrder, accd, scale.FifthsPerSemitone)
	lo, hi := positions[0], positions[0]
	for _, p := range positions[1:] {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}

	spread := hi - lo
	if spread == scale.NumDegrees-1 {
		return LevelUndetermined, nil
	}

	res := scale.LevelMarks[spread%scale.NumDegrees]
	if q := util.FloorDiv(spread-scale.NumDegrees, scale.NumDegrees); q > 0 {
		res += strconv.Itoa(q + 1)
	}
	return res, nil
}

// RealNames spells each shape tone in the chord's key, in shape order.
func RealNames(key, bass int, shape model.Shape, accd model.Accidentals) ([]string, error) {
	if err := validateHarmony(bass, shape, accd); err != nil {
		return nil, err
	}

	positions := scale.ApplyAccidentals(scale.FifthsOrder, accd, scale.FifthsPerSemitone)
	res := make([]string, 0, len(shape))
	for _, n := range shape {
		degree := n + bass - 1
		res = append(res, scale.Spell(positions[(degree-1)%scale.NumDegrees]+key))
	}
	return res, nil
}

// CalcRealName lays the spelled tones out in seven slots, one per shape
// degree, with a blank for every degree the shape skips.
func CalcRealName(key, bass int, shape model.Shape, accd model.Accidentals) (string, error) {
	names, err := RealNames(key, bass, shape, accd)
	if err != nil {
		return "", err
	}

	var slots [scale.NumDegrees]string
	for i, n := range shape {
		slots[n-1] = names[i]
	}

	var b strings.Builder
	for _, s := range slots {
		if s == "" {
			s = " "
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

package chord

import (
	"math"
	"strconv"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/scale"
	"github.com/jsphweid/chordex/util"
	"gonum.org/v1/gonum/stat"
)

const (
	tensionPeriod = 24
	tensionMin    = -12
)

const (
	StrengthStrong = "strong"
	StrengthWeak   = "weak"
	StrengthUp     = "up"
	StrengthDown   = "down"
	StrengthNone   = "none"
)

// Tension is the signed distance between two chords' main functions on the
// half/third axis, rounded to one decimal. Positive means ascending.
type Tension float64

func (t Tension) String() string {
	switch {
	case t > 0:
		return "u" + strconv.FormatFloat(float64(t), 'f', -1, 64)
	case t < 0:
		return "d" + strconv.FormatFloat(float64(-t), 'f', -1, 64)
	}
	return "0"
}

func (t Tension) Strength() string {
	mag := math.Abs(float64(t))
	switch {
	case mag > 10:
		return StrengthStrong
	case mag > 0 && mag < 2:
		return StrengthWeak
	case t > 0:
		return StrengthUp
	case t < 0:
		return StrengthDown
	}
	return StrengthNone
}

type rankedFunction struct {
	value int
	rank  int
}

func rankedFunctions(c model.ChordSpec) ([]rankedFunction, error) {
	mf, err := CalcMainFunction(c.Bass, c.Shape)
	if err != nil {
		return nil, err
	}

	axis := scale.ApplyAccidentals(scale.FunctionalAxis, c.Accd, 1)
	res := make([]rankedFunction, 0, len(mf.First)+len(mf.Second))
	for _, d := range mf.First {
		res = append(res, rankedFunction{value: axis[d-1], rank: 1})
	}
	for _, d := range mf.Second {
		res = append(res, rankedFunction{value: axis[d-1], rank: 2})
	}
	return res, nil
}

// CalcTension compares cur against the chord before it. The first chord of a
// sequence has no predecessor and gets zero tension.
func CalcTension(prev *model.ChordSpec, cur model.ChordSpec) (Tension, error) {
	if err := ValidateAccidentals(cur.Accd); err != nil {
		return 0, err
	}
	curFuncs, err := rankedFunctions(cur)
	if err != nil {
		return 0, err
	}
	if prev == nil {
		return 0, nil
	}

	if err := ValidateAccidentals(prev.Accd); err != nil {
		return 0, err
	}
	prevFuncs, err := rankedFunctions(*prev)
	if err != nil {
		return 0, err
	}

	keyDiff := util.Wrap(cur.Key-prev.Key, -6, 12) * scale.FifthsPerSemitone

	angles := make([]float64, 0, len(prevFuncs)*len(curFuncs))
	weights := make([]float64, 0, len(prevFuncs)*len(curFuncs))
	for _, p := range prevFuncs {
		for _, c := range curFuncs {
			diff := util.Wrap(c.value-p.value+keyDiff, tensionMin, tensionPeriod)
			angles = append(angles, float64(diff)*2*math.Pi/tensionPeriod)
			weights = append(weights, 1/float64(p.rank*c.rank))
		}
	}

	mean := stat.CircularMean(angles, weights) * tensionPeriod / (2 * math.Pi)
	mean = util.WrapFloat(mean, tensionMin, tensionPeriod)
	return Tension(math.Floor(mean*10+0.5) / 10), nil
}

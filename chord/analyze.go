package chord

import (
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/scale"
	"github.com/pkg/errors"
)

// AnalyzeChord computes everything the editor shows for one chord. prev is
// the chord before it, or nil.
func AnalyzeChord(prev *model.ChordSpec, c model.ChordSpec) (model.ChordAnalysis, error) {
	var res model.ChordAnalysis

	pitches, err := ResolvePitches(c)
	if err != nil {
		return res, err
	}
	mf, err := CalcMainFunction(c.Bass, c.Shape)
	if err != nil {
		return res, err
	}
	level, err := CalcScaleLevel(c.Accd)
	if err != nil {
		return res, err
	}
	realName, err := CalcRealName(c.Key, c.Bass, c.Shape, c.Accd)
	if err != nil {
		return res, err
	}
	tension, err := CalcTension(prev, c)
	if err != nil {
		return res, errors.Wrap(err, "tension")
	}

	res = model.ChordAnalysis{
		Key:          c.Key,
		KeyName:      scale.KeyName(c.Key),
		Bass:         c.Bass,
		Shape:        c.Shape,
		Accd:         c.Accd,
		Degrees:      AbsoluteDegrees(c.Bass, c.Shape),
		MainFunction: mf.String(),
		ScaleLevel:   level,
		RealName:     realName,
		Tension:      tension.String(),
		TensionValue: float64(tension),
		Strength:     tension.Strength(),
		Pitches:      model.PitchNames(pitches),
		Beats:        c.Beats,
		Bpm:          c.Bpm,
		Memo:         c.Memo,
	}
	return res, nil
}

func Analyze(seq []model.ChordSpec) ([]model.ChordAnalysis, error) {
	res := make([]model.ChordAnalysis, 0, len(seq))
	for i, c := range seq {
		var prev *model.ChordSpec
		if i > 0 {
			prev = &seq[i-1]
		}
		a, err := AnalyzeChord(prev, c)
		if err != nil {
			return nil, errors.Wrapf(err, "chord %d", i+1)
		}
		a.Index = i + 1
		res = append(res, a)
	}
	return res, nil
}

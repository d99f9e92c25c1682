package chord

import (
	"github.com/jsphweid/chordex/model"
	"github.com/pkg/errors"
)

// NormalizeSequence resolves every chord's key, bpm and beats by carrying
// forward the most recent explicit value, starting from the given defaults.
func NormalizeSequence(raw []model.RawChord, key int, bpm float64, beats float64) ([]model.ChordSpec, error) {
	res := make([]model.ChordSpec, 0, len(raw))
	currentKey := key
	currentBpm := bpm
	currentBeats := beats

	for i, c := range raw {
		if k, ok := c.KeyOverride(); ok {
			currentKey = k
		}
		if c.Bpm != 0 {
			currentBpm = c.Bpm
		}
		if c.Beats != 0 {
			currentBeats = c.Beats
		}

		resolved := model.ChordSpec{
			Key:   currentKey,
			Bass:  c.Bass,
			Shape: c.Shape,
			Accd:  c.Accd,
			Beats: currentBeats,
			Bpm:   currentBpm,
			Memo:  c.Memo,
		}.Clone()
		if err := Validate(resolved); err != nil {
			return nil, errors.Wrapf(err, "chord %d", i+1)
		}
		res = append(res, resolved)
	}
	return res, nil
}

package sample

import (
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrOutOfRange = errors.New("chord index out of range")

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Window returns count chords of seq starting at from. A count of zero or
// less runs to the end.
func Window(seq []model.ChordSpec, from, count int) ([]model.ChordSpec, error) {
	if from < 0 || from >= len(seq) {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d, sequence has %d chords", from, len(seq))
	}
	end := len(seq)
	if count > 0 {
		end = min(from+count, len(seq))
	}
	return seq[from:end], nil
}

// Create builds a preview SMF for a window of the sequence. Chords are
// already resolved, so the excerpt keeps the key and tempo in effect at from.
func Create(seq []model.ChordSpec, from, count int) (*smf.SMF, error) {
	window, err := Window(seq, from, count)
	if err != nil {
		return nil, err
	}
	return midi.Export(window)
}

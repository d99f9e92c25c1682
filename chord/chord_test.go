package chord

import (
	"math"
	"testing"

	"github.com/jsphweid/chordex/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func spec(key, bass int, shape string, accd ...int) model.ChordSpec {
	return model.ChordSpec{
		Key:   key,
		Bass:  bass,
		Shape: model.MustParseShape(shape),
		Accd:  accd,
		Beats: 2,
		Bpm:   120,
	}
}

func TestValidateAcceptsPlainChord(t *testing.T) {
	assert.Nil(t, Validate(spec(0, 1, "135")))
	assert.Nil(t, Validate(spec(-6, 7, "1234567", -7, 4)))
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]model.ChordSpec{
		"bass too low":        {Bass: 0, Shape: model.Shape{1}, Beats: 1, Bpm: 1},
		"bass too high":       {Bass: 8, Shape: model.Shape{1}, Beats: 1, Bpm: 1},
		"empty shape":         {Bass: 1, Beats: 1, Bpm: 1},
		"shape degree 0":      {Bass: 1, Shape: model.Shape{1, 0}, Beats: 1, Bpm: 1},
		"shape degree 8":      {Bass: 1, Shape: model.Shape{8}, Beats: 1, Bpm: 1},
		"zero accidental":     {Bass: 1, Shape: model.Shape{1}, Accd: model.Accidentals{0}, Beats: 1, Bpm: 1},
		"accidental too big":  {Bass: 1, Shape: model.Shape{1}, Accd: model.Accidentals{-8}, Beats: 1, Bpm: 1},
		"raised and lowered":  {Bass: 1, Shape: model.Shape{1}, Accd: model.Accidentals{3, -3}, Beats: 1, Bpm: 1},
		"accidental repeated": {Bass: 1, Shape: model.Shape{1}, Accd: model.Accidentals{3, 3}, Beats: 1, Bpm: 1},
		"no beats":            {Bass: 1, Shape: model.Shape{1}, Bpm: 1},
		"negative bpm":        {Bass: 1, Shape: model.Shape{1}, Beats: 1, Bpm: -10},
		"too many beats":      {Bass: 1, Shape: model.Shape{1}, Beats: MaxBeats + 1, Bpm: 1},
		"huge beats":          {Bass: 1, Shape: model.Shape{1}, Beats: 1e12, Bpm: 1},
		"NaN beats":           {Bass: 1, Shape: model.Shape{1}, Beats: math.NaN(), Bpm: 1},
		"NaN bpm":             {Bass: 1, Shape: model.Shape{1}, Beats: 1, Bpm: math.NaN()},
		"infinite bpm":        {Bass: 1, Shape: model.Shape{1}, Beats: 1, Bpm: math.Inf(1)},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := Validate(c)
			assert.NotNil(t, err)
			assert.True(t, errors.Is(err, ErrInvalidChord))
		})
	}
}

func TestValidateAcceptsLongestChord(t *testing.T) {
	c := spec(0, 1, "135")
	c.Beats = MaxBeats
	assert.Nil(t, Validate(c))
}

func TestContradictoryAccidentalsMessage(t *testing.T) {
	err := ValidateAccidentals(model.Accidentals{-2, 5, 2})
	assert.EqualError(t, err, "degree 2 is both raised and lowered: invalid chord")
}

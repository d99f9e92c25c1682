package chord

import (
	"testing"

	"github.com/jsphweid/chordex/model"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSequence(t *testing.T) {
	seq := []model.ChordSpec{
		spec(0, 1, "135"),
		spec(0, 5, "1357", -3),
		spec(-3, 1, "135"),
	}

	res, err := Analyze(seq)
	assert := assert.New(t)
	assert.Nil(err)
	assert.Len(res, 3)

	assert.Equal(1, res[0].Index)
	assert.Equal("C", res[0].KeyName)
	assert.Equal("135", res[0].Degrees)
	assert.Equal("1", res[0].MainFunction)
	assert.Equal("-", res[0].ScaleLevel)
	assert.Equal("C E G  ", res[0].RealName)
	assert.Equal("0", res[0].Tension)
	assert.Equal([]string{"C3", "C5", "E5", "G4"}, res[0].Pitches)

	assert.Equal(2, res[1].Index)
	assert.Equal("5724", res[1].Degrees)
	assert.Equal("5", res[1].MainFunction)
	assert.Equal("u7", res[1].Tension)
	assert.Equal(StrengthUp, res[1].Strength)

	assert.Equal("E♭", res[2].KeyName)
	assert.Equal("E♭ G B♭  ", res[2].RealName)
}

func TestAnalyzeReportsChordIndex(t *testing.T) {
	bad := spec(0, 1, "135")
	bad.Shape = model.Shape{}
	_, err := Analyze([]model.ChordSpec{spec(0, 1, "135"), bad})
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "chord 2")
}

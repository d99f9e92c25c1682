package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseShape(t *testing.T) {
	assert := assert.New(t)

	s, err := ParseShape("1357")
	assert.Nil(err)
	assert.Equal(Shape{1, 3, 5, 7}, s)
	assert.Equal("1357", s.String())

	_, err = ParseShape("138")
	assert.NotNil(err)
	_, err = ParseShape("1a")
	assert.NotNil(err)
}

func TestRawChordJSON(t *testing.T) {
	assert := assert.New(t)
	data := []byte(`{"bass": 5, "shape": "1357", "accd": [-3], "key": 12, "beats": 4, "memo": "V7"}`)

	var c RawChord
	assert.Nil(json.Unmarshal(data, &c))
	assert.Equal(5, c.Bass)
	assert.Equal(Shape{1, 3, 5, 7}, c.Shape)
	assert.Equal(Accidentals{-3}, c.Accd)
	assert.Equal(4.0, c.Beats)
	assert.Equal("V7", c.Memo)

	_, ok := c.KeyOverride()
	assert.False(ok)

	out, err := json.Marshal(c.WithKey(-2))
	assert.Nil(err)
	assert.JSONEq(`{"bass": 5, "shape": "1357", "accd": [-3], "key": -2, "beats": 4, "memo": "V7"}`, string(out))
}

func TestShapeAcceptsArray(t *testing.T) {
	var s Shape
	assert.Nil(t, json.Unmarshal([]byte(`[1, 3, 5]`), &s))
	assert.Equal(t, Shape{1, 3, 5}, s)
	assert.NotNil(t, json.Unmarshal([]byte(`"109"`), &s))
}

func TestKeyOverride(t *testing.T) {
	assert := assert.New(t)

	var c RawChord
	_, ok := c.KeyOverride()
	assert.False(ok)

	k, ok := c.WithKey(0).KeyOverride()
	assert.True(ok)
	assert.Equal(0, k)

	_, ok = c.WithKey(KeyInherit).KeyOverride()
	assert.False(ok)
}

func TestAccidentalsString(t *testing.T) {
	assert.Equal(t, "3♭, 4＃", Accidentals{4, -3}.String())
	assert.Equal(t, "", Accidentals{}.String())
}

func TestCloneDoesNotShare(t *testing.T) {
	orig := ChordSpec{Bass: 1, Shape: Shape{1, 3, 5}, Accd: Accidentals{4}}
	c := orig.WithKey(3)
	c.Shape[0] = 2
	c.Accd[0] = -4

	assert := assert.New(t)
	assert.Equal(Shape{1, 3, 5}, orig.Shape)
	assert.Equal(Accidentals{4}, orig.Accd)
	assert.Equal(0, orig.Key)
	assert.Equal(3, c.Key)
}

func TestPitchMIDIKey(t *testing.T) {
	p := Pitch{Number: 60, Name: "C5"}
	assert.Equal(t, uint8(72), p.MIDIKey())
}

func TestNewPitch(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Pitch{Number: 29, Name: "F2"}, NewPitch(29))
	assert.Equal(Pitch{Number: 63, Name: "D#5"}, NewPitch(63))
	assert.Equal("B-1", NewPitch(-1).Name)
}

func TestPitchFromMIDIKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C5", PitchFromMIDIKey(72).Name)
	assert.Equal(uint8(41), PitchFromMIDIKey(41).MIDIKey())
}

package chord

import (
	"testing"

	"github.com/jsphweid/chordex/model"
	"github.com/stretchr/testify/assert"
)

func TestRotateShape(t *testing.T) {
	assert := assert.New(t)
	triad := model.MustParseShape("135")
	assert.Equal(model.Shape{1, 3, 5}, RotateShape(triad, 1))
	assert.Equal(model.Shape{1, 3, 6}, RotateShape(triad, 3))
	assert.Equal(model.Shape{1, 4, 6}, RotateShape(triad, 5))
	assert.Equal(model.Shape{1, 2, 4, 6}, RotateShape(model.MustParseShape("1357"), 7))
}

func TestIsBasicShape(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsBasicShape(model.MustParseShape("1357")))
	assert.True(IsBasicShape(model.MustParseShape("156")))
	assert.False(IsBasicShape(model.MustParseShape("136")))
}

func TestAbsoluteDegrees(t *testing.T) {
	assert.Equal(t, "572", AbsoluteDegrees(5, model.MustParseShape("135")))
	assert.Equal(t, "135", AbsoluteDegrees(1, model.MustParseShape("135")))
}

func TestCatalog(t *testing.T) {
	assert := assert.New(t)
	entries := Catalog()
	assert.Len(entries, 64)

	first := entries[0]
	assert.Equal("3-note", first.Group)
	assert.Equal(1, first.Bass)
	assert.Equal(model.Shape{1, 3, 5}, first.Shape)
	assert.Equal("1", first.MainFunction)
	assert.True(first.Common)

	inversion := entries[1]
	assert.Equal(model.Shape{1, 3, 6}, inversion.Shape)
	assert.Equal("6/1", inversion.MainFunction)
	assert.False(inversion.Common)

	last := entries[len(entries)-1]
	assert.Equal(model.Shape{1, 2, 3, 4, 5, 6, 7}, last.Shape)
}

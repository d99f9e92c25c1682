package chord

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/scale"
	"golang.org/x/exp/slices"
)

type ShapeGroup struct {
	Name   string
	Shapes []model.Shape
}

var BasicShapes = []ShapeGroup{
	{"3-note", shapes("135", "137", "157", "123", "125")},
	{"4-note", shapes("1357", "1235", "1345", "1457", "1567")},
	{"5-note", shapes("12357", "13457", "12345")},
	{"other", shapes("1", "13", "15", "17", "123457", "1234567")},
}

var SemiBasicShapes = shapes("156", "145", "13567", "123567", "134567")

func shapes(strs ...string) []model.Shape {
	res := make([]model.Shape, 0, len(strs))
	for _, s := range strs {
		res = append(res, model.MustParseShape(s))
	}
	return res
}

// RotateShape re-reads a shape with its degree b moved to the bass.
func RotateShape(shape model.Shape, b int) model.Shape {
	res := make(model.Shape, 0, len(shape))
	for _, n := range shape {
		res = append(res, (n-(b-1)+6)%scale.NumDegrees+1)
	}
	sort.Ints(res)
	return res
}

// IsBasicShape reports whether shape is one of the basic or semi-basic shapes.
func IsBasicShape(shape model.Shape) bool {
	for _, g := range BasicShapes {
		for _, s := range g.Shapes {
			if slices.Equal(s, shape) {
				return true
			}
		}
	}
	for _, s := range SemiBasicShapes {
		if slices.Equal(s, shape) {
			return true
		}
	}
	return false
}

// AbsoluteDegrees lists the scale degree of every shape tone, e.g. "572" for
// shape 135 on bass 5.
func AbsoluteDegrees(bass int, shape model.Shape) string {
	var b strings.Builder
	for _, n := range shape {
		b.WriteString(strconv.Itoa((n+bass-2)%scale.NumDegrees + 1))
	}
	return b.String()
}

// Catalog lists every basic shape inverted onto each of its own tones, the
// way the shape picker lays them out.
func Catalog() []model.CatalogEntry {
	var res []model.CatalogEntry
	full := model.MustParseShape("1234567")
	for _, g := range BasicShapes {
		for _, basic := range g.Shapes {
			for b := 1; b <= scale.NumDegrees; b++ {
				if !slices.Contains(basic, b) {
					continue
				}
				// every rotation of the full scale is the same shape
				if slices.Equal(basic, full) && b > 1 {
					continue
				}
				shape := RotateShape(basic, b)
				mf, err := CalcMainFunction(1, shape)
				if err != nil {
					panic("basic shape failed to analyze: " + err.Error())
				}
				res = append(res, model.CatalogEntry{
					Group:        g.Name,
					Basic:        basic,
					Bass:         b,
					Shape:        shape,
					MainFunction: mf.String(),
					Common:       IsBasicShape(shape),
				})
			}
		}
	}
	return res
}

package chord

import (
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/scale"
	"golang.org/x/exp/slices"
)

// MainFunction holds the absolute scale degrees that anchor a chord. Second
// holds the degrees that scored one point below the best.
type MainFunction struct {
	First  []int `json:"first"`
	Second []int `json:"second"`
}

func joinDegrees(degrees []int) string {
	strs := make([]string, 0, len(degrees))
	for _, d := range degrees {
		strs = append(strs, strconv.Itoa(d))
	}
	return strings.Join(strs, ",")
}

func (m MainFunction) String() string {
	res := joinDegrees(m.First)
	if len(m.Second) > 0 {
		res += "/" + joinDegrees(m.Second)
	}
	return res
}

// score rewards a tone for being the bass and for having its third, fifth
// and seventh present in the chord.
func score(n int, shape model.Shape) int {
	var p int
	if n == 1 {
		p += 2
	}
	if slices.Contains(shape, (n+1)%scale.NumDegrees+1) {
		p += 2
	}
	if slices.Contains(shape, (n+3)%scale.NumDegrees+1) {
		p += 3
	}
	if slices.Contains(shape, (n+5)%scale.NumDegrees+1) {
		p += 1
	}
	return p
}

func CalcMainFunction(bass int, shape model.Shape) (MainFunction, error) {
	var res MainFunction
	if err := validateDegree("bass", bass); err != nil {
		return res, err
	}
	if err := ValidateShape(shape); err != nil {
		return res, err
	}

	points := make([]int, len(shape))
	var maxPoint int
	for i, n := range shape {
		points[i] = score(n, shape)
		if points[i] > maxPoint {
			maxPoint = points[i]
		}
	}

	for i, n := range shape {
		degree := (n+bass-2)%scale.NumDegrees + 1
		switch points[i] {
		case maxPoint:
			res.First = append(res.First, degree)
		case maxPoint - 1:
			res.Second = append(res.Second, degree)
		}
	}
	return res, nil
}

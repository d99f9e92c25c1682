package util

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Wrap folds n into [min, min+width). width must be positive.
func Wrap[A constraints.Signed](n A, min A, width A) A {
	if width <= 0 {
		panic("util.Wrap: width must be positive")
	}
	return ((n-min)%width+width)%width + min
}

func WrapFloat(n float64, min float64, width float64) float64 {
	if width <= 0 {
		panic("util.WrapFloat: width must be positive")
	}
	return math.Mod(math.Mod(n-min, width)+width, width) + min
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv[A constraints.Signed](n A, d A) A {
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return q
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Sum[A Number](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

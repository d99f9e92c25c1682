package model

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/scale"
	"github.com/pkg/errors"
)

// KeyInherit is the legacy chord-file marker for "keep the previous key".
const KeyInherit = 12

// Shape lists chord tones as scale degrees counted from the bass (1 = bass).
type Shape []int

func ParseShape(s string) (Shape, error) {
	res := make(Shape, 0, len(s))
	for _, r := range s {
		if r < '1' || r > '7' {
			return nil, errors.Errorf("invalid shape %q: %q is not a degree in 1-7", s, r)
		}
		res = append(res, int(r-'0'))
	}
	return res, nil
}

func MustParseShape(s string) Shape {
	res, err := ParseShape(s)
	if err != nil {
		panic(err)
	}
	return res
}

func (s Shape) String() string {
	var b strings.Builder
	for _, n := range s {
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

func (s Shape) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Shape) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		parsed, err := ParseShape(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	// also accept a plain array of degrees
	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return errors.Wrap(err, "shape must be a digit string or an array of degrees")
	}
	*s = nums
	return nil
}

// Accidentals raise (n) or lower (-n) scale degree n by a chromatic unit.
type Accidentals []int

func (a Accidentals) String() string {
	sorted := append(Accidentals(nil), a...)
	sort.Ints(sorted)
	labels := make([]string, 0, len(sorted))
	for _, n := range sorted {
		labels = append(labels, scale.AccidentalLabel(n))
	}
	return strings.Join(labels, ", ")
}

// ChordSpec is a fully resolved chord. Treat it as a value: the helpers here
// return copies rather than touching the receiver's slices.
type ChordSpec struct {
	Key   int
	Bass  int
	Shape Shape
	Accd  Accidentals
	Beats float64
	Bpm   float64
	Memo  string
}

func (c ChordSpec) Clone() ChordSpec {
	c.Shape = append(Shape(nil), c.Shape...)
	if c.Accd != nil {
		c.Accd = append(Accidentals(nil), c.Accd...)
	}
	return c
}

func (c ChordSpec) WithKey(key int) ChordSpec {
	res := c.Clone()
	res.Key = key
	return res
}

// RawChord is a chord as stored in a chord file. Key, Bpm and Beats may be
// left out, in which case they are inherited from earlier chords.
type RawChord struct {
	Memo  string      `json:"memo,omitempty"`
	Bpm   float64     `json:"bpm,omitempty"`
	Key   *int        `json:"key,omitempty"`
	Bass  int         `json:"bass"`
	Shape Shape       `json:"shape"`
	Accd  Accidentals `json:"accd,omitempty"`
	Beats float64     `json:"beats,omitempty"`
}

// KeyOverride reports the chord's explicit key, if it has one.
func (c RawChord) KeyOverride() (int, bool) {
	if c.Key == nil || *c.Key == KeyInherit {
		return 0, false
	}
	return *c.Key, true
}

func (c RawChord) WithKey(key int) RawChord {
	c.Key = &key
	return c
}

type ChordFile struct {
	DefaultBeats float64    `json:"default_beats"`
	BgColor      string     `json:"bgcolor"`
	Color        string     `json:"color"`
	Chords       []RawChord `json:"chords"`
}

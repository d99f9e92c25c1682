package chord

import (
	"math"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/scale"
	"github.com/pkg/errors"
)

var ErrInvalidChord = errors.New("invalid chord")

// MaxBeats keeps a chord's length in ticks well inside a MIDI delta time.
const MaxBeats = 1 << 16

func validateDegree(what string, n int) error {
	if n < 1 || n > scale.NumDegrees {
		return errors.Wrapf(ErrInvalidChord, "%s %d is outside 1-7", what, n)
	}
	return nil
}

func ValidateShape(shape model.Shape) error {
	if len(shape) == 0 {
		return errors.Wrap(ErrInvalidChord, "shape is empty")
	}
	for _, n := range shape {
		if err := validateDegree("shape degree", n); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAccidentals rejects zero or out of range entries and any degree
// that is listed more than once, including raised and lowered together.
func ValidateAccidentals(accd model.Accidentals) error {
	seen := make(map[int]int)
	for _, a := range accd {
		degree := a
		if degree < 0 {
			degree = -degree
		}
		if err := validateDegree("accidental degree", degree); err != nil {
			return err
		}
		if prev, ok := seen[degree]; ok {
			if prev != a {
				return errors.Wrapf(ErrInvalidChord, "degree %d is both raised and lowered", degree)
			}
			return errors.Wrapf(ErrInvalidChord, "accidental %d is listed twice", a)
		}
		seen[degree] = a
	}
	return nil
}

func validateHarmony(bass int, shape model.Shape, accd model.Accidentals) error {
	if err := validateDegree("bass", bass); err != nil {
		return err
	}
	if err := ValidateShape(shape); err != nil {
		return err
	}
	return ValidateAccidentals(accd)
}

// Validate checks a resolved chord, including its timing.
func Validate(c model.ChordSpec) error {
	if err := validateHarmony(c.Bass, c.Shape, c.Accd); err != nil {
		return err
	}
	if !(c.Beats > 0 && c.Beats <= MaxBeats) {
		return errors.Wrapf(ErrInvalidChord, "beats must be in (0, %d], got %v", MaxBeats, c.Beats)
	}
	if !(c.Bpm > 0) || math.IsInf(c.Bpm, 1) {
		return errors.Wrapf(ErrInvalidChord, "bpm must be positive, got %v", c.Bpm)
	}
	return nil
}

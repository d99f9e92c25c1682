package file

import (
	"encoding/json"
	"io"
	"os"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"
	"github.com/pkg/errors"
)

// New returns the document the editor starts from: one root-position triad.
func New() model.ChordFile {
	return model.ChordFile{
		DefaultBeats: constants.DefaultBeats,
		BgColor:      constants.DefaultBgColor,
		Color:        constants.DefaultColor,
		Chords: []model.RawChord{{
			Bass:  1,
			Shape: model.MustParseShape("135"),
			Beats: constants.DefaultBeats,
		}},
	}
}

func fillDefaults(doc *model.ChordFile) {
	if doc.DefaultBeats <= 0 {
		doc.DefaultBeats = constants.DefaultBeats
	}
	if doc.BgColor == "" {
		doc.BgColor = constants.DefaultBgColor
	}
	if doc.Color == "" {
		doc.Color = constants.DefaultColor
	}
}

func Read(r io.Reader) (model.ChordFile, error) {
	var doc model.ChordFile
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return doc, errors.Wrap(err, "could not decode chord file")
	}
	fillDefaults(&doc)
	return doc, nil
}

func ReadFile(path string) (model.ChordFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.ChordFile{}, errors.Wrapf(err, "could not open %s", path)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return doc, errors.Wrap(err, path)
	}
	return doc, nil
}

// Prepare gives the first chord an explicit key and bpm so the saved file
// does not depend on whoever opens it next.
func Prepare(doc model.ChordFile, key int, bpm float64) model.ChordFile {
	res := doc
	res.Chords = append([]model.RawChord(nil), doc.Chords...)
	fillDefaults(&res)
	if len(res.Chords) == 0 {
		return res
	}

	first := res.Chords[0]
	if _, ok := first.KeyOverride(); !ok {
		first = first.WithKey(key)
	}
	if first.Bpm == 0 {
		first.Bpm = bpm
	}
	res.Chords[0] = first
	return res
}

func Write(w io.Writer, doc model.ChordFile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "could not encode chord file")
	}
	return nil
}

func WriteFile(path string, doc model.ChordFile) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}
	defer f.Close()
	return Write(f, doc)
}

// Resolve turns the document into fully resolved chords. key and bpm apply
// until the file sets its own.
func Resolve(doc model.ChordFile, key int, bpm float64) ([]model.ChordSpec, error) {
	beats := doc.DefaultBeats
	if beats <= 0 {
		beats = constants.DefaultBeats
	}
	return chord.NormalizeSequence(doc.Chords, key, bpm, beats)
}

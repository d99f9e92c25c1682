package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jsphweid/chordex/file"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/util"
	"github.com/pkg/errors"
)

var chordFilePattern = regexp.MustCompile(`\.json$`)

// Result maps each chord file to the MIDI file written for it, and lists the
// ones that had to be skipped.
type Result struct {
	Written map[string]string
	Skipped map[string]error
}

// GatherChordFiles lists the chord files directly inside dir, sorted.
func GatherChordFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", dir)
	}

	byName := make(map[string]string)
	for _, e := range entries {
		if !e.IsDir() && chordFilePattern.MatchString(e.Name()) {
			byName[e.Name()] = filepath.Join(dir, e.Name())
		}
	}

	res := make([]string, 0, len(byName))
	for _, name := range util.GetKeysSorted(byName) {
		res = append(res, byName[name])
	}
	return res, nil
}

func outPath(outDir, path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(outDir, base+".mid")
}

func exportFile(path, out string, key int, bpm float64) error {
	doc, err := file.ReadFile(path)
	if err != nil {
		return err
	}
	seq, err := file.Resolve(doc, key, bpm)
	if err != nil {
		return err
	}
	s, err := midi.Export(seq)
	if err != nil {
		return err
	}
	return midi.WriteFile(out, s)
}

// ExportAll writes one MIDI file per chord file into outDir. A file that
// fails is skipped and reported rather than stopping the run.
func ExportAll(paths []string, outDir string, key int, bpm float64) (Result, error) {
	res := Result{
		Written: make(map[string]string),
		Skipped: make(map[string]error),
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return res, errors.Wrapf(err, "could not create %s", outDir)
	}

	for i, path := range paths {
		fmt.Printf("Processing %v of %v chord files\n", i+1, len(paths))
		out := outPath(outDir, path)
		if err := exportFile(path, out, key, bpm); err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			res.Skipped[path] = err
			continue
		}
		res.Written[path] = out
	}
	return res, nil
}

// DeleteAll removes earlier exports from outDir. A missing dir is not an
// error.
func DeleteAll(outDir string) error {
	entries, err := os.ReadDir(outDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "could not read %s", outDir)
	}

	r := regexp.MustCompile(`\.mid$`)
	for _, e := range entries {
		if !e.IsDir() && r.MatchString(e.Name()) {
			if err := os.Remove(filepath.Join(outDir, e.Name())); err != nil {
				return errors.Wrap(err, "could not remove old export")
			}
		}
	}
	return nil
}

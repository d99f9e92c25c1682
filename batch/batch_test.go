package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/midi"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestGatherChordFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.json":    "{}",
		"a.json":    "{}",
		"notes.txt": "",
	})
	assert.Nil(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0755))

	paths, err := GatherChordFiles(dir)
	assert.Nil(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")}, paths)
}

func TestExportAll(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeFiles(t, dir, map[string]string{
		"good.json": `{"chords": [{"bass": 1, "shape": "135"}, {"bass": 5, "shape": "1357"}]}`,
		"bad.json":  `{"chords": [{"bass": 0, "shape": "135"}]}`,
	})

	paths, err := GatherChordFiles(dir)
	assert.Nil(t, err)
	res, err := ExportAll(paths, out, 0, 120)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Len(res.Written, 1)
	assert.Len(res.Skipped, 1)

	good := filepath.Join(dir, "good.json")
	assert.Equal(filepath.Join(out, "good.mid"), res.Written[good])
	assert.True(errors.Is(res.Skipped[filepath.Join(dir, "bad.json")], chord.ErrInvalidChord))

	s, err := midi.ReadMidiFile(res.Written[good])
	assert.Nil(err)
	assert.Len(midi.Summarize(s).Chords, 2)
}

func TestDeleteAll(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.mid": "", "b.mid": "", "keep.json": "{}"})

	assert.Nil(t, DeleteAll(dir))
	entries, err := os.ReadDir(dir)
	assert.Nil(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "keep.json", entries[0].Name())
}

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeFile(t *testing.T) {
	res := Analyze("testdata/progression.json", 0, 160)

	assert := assert.New(t)
	assert.Len(res, 4)
	assert.Equal(1, res[0].Index)
	assert.Equal("tonic", res[0].Memo)
	assert.Equal("4", res[1].MainFunction)
	assert.Equal(float64(80), res[3].Bpm)
}

func TestAnalyzePanicsOnMissingFile(t *testing.T) {
	assert.Panics(t, func() { Analyze("testdata/missing.json", 0, 160) })
}

func TestBuildReport(t *testing.T) {
	report := buildReport(Analyze("testdata/progression.json", 0, 160))

	assert := assert.New(t)
	assert.Equal(4, report.numChords)
	assert.Equal(float64(12), report.totalBeats)
	// 4 + 4 + 2 beats at 100 bpm, 2 beats at 80
	assert.InDelta(7.5, report.seconds, 1e-9)
	assert.Equal(0, report.keyChanges)
	assert.InDelta(8, report.meanTension, 1e-9)
	assert.Equal(float64(10), report.maxTension)
	assert.Equal(3, report.strengths["down"])
	assert.Equal(0, report.strengths["strong"])
	assert.Equal(3, report.levels["-"])
	assert.Equal(1, report.levels["β"])
}

func TestBuildReportSingleChord(t *testing.T) {
	res := Analyze("testdata/progression.json", 0, 160)[:1]
	report := buildReport(res)

	assert := assert.New(t)
	assert.Equal(1, report.numChords)
	assert.Equal(float64(0), report.meanTension)
	assert.Empty(report.strengths)
}

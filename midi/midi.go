package midi

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const channel = 0

// ChordTicks is how long a chord of the given beats lasts.
func ChordTicks(beats float64) uint32 {
	return uint32(math.Round(constants.TicksPerBeat * beats))
}

// Export writes the sequence as a single-track SMF. Every chord's pitches
// start together and last for the chord's beats. A tempo event is written
// whenever the bpm differs from the chord before.
func Export(seq []model.ChordSpec) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerBeat)

	var tr smf.Track
	var currentBpm float64
	for i, c := range seq {
		if err := chord.Validate(c); err != nil {
			return nil, errors.Wrapf(err, "chord %d", i+1)
		}
		pitches, err := chord.ResolvePitches(c)
		if err != nil {
			return nil, errors.Wrapf(err, "chord %d", i+1)
		}

		if c.Bpm != currentBpm {
			currentBpm = c.Bpm
			tr.Add(0, smf.MetaTempo(c.Bpm))
		}
		for _, p := range pitches {
			tr.Add(0, midi.NoteOn(channel, p.MIDIKey(), constants.Velocity))
		}
		delta := ChordTicks(c.Beats)
		for _, p := range pitches {
			tr.Add(delta, midi.NoteOff(channel, p.MIDIKey()))
			delta = 0
		}
	}

	tr.Close(0)
	s.Add(tr)
	return s, nil
}

func Write(w io.Writer, s *smf.SMF) error {
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write midi")
	}
	return nil
}

func WriteFile(path string, s *smf.SMF) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}
	defer f.Close()
	return Write(f, s)
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// smf can panic on malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = errors.Errorf("Error parsing midi file... %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file...")
	}
	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file...")
	}
	return Read(bytes.NewReader(dat))
}

// ChordEvent is a group of notes that start on the same tick.
type ChordEvent struct {
	Tick  uint64
	Keys  []uint8
	Names []string
}

type Summary struct {
	TicksPerBeat uint16
	NumTracks    int
	Tempi        []float64
	Chords       []ChordEvent
}

func (s Summary) String() string {
	return fmt.Sprintf("%d track(s), %d ticks per beat, %d chord(s), tempi %v",
		s.NumTracks, s.TicksPerBeat, len(s.Chords), s.Tempi)
}

// Summarize groups the note-ons of every track by absolute tick.
func Summarize(s *smf.SMF) Summary {
	res := Summary{NumTracks: len(s.Tracks)}
	if ticks, ok := s.TimeFormat.(smf.MetricTicks); ok {
		res.TicksPerBeat = uint16(ticks)
	}

	onsets := make(map[uint64][]uint8)
	for _, track := range s.Tracks {
		var absTicks uint64
		for _, ev := range track {
			absTicks += uint64(ev.Delta)

			var ch, key, vel uint8
			var bpm float64
			switch {
			case ev.Message.GetNoteOn(&ch, &key, &vel):
				if vel > 0 {
					onsets[absTicks] = append(onsets[absTicks], key)
				}
			case ev.Message.GetMetaTempo(&bpm):
				res.Tempi = append(res.Tempi, bpm)
			}
		}
	}

	for _, tick := range util.GetKeysSorted(onsets) {
		keys := onsets[tick]
		names := make([]string, 0, len(keys))
		for _, k := range keys {
			names = append(names, model.PitchFromMIDIKey(k).Name)
		}
		res.Chords = append(res.Chords, ChordEvent{Tick: tick, Keys: keys, Names: names})
	}
	return res
}

package midi

import (
	"bytes"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/logging"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/root"
	"github.com/jsphweid/chordsheet/util"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
	"go.uber.org/zap"
)

const velocity = 100

// Voicing spells a chord symbol as MIDI keys in the given octave (C4 = 60).
// A slash bass is added an octave below the root.
func Voicing(symbol string, octave int) ([]uint8, error) {
	r, err := root.Resolve(symbol)
	if err != nil {
		return nil, err
	}
	head, bass, _ := strings.Cut(symbol, "/")
	base := 12*(octave+1) + r.Ordinal()

	var keys []int
	for _, interval := range intervals(head[len(r.String()):]) {
		keys = append(keys, base+interval)
	}
	if bass != "" {
		if b, err := root.Resolve(bass); err == nil {
			keys = append(keys, 12*octave+b.Ordinal())
		}
	}

	var res []uint8
	seen := make(map[int]bool)
	for _, k := range keys {
		if k < 0 || k > 127 || seen[k] {
			continue
		}
		seen[k] = true
		res = append(res, uint8(k))
	}
	if len(res) == 0 {
		return nil, errors.Errorf("no playable notes for %q in octave %d", symbol, octave)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res, nil
}

// intervals reads the part of a chord after its root, e.g. "m7" or "sus4".
func intervals(suffix string) []int {
	var res []int
	switch {
	case strings.Contains(suffix, "ø"):
		return []int{0, 3, 6, 10}
	case strings.Contains(suffix, "dim"), strings.ContainsAny(suffix, "º°"):
		res = []int{0, 3, 6}
		if strings.Contains(suffix, "7") {
			return append(res, 9)
		}
		return res
	case strings.Contains(suffix, "aug"), strings.Contains(suffix, "+"):
		res = []int{0, 4, 8}
	case strings.Contains(suffix, "sus2"):
		res = []int{0, 2, 7}
	case strings.Contains(suffix, "sus"):
		res = []int{0, 5, 7}
	case strings.HasPrefix(suffix, "m") && !strings.HasPrefix(suffix, "maj"):
		res = []int{0, 3, 7}
	default:
		res = []int{0, 4, 7}
	}

	switch {
	case strings.Contains(suffix, "maj7"), strings.Contains(suffix, "Maj7"),
		strings.Contains(suffix, "7M"), strings.Contains(suffix, "Δ"):
		res = append(res, 11)
	case strings.Contains(suffix, "7"):
		res = append(res, 10)
	}
	if strings.Contains(suffix, "6") {
		res = append(res, 9)
	}
	if strings.Contains(suffix, "9") {
		res = append(res, 14)
	}
	if strings.Contains(suffix, "11") {
		res = append(res, 17)
	}
	if strings.Contains(suffix, "13") {
		res = append(res, 21)
	}
	return res
}

// Render plays every chord for one 4/4 bar, in order. Chords without a
// voicing are skipped.
func Render(chords []model.Chord, octave int, bpm float64) *smf.SMF {
	clock := smf.MetricTicks(constants.TicksPerQuarter)
	bar := clock.Ticks4th() * 4

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(bpm))
	for _, c := range chords {
		keys, err := Voicing(c.Symbol, octave)
		if err != nil {
			logging.L().Debug("skipping chord without voicing",
				zap.String("chord", c.Symbol),
				zap.Error(err))
			continue
		}
		tr.Add(0, smf.MetaLyric(c.Symbol))
		for _, k := range keys {
			tr.Add(0, gomidi.NoteOn(0, k, velocity))
		}
		for i, k := range keys {
			var delta uint32
			if i == 0 {
				delta = bar
			}
			tr.Add(delta, gomidi.NoteOff(0, k))
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	s.Tracks = append(s.Tracks, tr)
	return s
}

func Write(w io.Writer, s *smf.SMF) error {
	_, err := s.WriteTo(w)
	return errors.Wrap(err, "could not write midi")
}

func WriteFile(path string, s *smf.SMF) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %v", path)
	}
	defer f.Close()
	return Write(f, s)
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file")
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file")
	}
	return res, nil
}

// Onsets returns the keys struck together at each tick where a note starts,
// in time order.
func Onsets(s *smf.SMF) [][]uint8 {
	byTick := make(map[int64][]uint8)
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, vel uint8
			if event.Message.GetNoteOn(&channel, &key, &vel) && vel > 0 {
				byTick[absTicks] = append(byTick[absTicks], key)
			}
		}
	}

	var res [][]uint8
	for _, t := range util.GetKeys(byTick) {
		keys := byTick[t]
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		res = append(res, keys)
	}
	return res
}

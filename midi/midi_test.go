package midi

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestVoicing(t *testing.T) {
	cases := map[string][]uint8{
		"C":      {60, 64, 67},
		"Am7":    {69, 72, 76, 79},
		"D/F#":   {54, 62, 66, 69},
		"Cmaj7":  {60, 64, 67, 71},
		"C#7M":   {61, 65, 68, 72},
		"Bø7":    {71, 74, 77, 81},
		"F#º":    {66, 69, 72},
		"Gsus4":  {67, 72, 74},
		"Dsus2":  {62, 64, 69},
		"Caug":   {60, 64, 68},
		"G6(9)":  {67, 71, 74, 76, 81},
		"CmMaj7": {60, 63, 67, 71},
		"Ebm":    {63, 66, 70},
	}
	for symbol, want := range cases {
		t.Run(symbol, func(t *testing.T) {
			got, err := Voicing(symbol, 4)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestVoicingErrors(t *testing.T) {
	_, err := Voicing("x7", 4)
	assert.Error(t, err)
	_, err = Voicing("C", 20)
	assert.Error(t, err)
}

func TestRenderRoundTrip(t *testing.T) {
	chords := []model.Chord{{Symbol: "C"}, {Symbol: "x7"}, {Symbol: "Am7"}}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Render(chords, 4, 90)))

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{{60, 64, 67}, {69, 72, 76, 79}}, Onsets(s))
}

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mid")
	chords := chord.Find("G   D/F#   Em")
	require.NoError(t, WriteFile(path, Render(chords, 3, 120)))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	onsets := Onsets(s)
	require.Len(t, onsets, 3)
	assert.Equal(t, []uint8{55, 59, 62}, onsets[0])
	assert.Equal(t, []uint8{42, 50, 54, 57}, onsets[1])
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
}

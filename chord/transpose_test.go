package chord

import (
	"testing"

	"github.com/jsphweid/chordsheet/logging"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/root"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func first(t *testing.T, text string) model.Chord {
	chords := Find(text)
	require.NotEmpty(t, chords, text)
	return chords[0]
}

func TestTransposeTextSameRoot(t *testing.T) {
	assert.Equal(t, "C", TransposeText("C", root.C, root.C))
	assert.Equal(t, testText, TransposeText(testText, root.G, root.G))
	// untouched, not even normalized
	assert.Equal(t, `"C"\n`, TransposeText(`"C"\n`, root.E, root.E))
}

func TestTransposeText(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#", TransposeText("C", root.C, root.Db))
	assert.Equal("Bb", TransposeText("C", root.C, root.Bb))
	assert.Equal("D\nCar", TransposeText("C\nCar", root.C, root.D))
	assert.Equal("C", TransposeText("G", root.G, root.C))
}

func TestTransposeTextGrowsAndShifts(t *testing.T) {
	got := TransposeText(
		"       Em           C           Am7        F#º\nVim buscar e vim salvar o que estava já perdido",
		root.C,
		root.D,
	)
	assert.Equal(t,
		"       F#m           D           Bm7        G#º\nVim buscar e vim salvar o que estava já perdido",
		got,
	)
}

func TestTransposeTextChordsPositions(t *testing.T) {
	text, chords := TransposeTextChords("G  C  D\nlyrics here\nEm  Am  Bb", root.C, root.Db)
	assert.Equal(t, "G#  C#  D#\nlyrics here\nFm  Bbm  B", text)
	assert.Equal(t, []string{"G#", "C#", "D#", "Fm", "Bbm", "B"}, symbols(chords))
	for _, c := range chords {
		assert.Equal(t, c.Symbol, text[c.Start:c.End])
	}
}

func TestTransposeTextRoundTrip(t *testing.T) {
	text := "C   G   Am   F\nla la la\nDm7  Bb  E7  A"
	for _, from := range root.All() {
		for _, to := range root.All() {
			there := TransposeText(text, from, to)
			assert.Equal(t, text, TransposeText(there, to, from), "%v -> %v", from, to)
		}
	}
}

func TestTransposeChordDiminished(t *testing.T) {
	c := first(t, "F#º")
	assert.Equal(t, "Gº", TransposeChord(c, root.G, root.Ab).Text)
	assert.Equal(t, "G#º", TransposeChord(c, root.G, root.A).Text)
}

func TestTransposeChordSlash(t *testing.T) {
	c := first(t, "C/D")
	assert.Equal(t, "D/E", TransposeChord(c, root.C, root.D).Text)
	res := TransposeChord(c, root.C, root.Eb)
	assert.True(t, res.Ok())
	assert.Equal(t, "D#/F", res.Text)

	assert.Equal(t, "C#m/B", TransposeChord(first(t, "Bm/A"), root.A, root.B).Text)
	assert.Equal(t, "G/B", TransposeChord(first(t, "D/F#"), root.D, root.G).Text)
}

func TestTransposeChordKeepsSuffix(t *testing.T) {
	assert.Equal(t, "G#6(9)", TransposeChord(first(t, "G6(9)"), root.C, root.Db).Text)
	assert.Equal(t, "G#sus", TransposeChord(first(t, "Gsus"), root.C, root.Db).Text)
	assert.Equal(t, "Ebm7", TransposeChord(first(t, "Ebm7"), root.C, root.C).Text)
	assert.Equal(t, "Em7", TransposeChord(first(t, "Ebm7"), root.C, root.Db).Text)
}

func TestTransposeChordFallsBack(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := logging.L()
	logging.Use(zap.New(core))
	defer logging.Use(prev)

	c := model.Chord{Symbol: "Hello World", Start: 0, End: 1}
	res := TransposeChord(c, root.C, root.F)
	assert.False(t, res.Ok())
	assert.Equal(t, "Hello World", res.Text)
	assert.True(t, errors.Is(res.Err, root.ErrUnknownRoot))
	assert.Equal(t, 1, logs.FilterField(zap.String("chord", "Hello World")).Len())
}

func TestTransposeChordMissingBass(t *testing.T) {
	res := TransposeChord(model.Chord{Symbol: "C/"}, root.C, root.D)
	assert.False(t, res.Ok())
	assert.True(t, errors.Is(res.Err, ErrNoChord))
	assert.Equal(t, "C/", res.Text)
}

func TestTransposeTextFallbackIsScopedToOneChord(t *testing.T) {
	// "x7" passes the classifier but has no root
	assert.Equal(t, "D  x7  A", TransposeText("C  x7  G", root.C, root.D))
}

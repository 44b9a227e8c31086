package chord

import (
	"strings"

	"github.com/jsphweid/chordsheet/logging"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/root"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrNoChord = errors.New("no chord found")

// Transposed is the outcome of transposing one chord. When Err is set the
// chord could not be transposed and Text holds the original symbol.
type Transposed struct {
	Text string
	Err  error
}

func (t Transposed) Ok() bool {
	return t.Err == nil
}

// TransposeChord moves the root of c, and the bass of a slash chord, by the
// distance from one key to another. It never fails: a symbol that cannot be
// transposed comes back unchanged together with the reason.
func TransposeChord(c model.Chord, from, to root.Root) Transposed {
	text, err := transpose(c.Symbol, from, to)
	if err != nil {
		logging.L().Debug("could not transpose chord",
			zap.String("chord", c.Symbol),
			zap.Error(err))
		return Transposed{Text: c.Symbol, Err: err}
	}
	return Transposed{Text: text}
}

func transpose(symbol string, from, to root.Root) (string, error) {
	if from == to {
		return symbol, nil
	}
	old, err := root.Resolve(symbol)
	if err != nil {
		return "", err
	}
	shifted := old.Add(to.Ordinal() - from.Ordinal())
	res := shifted.String() + symbol[len(old.String()):]

	head, bass, ok := strings.Cut(res, "/")
	if !ok {
		return res, nil
	}
	chords := Find(bass)
	if len(chords) == 0 {
		return "", errors.Wrapf(ErrNoChord, "bass of %q", symbol)
	}
	return head + "/" + TransposeChord(chords[0], from, to).Text, nil
}

// TransposeText transposes every chord in text from one key to another.
// Equal keys return text untouched.
func TransposeText(text string, from, to root.Root) string {
	res, _ := TransposeTextChords(text, from, to)
	return res
}

// TransposeTextChords is TransposeText that also returns the transposed
// chords. Their offsets are relative to the normalized result, which is the
// returned text whenever the keys differ.
func TransposeTextChords(text string, from, to root.Root) (string, []model.Chord) {
	if from == to {
		return text, Find(text)
	}
	normalized := Normalize(text)
	return splice(normalized, find(normalized), func(c model.Chord) string {
		return TransposeChord(c, from, to).Text
	})
}

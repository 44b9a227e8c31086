// Package chord detects chord symbols in free text and rewrites them in
// place, keeping the column layout of chord-over-lyrics sheets.
package chord

import (
	"strings"

	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/root"
	"github.com/jsphweid/chordsheet/token"
)

const LineSeparator = "\n"

// Normalize removes double quotes and turns the literal escapes `\\n` and
// `\n` into real line breaks. Every offset returned by this package is
// relative to the normalized text.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, `"`, "")
	text = strings.ReplaceAll(text, `\\n`, LineSeparator)
	return strings.ReplaceAll(text, `\n`, LineSeparator)
}

// Line is one line of a sheet after classification.
type Line struct {
	Number    int
	Text      string
	Words     []token.Word
	ChordLine bool
}

// Chords returns the confirmed chords of a chord line, or nothing.
func (l Line) Chords() []model.Chord {
	if !l.ChordLine {
		return nil
	}
	var res []model.Chord
	for _, w := range l.Words {
		if w.Chord {
			res = append(res, model.Chord{Symbol: w.Text, Start: w.Start, End: w.End})
		}
	}
	return res
}

// Find returns the chords of every chord line in text, in order.
func Find(text string) []model.Chord {
	return find(Normalize(text))
}

// FindSimplified is Find with every chord simplified. Start offsets are kept
// and End shrinks by the removed length.
func FindSimplified(text string) []model.Chord {
	chords := Find(text)
	for i, c := range chords {
		simple, delta := Simplify(c.Symbol)
		chords[i] = model.Chord{Symbol: simple, Start: c.Start, End: c.End - delta}
	}
	return chords
}

func find(normalized string) []model.Chord {
	var res []model.Chord
	for _, line := range scan(normalized) {
		res = append(res, line.Chords()...)
	}
	return res
}

// scan classifies every line of an already normalized text. Word offsets are
// in document coordinates.
func scan(normalized string) []Line {
	var lines []Line
	offset := 0
	for i, text := range strings.Split(normalized, LineSeparator) {
		words := token.Split(text)
		for j, w := range words {
			w = w.Shift(offset)
			w.CouldBeChord = root.HasAliasPrefix(w.Text)
			w.Chord = IsValid(w.Text)
			words[j] = w
		}
		lines = append(lines, Line{
			Number:    i + 1,
			Text:      text,
			Words:     words,
			ChordLine: isChordLine(words),
		})
		offset += len(text) + len(LineSeparator)
	}
	return lines
}

// isChordLine takes a strict majority vote of the words, ignoring bare
// parentheses. A line with a single word is a chord line only when that
// word is a chord, so "Car" alone never qualifies.
func isChordLine(words []token.Word) bool {
	var voters, chords int
	for _, w := range words {
		if w.IsParen() {
			continue
		}
		voters++
		if w.Chord {
			chords++
		}
	}
	if voters == 1 {
		return chords == 1
	}
	return chords > max(voters/2, 1)
}

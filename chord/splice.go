package chord

import (
	"strings"

	"github.com/jsphweid/chordsheet/model"
)

// splice replaces each chord of text, left to right, with rewrite(chord).
// chords must be ordered and must not overlap. The running offset is the net
// growth of everything replaced so far; it places every rewritten chord at
// its position in the returned text.
func splice(text string, chords []model.Chord, rewrite func(model.Chord) string) (string, []model.Chord) {
	var b strings.Builder
	b.Grow(len(text))

	moved := make([]model.Chord, 0, len(chords))
	offset, last := 0, 0
	for _, c := range chords {
		replacement := rewrite(c)
		b.WriteString(text[last:c.Start])
		b.WriteString(replacement)
		last = c.End

		start := c.Start + offset
		moved = append(moved, model.Chord{Symbol: replacement, Start: start, End: start + len(replacement)})
		offset += len(replacement) - c.Len()
	}
	b.WriteString(text[last:])
	return b.String(), moved
}

package chord

import (
	"strings"
	"unicode/utf8"

	"github.com/jsphweid/chordsheet/model"
)

type rule struct {
	pattern     string
	replacement string
}

// rules is walked in order and the first matching pattern wins. Several
// patterns contain later ones ("7(9-)" and "9", "m7(5-)" and "5"), so the
// order must not change.
var rules = []rule{
	{"7(9-)", "7"},
	{"m7(5-)", "m7"},
	{"maj9", "maj7"},
	{"Δ9", "maj7"},
	{"7M(9)", "7M"},
	{"maj7", ""},
	{"Δ7", ""},
	{"7M", ""},
	{"add9", ""},
	{"13", "7"},
	{"11", "7"},
	{"9", "7"},
	{"7b9", "7"},
	{"7#9", "7"},
	{"7b5", "7"},
	{"7#5", "7"},
	{"m7b5", "m7"},
	{"m7(5b)", "m7"},
	{"ø7", "m7"},
	{"dim7", "m7"},
	{"º7", "m7"},
	{"m9", "m7"},
	{"m11", "m7"},
	{"m13", "m7"},
	{"mMaj7", "m"},
	{"mΔ7", "m"},
	{"m7M", "m"},
	{"sus2", ""},
	{"sus4", ""},
	{"6", ""},
	{"m6", "m"},
	{"aug", ""},
	{"+", ""},
	{"dim", "m"},
	{"º", "m"},
	{"5", ""},
}

// Simplify reduces a chord with the first rule whose pattern it contains,
// e.g. "Abm7(5-)" becomes "Abm7". It returns the new symbol and how many
// bytes shorter it is. A chord no rule matches comes back unchanged.
func Simplify(symbol string) (string, int) {
	for _, r := range rules {
		if strings.Contains(symbol, r.pattern) {
			simple := strings.ReplaceAll(symbol, r.pattern, r.replacement)
			return simple, len(symbol) - len(simple)
		}
	}
	return symbol, 0
}

// SimplifyText simplifies every chord in text and pads each one with spaces
// up to its old width, so lyrics under the chords stay aligned.
func SimplifyText(text string) string {
	normalized := Normalize(text)
	res, _ := splice(normalized, find(normalized), func(c model.Chord) string {
		simple, _ := Simplify(c.Symbol)
		pad := utf8.RuneCountInString(c.Symbol) - utf8.RuneCountInString(simple)
		return simple + strings.Repeat(" ", max(pad, 0))
	})
	return res
}

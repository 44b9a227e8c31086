package chord

import (
	"strings"
	"unicode"

	"github.com/jsphweid/chordsheet/root"
	"golang.org/x/exp/slices"
)

var (
	// "º" and "°" are different characters, both are used for diminished
	secondSymbols = []rune{'m', '#', 'b', 'º', '°'}
	minorSymbols  = []rune{'#', 'b', 'º', '°'}
	markers       = []string{"add", "/", "º", "°", "sus"}
)

// IsValid reports whether token looks like a chord symbol. A lone root
// letter is accepted here; whether it is really a chord is decided by the
// rest of its line.
func IsValid(token string) bool {
	r := []rune(token)
	switch {
	case len(r) == 1:
		return root.IsAlias(token)
	case len(r) == 2:
		return slices.Contains(secondSymbols, r[1]) || unicode.IsDigit(r[1])
	case len(r) >= 3 && r[2] == 'm':
		return slices.Contains(minorSymbols, r[1]) || unicode.IsDigit(r[1])
	}

	if !root.IsAlias(firstUpper(r)) {
		return false
	}
	for _, marker := range markers {
		if strings.Contains(token, marker) {
			return true
		}
	}
	return strings.IndexFunc(token, unicode.IsDigit) >= 0
}

func firstUpper(r []rune) string {
	for _, c := range r {
		if unicode.IsUpper(c) {
			return string(c)
		}
	}
	return ""
}

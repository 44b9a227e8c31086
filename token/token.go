// Package token splits a line of a chord sheet into words with offsets.
package token

import (
	"regexp"
	"strings"
)

type Word struct {
	Text  string
	Start int
	End   int

	// CouldBeChord is set when the word starts with a root spelling.
	CouldBeChord bool
	// Chord is set once the word has been confirmed as a chord symbol.
	Chord bool
}

var wordRegexp = regexp.MustCompile(`\S+`)

// Split returns the whitespace separated words of line with byte offsets
// relative to the start of the line. A parenthesis that is not closed
// inside its own word becomes a word of its own, so "(C" yields "(" and
// "C" while "Gm7(5b)" stays whole.
func Split(line string) []Word {
	var words []Word
	for _, loc := range wordRegexp.FindAllStringIndex(line, -1) {
		start, end := loc[0], loc[1]
		text := line[start:end]
		switch {
		case text[0] == '(' && !strings.Contains(text, ")"):
			words = append(words,
				Word{Text: "(", Start: start, End: start + 1},
				Word{Text: text[1:], Start: start + 1, End: end},
			)
		case text[len(text)-1] == ')' && !strings.Contains(text, "("):
			words = append(words,
				Word{Text: text[:len(text)-1], Start: start, End: end - 1},
				Word{Text: ")", Start: end - 1, End: end},
			)
		default:
			words = append(words, Word{Text: text, Start: start, End: end})
		}
	}

	res := words[:0]
	for _, w := range words {
		if strings.TrimSpace(w.Text) != "" {
			res = append(res, w)
		}
	}
	return res
}

func (w Word) IsParen() bool {
	return w.Text == "(" || w.Text == ")"
}

// Shift moves the word by offset bytes, e.g. from line to document coordinates.
func (w Word) Shift(offset int) Word {
	w.Start += offset
	w.End += offset
	return w
}

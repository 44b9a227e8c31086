package chord

import "github.com/jsphweid/chordsheet/root"

// Inspect returns every line of text with its classified words, for
// debugging why a line was or was not taken as chords.
func Inspect(text string) []Line {
	return scan(Normalize(text))
}

type Stats struct {
	Lines      int
	ChordLines int
	Chords     int
	// Unresolved counts chords whose root could not be read.
	Unresolved int
	Roots      map[root.Root]int
}

func GetStats(text string) Stats {
	s := Stats{Roots: make(map[root.Root]int)}
	for _, line := range Inspect(text) {
		s.Lines += 1
		if !line.ChordLine {
			continue
		}
		s.ChordLines += 1
		for _, c := range line.Chords() {
			s.Chords += 1
			r, err := root.Resolve(c.Symbol)
			if err != nil {
				s.Unresolved += 1
				continue
			}
			s.Roots[r] += 1
		}
	}
	return s
}

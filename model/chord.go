package model

// Chord is a chord symbol found in a text. Start and End are byte offsets
// into the normalized text, End exclusive.
type Chord struct {
	Symbol string `json:"chord"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

func (c Chord) Len() int {
	return c.End - c.Start
}

package model

import "github.com/jsphweid/chordsheet/root"

type FindRequestBody struct {
	Text     string `json:"text"`
	Simplify bool   `json:"simplify"`
}

type FindResponse struct {
	Chords []Chord `json:"chords"`
}

type SimplifyRequestBody struct {
	Text string `json:"text"`
}

// TransposeRequestBody leaves To empty when no target key is given.
type TransposeRequestBody struct {
	Text string `json:"text"`
	From string `json:"from"`
	To   string `json:"to"`
}

type TextResponse struct {
	Text   string  `json:"text"`
	Chords []Chord `json:"chords,omitempty"`
}

type SheetRequestBody struct {
	Title string    `json:"title"`
	Key   root.Root `json:"key"`
	Text  string    `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

package model

import (
	"time"

	"github.com/jsphweid/chordsheet/root"
)

// Sheet is a stored chord sheet. Key is the root the sheet is written in.
type Sheet struct {
	Id      string    `json:"id"`
	Title   string    `json:"title"`
	Key     root.Root `json:"key"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
}

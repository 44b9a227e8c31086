package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	valid := []string{
		"C", "Db", "A#", "Cm", "C#", "Bb", "C7", "Fº", "F°", "em",
		"C#m", "Ebm7", "C7m", "C#7M", "Gm7(5b)", "G6(9)", "D/F#", "Gsus",
		"Cadd9", "Bm/A", "A/B", "G#4", "F#º", "Cø7", "D#m7-/G", "x7",
	}
	for _, token := range valid {
		assert.True(t, IsValid(token), token)
	}

	invalid := []string{
		"", "c", "H", "(", ")", "Car", "Só", "Ti", "de", "Em?", "Demorei", "Vim",
		"2a.vez,", "(test)", "imensidao/", "Buscai", "Hello", "Cristo,",
	}
	for _, token := range invalid {
		assert.False(t, IsValid(token), token)
	}
}

func TestIsValidCountsRunes(t *testing.T) {
	// "Fº" is two characters even though it is three bytes
	assert.True(t, IsValid("Fº"))
	assert.True(t, IsValid("Cºm"))
	assert.False(t, IsValid("Cám"))
}

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func texts(words []Word) []string {
	var res []string
	for _, w := range words {
		res = append(res, w.Text)
	}
	return res
}

func TestSplitKeepsOffsets(t *testing.T) {
	line := "  C#7M   Gm7(5b)  "
	words := Split(line)

	assert := assert.New(t)
	assert.Equal([]string{"C#7M", "Gm7(5b)"}, texts(words))
	for _, w := range words {
		assert.Equal(w.Text, line[w.Start:w.End])
	}
	assert.Equal(2, words[0].Start)
	assert.Equal(16, words[1].End)
}

func TestSplitUnpairedParenthesis(t *testing.T) {
	words := Split("(C F# G)")
	assert.Equal(t, []string{"(", "C", "F#", "G", ")"}, texts(words))
	assert.Equal(t, Word{Text: ")", Start: 7, End: 8}, words[4])
	assert.Equal(t, Word{Text: "G", Start: 6, End: 7}, words[3])
}

func TestSplitLoneParenthesisDropsBlank(t *testing.T) {
	assert.Equal(t, []string{"(", "F", "G", "C", ")"}, texts(Split("(  F   G   C  )")))
}

func TestSplitBalancedParenthesisStaysWhole(t *testing.T) {
	assert.Equal(t, []string{"G6(9)", "G6(9)", "(test)"}, texts(Split("G6(9) G6(9) (test)")))
	assert.Equal(t, []string{"(", "A/B", ")", "(", "C/D", ")"}, texts(Split("(  A/B  )  (  C/D  )")))
}

func TestSplitMultibyteOffsets(t *testing.T) {
	line := "Só em Ti F#º"
	words := Split(line)
	assert.Equal(t, []string{"Só", "em", "Ti", "F#º"}, texts(words))
	for _, w := range words {
		assert.Equal(t, w.Text, line[w.Start:w.End])
	}
}

func TestSplitEmpty(t *testing.T) {
	assert.Empty(t, Split(""))
	assert.Empty(t, Split(" \t\r"))
}

func TestShift(t *testing.T) {
	w := Word{Text: "Am", Start: 1, End: 3}.Shift(10)
	assert.Equal(t, 11, w.Start)
	assert.Equal(t, 13, w.End)
	assert.True(t, Word{Text: "("}.IsParen())
	assert.False(t, Word{Text: "(C)"}.IsParen())
}

package root

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllIsChromatic(t *testing.T) {
	var names []string
	for _, r := range All() {
		names = append(names, r.String())
	}
	assert.Equal(t, []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "Bb", "B"}, names)
}

func TestEveryAliasResolvesToExactlyOneRoot(t *testing.T) {
	seen := make(map[string]Root)
	for _, r := range All() {
		for _, alias := range r.Aliases() {
			prev, dup := seen[alias]
			assert.False(t, dup, "alias %v used by %v and %v", alias, prev, r)
			seen[alias] = r
			assert.Len(t, alias, len(r.String()))
			parsed, err := Parse(alias)
			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	}
	assert.Len(t, seen, 17)
}

func TestAddWrapsBothWays(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(B, C.Add(-1))
	assert.Equal(C, B.Add(1))
	assert.Equal(D, Bb.Add(4))
	assert.Equal(Bb, D.Add(-4))
	assert.Equal(G, G.Add(24))
	assert.Equal(F, Circular(G, -14))
}

func TestResolveIsGreedy(t *testing.T) {
	cases := map[string]Root{
		"C":      C,
		"Cm7":    C,
		"C#m7":   Db,
		"Db7":    Db,
		"Eb":     Eb,
		"Em":     E,
		"A#dim":  Bb,
		"Bb6":    Bb,
		"Bm/A":   B,
		"Gsus":   G,
		"F#º":    Gb,
		"G6(9)":  G,
		"Cº":     C,
		"Abm7b5": Ab,
	}
	for symbol, want := range cases {
		t.Run(symbol, func(t *testing.T) {
			got, err := Resolve(symbol)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, symbol := range []string{"", "Hello World", "x7", "em", "("} {
		_, err := Resolve(symbol)
		assert.True(t, errors.Is(err, ErrUnknownRoot), symbol)
	}
}

func TestHasAliasPrefix(t *testing.T) {
	assert := assert.New(t)
	assert.True(HasAliasPrefix("Car"))
	assert.True(HasAliasPrefix("Ebm"))
	assert.False(HasAliasPrefix("car"))
	assert.False(HasAliasPrefix("("))
}

func TestParseRejectsChords(t *testing.T) {
	_, err := Parse("Cm")
	assert.Error(t, err)
	r, err := Parse(" Gb ")
	require.NoError(t, err)
	assert.Equal(t, Gb, r)
}

func TestRootJSON(t *testing.T) {
	var body struct {
		From Root `json:"from"`
		To   Root `json:"to"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"from":"C","to":"Eb"}`), &body))
	assert.Equal(t, C, body.From)
	assert.Equal(t, Eb, body.To)

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"C","to":"D#"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"from":"H"}`), &body))
}

func TestRootFlag(t *testing.T) {
	var r Root
	require.NoError(t, r.Set("A#"))
	assert.Equal(t, Bb, r)
	assert.Equal(t, "root", r.Type())
	assert.Error(t, r.Set("Z"))
}

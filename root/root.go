// Package root models the twelve chromatic chord roots and their enharmonic
// spellings.
package root

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/chordsheet/util"
	"github.com/pkg/errors"
)

// Root is one of the twelve pitch classes, ordered from C.
type Root uint8

const (
	C Root = iota
	Db
	D
	Eb
	E
	F
	Gb
	G
	Ab
	A
	Bb
	B
)

// Count is the size of the chromatic circle.
const Count = 12

var ErrUnknownRoot = errors.New("unknown root")

type spelling struct {
	canonical string
	aliases   []string
}

// Every alias has the same length as its canonical spelling, so replacing
// a root prefix never needs to know which spelling matched.
var spellings = [Count]spelling{
	C:  {canonical: "C"},
	Db: {canonical: "C#", aliases: []string{"Db"}},
	D:  {canonical: "D"},
	Eb: {canonical: "D#", aliases: []string{"Eb"}},
	E:  {canonical: "E"},
	F:  {canonical: "F"},
	Gb: {canonical: "F#", aliases: []string{"Gb"}},
	G:  {canonical: "G"},
	Ab: {canonical: "G#", aliases: []string{"Ab"}},
	A:  {canonical: "A"},
	Bb: {canonical: "Bb", aliases: []string{"A#"}},
	B:  {canonical: "B"},
}

var (
	byAlias    = make(map[string]Root)
	allAliases []string
)

func init() {
	for _, r := range All() {
		for _, alias := range r.Aliases() {
			byAlias[alias] = r
			allAliases = append(allAliases, alias)
		}
	}
	sort.SliceStable(allAliases, func(i, j int) bool {
		return len(allAliases[i]) > len(allAliases[j])
	})
}

// All returns the roots in chromatic order starting at C.
func All() []Root {
	roots := make([]Root, Count)
	for i := range roots {
		roots[i] = Root(i)
	}
	return roots
}

func (r Root) String() string {
	if int(r) >= Count {
		return fmt.Sprintf("Root(%d)", uint8(r))
	}
	return spellings[r].canonical
}

// Aliases returns the canonical spelling followed by every enharmonic alias.
func (r Root) Aliases() []string {
	s := spellings[r]
	return append([]string{s.canonical}, s.aliases...)
}

func (r Root) Ordinal() int {
	return int(r)
}

// Add moves delta semitones around the circle; negative deltas wrap below C.
func (r Root) Add(delta int) Root {
	return Root(util.Mod(int(r)+delta, Count))
}

// Circular returns the root delta semitones away from r.
func Circular(r Root, delta int) Root {
	return r.Add(delta)
}

// IsAlias reports whether s is exactly one of the known spellings.
func IsAlias(s string) bool {
	_, ok := byAlias[s]
	return ok
}

// HasAliasPrefix reports whether s starts with any known spelling.
func HasAliasPrefix(s string) bool {
	for _, alias := range allAliases {
		if strings.HasPrefix(s, alias) {
			return true
		}
	}
	return false
}

// Resolve finds the root a chord symbol starts with. The first two
// characters are tried before the first one alone, so "Db7" is Db, not D.
func Resolve(symbol string) (Root, error) {
	if len(symbol) >= 2 {
		if r, ok := byAlias[symbol[:2]]; ok {
			return r, nil
		}
	}
	if len(symbol) >= 1 {
		if r, ok := byAlias[symbol[:1]]; ok {
			return r, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownRoot, "%q", symbol)
}

// Parse accepts exactly one spelling, e.g. a key given on the command line.
func Parse(name string) (Root, error) {
	name = strings.TrimSpace(name)
	if r, ok := byAlias[name]; ok {
		return r, nil
	}
	return 0, errors.Wrapf(ErrUnknownRoot, "%q", name)
}

func (r Root) MarshalText() ([]byte, error) {
	if int(r) >= Count {
		return nil, errors.Errorf("invalid root %d", r)
	}
	return []byte(r.String()), nil
}

func (r *Root) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Set and Type let a Root be used directly as a command line flag.
func (r *Root) Set(s string) error {
	return r.UnmarshalText([]byte(s))
}

func (r *Root) Type() string {
	return "root"
}

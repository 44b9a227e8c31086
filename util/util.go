package util

import (
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Mod is the mathematical modulo: the result always lies in [0, n).
func Mod[A constraints.Integer](a A, n A) A {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}

// ReadInput reads the whole file at path, or stdin when path is empty or "-".
func ReadInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "could not read stdin")
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not read %v", path)
	}
	return string(b), nil
}

// WriteOutput writes text to the file at path, or to w when path is empty or "-".
func WriteOutput(path string, w io.Writer, text string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(w, text)
		return errors.Wrap(err, "could not write output")
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "could not write %v", path)
	}
	return nil
}

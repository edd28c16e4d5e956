package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sequence is a normalized word surface. Combining marks are composed
// (NFC) so that "i̇" typed as i + U+0307 and precomposed letters compare equal.
type Sequence struct {
	text string
}

// NewSequence normalizes s. Surrounding whitespace is removed.
func NewSequence(s string) Sequence {
	return Sequence{text: norm.NFC.String(strings.TrimSpace(s))}
}

func (s Sequence) String() string { return s.text }

func (s Sequence) IsBlank() bool { return s.text == "" }

// Sequences normalizes every word.
func Sequences(words []string) []Sequence {
	out := make([]Sequence, len(words))
	for i, w := range words {
		out[i] = NewSequence(w)
	}
	return out
}

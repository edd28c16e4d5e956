package domain

import (
	"fmt"
	"strings"
)

// Lexeme is a dictionary entry.
type Lexeme struct {
	// Lemma is the citation form ("yapmak").
	Lemma string `json:"lemma" yaml:"lemma"`
	// LemmaRoot is the lemma without inflectional endings ("yap").
	LemmaRoot    string           `json:"lemma_root" yaml:"lemma_root"`
	PrimaryPos   PrimaryPos       `json:"pos" yaml:"pos"`
	SecondaryPos SecondaryPos     `json:"spos,omitempty" yaml:"spos,omitempty"`
	Attributes   LexemeAttributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

func (l *Lexeme) String() string {
	if l.SecondaryPos == SecNone {
		return fmt.Sprintf("%s+%s", l.LemmaRoot, l.PrimaryPos)
	}
	return fmt.Sprintf("%s+%s+%s", l.LemmaRoot, l.PrimaryPos, l.SecondaryPos)
}

// Root is a concrete surface realization of a lexeme, as produced by root
// finding. Roots are values and are never mutated after construction.
type Root struct {
	Sequence           string
	Lexeme             *Lexeme
	PhoneticAttributes PhoneticAttributes
	Expectations       PhoneticExpectations

	// Origin is the lexicon root this one was respelled from, if any.
	Origin *Root
}

// Canonical returns the lexicon root r stands for.
func (r *Root) Canonical() *Root {
	for r.Origin != nil {
		r = r.Origin
	}
	return r
}

// Key identifies a root by value. Two roots with the same key are interchangeable.
func (r *Root) Key() string {
	var b strings.Builder
	b.WriteString(r.Sequence)
	b.WriteByte('|')
	b.WriteString(r.Lexeme.Lemma)
	b.WriteByte('|')
	b.WriteString(r.Lexeme.LemmaRoot)
	b.WriteByte('|')
	b.WriteString(string(r.Lexeme.PrimaryPos))
	b.WriteByte('|')
	b.WriteString(string(r.Lexeme.SecondaryPos))
	fmt.Fprintf(&b, "|%d|%d|%d", r.Lexeme.Attributes, r.PhoneticAttributes, r.Expectations)
	return b.String()
}

func (r *Root) String() string {
	return fmt.Sprintf("%s(%s)", r.Sequence, r.Lexeme)
}

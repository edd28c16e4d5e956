package rootfinder

import (
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/lexicon"
)

// RootLookup returns the roots with exactly the given sequence.
type RootLookup interface {
	Roots(sequence string) []*domain.Root
}

// Dictionary finds roots in a lexicon index.
type Dictionary struct {
	roots RootLookup
}

func NewDictionary(roots RootLookup) *Dictionary {
	return &Dictionary{roots: roots}
}

func (d *Dictionary) Handles(partial, _ string) bool {
	return partial != ""
}

// FindRoots returns the roots of partial. A capitalised partial also gets
// the roots of its lower-cased spelling ("Kitap" finds "kitap"); those keep
// the input's spelling as their sequence so the remaining surface lines up,
// and point back to the lexicon root through Origin.
func (d *Dictionary) FindRoots(partial, _ string) []*domain.Root {
	roots := d.roots.Roots(partial)
	first, size := utf8.DecodeRuneInString(partial)
	if !unicode.IsUpper(first) {
		return roots
	}

	lowered := lexicon.ToLower(string(first)) + partial[size:]
	out := append([]*domain.Root(nil), roots...)
	for _, r := range d.roots.Roots(lowered) {
		c := *r
		c.Sequence = partial
		c.Origin = r
		out = append(out, &c)
	}
	return out
}

// StateMapper gives the start state of a root in a suffix graph.
type StateMapper interface {
	DefaultStateForRoot(root *domain.Root) (*domain.State, error)
}

// Seedable narrows roots to the ones graph has a start state for, so a
// small graph can run on a lexicon with categories it does not model.
func Seedable(roots RootLookup, graph StateMapper) RootLookup {
	return seedable{roots: roots, graph: graph}
}

type seedable struct {
	roots RootLookup
	graph StateMapper
}

func (s seedable) Roots(sequence string) []*domain.Root {
	all := s.roots.Roots(sequence)
	out := all[:0:0]
	for _, r := range all {
		if _, err := s.graph.DefaultStateForRoot(r); err == nil {
			out = append(out, r)
		}
	}
	return out
}

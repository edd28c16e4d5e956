package rootfinder

import (
	"regexp"

	"github.com/aretw0/trnltk/pkg/domain"
)

var punctuationPattern = regexp.MustCompile(`^(\p{Pc}|\p{Pd}|\p{Pe}|\p{Pf}|\p{Pi}|\p{Po}|\p{Ps}|\p{Sm}|\p{So})+$`)

// Punctuation reads a word made only of punctuation marks and symbols
// ("...", "?!", "%") as a single punctuation root.
type Punctuation struct{}

func NewPunctuation() *Punctuation { return &Punctuation{} }

func (f *Punctuation) Handles(partial, whole string) bool {
	return partial != "" && partial == whole && punctuationPattern.MatchString(partial)
}

func (f *Punctuation) FindRoots(partial, _ string) []*domain.Root {
	return []*domain.Root{{
		Sequence: partial,
		Lexeme:   &domain.Lexeme{Lemma: partial, LemmaRoot: partial, PrimaryPos: domain.PosPunctuation},
	}}
}

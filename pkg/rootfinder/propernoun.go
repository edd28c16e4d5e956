package rootfinder

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/phonetics"
)

const apostrophe = "'"

// ProperNounFromApostrophe turns a capitalised word followed by an
// apostrophe into a proper noun root: "Bursa'ya" yields the root "Bursa".
// All-caps candidates are abbreviations ("THY'ye").
type ProperNounFromApostrophe struct {
	known RootLookup
}

// NewProperNounFromApostrophe returns the finder. Candidates that known
// already holds as proper nouns or abbreviations are left to the
// dictionary; known may be nil.
func NewProperNounFromApostrophe(known RootLookup) *ProperNounFromApostrophe {
	return &ProperNounFromApostrophe{known: known}
}

func (f *ProperNounFromApostrophe) Handles(partial, _ string) bool {
	if utf8.RuneCountInString(partial) < 2 || !strings.HasSuffix(partial, apostrophe) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(partial)
	return unicode.IsUpper(first)
}

func (f *ProperNounFromApostrophe) FindRoots(partial, _ string) []*domain.Root {
	candidate := strings.TrimSuffix(partial, apostrophe)
	if f.isKnown(candidate) {
		return nil
	}
	return []*domain.Root{properNounRoot(candidate)}
}

func (f *ProperNounFromApostrophe) isKnown(candidate string) bool {
	if f.known == nil {
		return false
	}
	for _, r := range f.known.Roots(candidate) {
		if r.Lexeme.PrimaryPos == domain.PosNoun &&
			(r.Lexeme.SecondaryPos == domain.SecProperNoun || r.Lexeme.SecondaryPos == domain.SecAbbreviation) {
			return true
		}
	}
	return false
}

// ProperNounWithoutApostrophe guesses proper noun roots for every prefix of
// a capitalised word written without an apostrophe ("Bursada"). The whole
// word in capitals is an abbreviation.
type ProperNounWithoutApostrophe struct{}

func NewProperNounWithoutApostrophe() *ProperNounWithoutApostrophe {
	return &ProperNounWithoutApostrophe{}
}

func (f *ProperNounWithoutApostrophe) Handles(partial, whole string) bool {
	if partial == "" || whole == "" || strings.Contains(whole, apostrophe) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(whole)
	return unicode.IsUpper(first)
}

func (f *ProperNounWithoutApostrophe) FindRoots(partial, whole string) []*domain.Root {
	if partial == whole && isAllUpper(partial) {
		return []*domain.Root{properNounRoot(partial)}
	}
	return []*domain.Root{{
		Sequence:           partial,
		Lexeme:             properLexeme(partial, domain.SecProperNoun),
		PhoneticAttributes: phonetics.Attributes(partial, 0),
	}}
}

// properNounRoot builds a proper noun or, for all-caps input, an
// abbreviation root. Abbreviations ending in a consonant are read with a
// trailing "e" (THY -> "te-ha-ye").
func properNounRoot(candidate string) *domain.Root {
	if !isAllUpper(candidate) {
		return &domain.Root{
			Sequence:           candidate,
			Lexeme:             properLexeme(candidate, domain.SecProperNoun),
			PhoneticAttributes: phonetics.Attributes(candidate, 0),
		}
	}
	spoken := candidate
	if last, _ := utf8.DecodeLastRuneInString(candidate); !phonetics.IsVowel(last) {
		spoken += "E"
	}
	return &domain.Root{
		Sequence:           candidate,
		Lexeme:             properLexeme(candidate, domain.SecAbbreviation),
		PhoneticAttributes: phonetics.Attributes(spoken, 0),
	}
}

func properLexeme(s string, spos domain.SecondaryPos) *domain.Lexeme {
	return &domain.Lexeme{Lemma: s, LemmaRoot: s, PrimaryPos: domain.PosNoun, SecondaryPos: spos}
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

package rootfinder

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/phonetics"
)

// BruteForceNoun reads every prefix of a word as a noun root, so unknown
// nouns still get analyses. Besides the plain prefix it guesses the
// spellings a suffix may have caused: a voiced final stop ("kitab-ı" from
// "kitap"), a doubled consonant ("hakk-ı" from "hak") and inverse vowel
// harmony ("saat-i").
type BruteForceNoun struct{}

func NewBruteForceNoun() *BruteForceNoun { return &BruteForceNoun{} }

func (f *BruteForceNoun) Handles(partial, whole string) bool {
	if partial == "" || whole == "" || !strings.HasPrefix(whole, partial) {
		return false
	}
	return utf8.RuneCountInString(partial) >= 2 || utf8.RuneCountInString(whole) < 2
}

func (f *BruteForceNoun) FindRoots(partial, whole string) []*domain.Root {
	plain := bruteNoun(partial, partial, 0)
	if partial == whole || utf8.RuneCountInString(partial) < 2 {
		return []*domain.Root{finish(plain)}
	}

	lastVowel, ok := lastVowelOf(partial)
	if !ok {
		return []*domain.Root{finish(plain)}
	}
	last, lastSize := utf8.DecodeLastRuneInString(partial)
	next, _ := utf8.DecodeRuneInString(whole[len(partial):])
	if unicode.IsUpper(last) || unicode.IsUpper(next) {
		return []*domain.Root{finish(plain)}
	}

	roots := spellings(partial, plain, last, next)

	if after, ok := firstVowelOf(whole[len(partial)-lastSize:]); ok && lastVowel.Frontal != after.Frontal {
		for _, r := range roots {
			r.Lexeme.Attributes = r.Lexeme.Attributes.With(domain.InverseHarmony)
		}
	}
	for _, r := range roots {
		finish(r)
	}
	return roots
}

// spellings returns the plain root and the roots whose final letter a
// vowel-initial suffix may have doubled or voiced.
func spellings(partial string, plain *domain.Root, last, next rune) []*domain.Root {
	nextVowel := phonetics.IsVowel(next)
	noVoicing := phonetics.IsVoicable(last) && nextVowel
	mayBeVoiced := len(phonetics.Unvoiced(last)) > 0 && nextVowel

	rs := []rune(partial)
	doubled := len(rs) > 2 && !phonetics.IsVowel(last) && rs[len(rs)-1] == rs[len(rs)-2] && nextVowel

	roots := []*domain.Root{plain}
	if noVoicing {
		plain.Lexeme.Attributes = plain.Lexeme.Attributes.With(domain.NoVoicing)
	}
	var unvoiced []*domain.Root
	if mayBeVoiced && !noVoicing {
		for _, u := range phonetics.Unvoiced(last) {
			lemma := string(rs[:len(rs)-1]) + string(u)
			unvoiced = append(unvoiced, bruteNoun(partial, lemma, plain.Lexeme.Attributes))
		}
	}

	if !doubled {
		return append(roots, unvoiced...)
	}
	single := string(rs[:len(rs)-1])
	attrs := plain.Lexeme.Attributes.With(domain.Doubling)
	roots = append(roots, bruteNoun(partial, single, attrs))
	for _, u := range unvoiced {
		lr := []rune(u.Lexeme.LemmaRoot)
		roots = append(roots, bruteNoun(partial, string(lr[:len(lr)-2])+string(lr[len(lr)-1]), attrs))
	}
	return roots
}

func bruteNoun(seq, lemma string, attrs domain.LexemeAttributes) *domain.Root {
	return &domain.Root{
		Sequence: seq,
		Lexeme:   &domain.Lexeme{Lemma: lemma, LemmaRoot: lemma, PrimaryPos: domain.PosNoun, Attributes: attrs},
	}
}

func finish(r *domain.Root) *domain.Root {
	r.PhoneticAttributes = phonetics.Attributes(r.Sequence, r.Lexeme.Attributes)
	return r
}

func lastVowelOf(s string) (phonetics.Letter, bool) {
	rs := []rune(s)
	for i := len(rs) - 1; i >= 0; i-- {
		if l, ok := phonetics.LetterOf(rs[i]); ok && l.Vowel {
			return l, true
		}
	}
	return phonetics.Letter{}, false
}

func firstVowelOf(s string) (phonetics.Letter, bool) {
	for _, r := range s {
		if l, ok := phonetics.LetterOf(r); ok && l.Vowel {
			return l, true
		}
	}
	return phonetics.Letter{}, false
}

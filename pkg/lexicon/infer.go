package lexicon

import (
	"strings"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/phonetics"
)

// InferAttributes completes the dictionary attributes of a lexeme with the
// ones that follow from its shape: aorist vowel, passive and causative forms
// of verbs, and final consonant voicing of nominals and numerals.
func InferAttributes(lemmaRoot string, pos domain.PrimaryPos, attrs domain.LexemeAttributes) domain.LexemeAttributes {
	rs := []rune(lemmaRoot)
	if len(rs) == 0 {
		return attrs
	}
	last, ok := phonetics.LetterOf(rs[len(rs)-1])
	if !ok {
		last = phonetics.Letter{Char: rs[len(rs)-1], Continuant: true}
	}
	vowels := vowelCount(rs)

	switch pos {
	case domain.PosVerb:
		return inferVerb(last, vowels, attrs)
	case domain.PosNoun, domain.PosAdjective, domain.PosNumeral:
		return inferNominal(lemmaRoot, last, vowels, attrs)
	}
	return attrs
}

func inferVerb(last phonetics.Letter, vowels int, attrs domain.LexemeAttributes) domain.LexemeAttributes {
	if last.Vowel {
		attrs = attrs.With(domain.ProgressiveVowelDrop, domain.PassiveIn)
	}

	switch {
	case vowels > 1 && !attrs.Has(domain.AoristA):
		attrs = attrs.With(domain.AoristI)
	case vowels == 1 && !attrs.Has(domain.AoristI):
		attrs = attrs.With(domain.AoristA)
	}

	if last.Char == 'l' {
		attrs = attrs.With(domain.PassiveIn)
	}

	if !hasCausative(attrs) {
		switch {
		case last.Vowel || ((last.Char == 'l' || last.Char == 'r') && vowels > 1):
			attrs = attrs.With(domain.CausativeT)
		case last.Char == 't' && vowels < 2:
			attrs = attrs.With(domain.CausativeIr)
		default:
			attrs = attrs.With(domain.CausativeDIr)
		}
	}

	if attrs.Has(domain.ProgressiveVowelDrop) {
		attrs = attrs.With(domain.NoVoicing)
	}
	if !attrs.Has(domain.Voicing) && !attrs.Has(domain.NoVoicing) {
		attrs = attrs.With(domain.NoVoicing)
	}
	return attrs
}

func inferNominal(lemmaRoot string, last phonetics.Letter, vowels int, attrs domain.LexemeAttributes) domain.LexemeAttributes {
	if attrs.Has(domain.VoicingOpt) {
		return attrs.Without(domain.Voicing, domain.NoVoicing)
	}
	if attrs.Has(domain.CompoundP3sg) {
		if !attrs.Has(domain.Voicing) {
			attrs = attrs.With(domain.NoVoicing)
		}
		return attrs
	}

	stop := !last.Vowel && !last.Continuant
	switch {
	case vowels > 1 && stop && !attrs.Has(domain.NoVoicing) && !attrs.Has(domain.InverseHarmony):
		attrs = attrs.With(domain.Voicing)
	case strings.HasSuffix(lemmaRoot, "nk") || strings.HasSuffix(lemmaRoot, "og") || strings.HasSuffix(lemmaRoot, "rt"):
		attrs = attrs.With(domain.Voicing)
	case !attrs.Has(domain.Voicing):
		attrs = attrs.With(domain.NoVoicing)
	}
	return attrs
}

func hasCausative(attrs domain.LexemeAttributes) bool {
	return attrs.Has(domain.CausativeT) || attrs.Has(domain.CausativeIr) ||
		attrs.Has(domain.CausativeIt) || attrs.Has(domain.CausativeAr) ||
		attrs.Has(domain.CausativeDIr)
}

func vowelCount(rs []rune) int {
	n := 0
	for _, r := range rs {
		if phonetics.IsVowel(r) {
			n++
		}
	}
	return n
}

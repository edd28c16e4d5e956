package phonetics

import "github.com/aretw0/trnltk/pkg/domain"

// Attributes computes the phonetic attributes of surface, adjusted by the
// lexeme attributes that override plain pronunciation (inverse harmony,
// a silent final ayn).
func Attributes(surface string, lexAttrs domain.LexemeAttributes) domain.PhoneticAttributes {
	attrs := plainAttributes(surface)
	if attrs == 0 || lexAttrs.IsEmpty() {
		return attrs
	}
	if lexAttrs.Has(domain.InverseHarmony) {
		switch {
		case attrs.Has(domain.LastVowelBack):
			attrs = attrs.Without(domain.LastVowelBack).With(domain.LastVowelFrontal)
		case attrs.Has(domain.LastVowelFrontal):
			attrs = attrs.Without(domain.LastVowelFrontal).With(domain.LastVowelBack)
		}
	}
	if lexAttrs.Has(domain.EndsWithAyn) && attrs.Has(domain.LastLetterVowel) {
		attrs = attrs.Without(domain.LastLetterVowel).With(domain.LastLetterConsonant)
	}
	return attrs
}

func plainAttributes(surface string) domain.PhoneticAttributes {
	rs := []rune(surface)
	if len(rs) == 0 {
		return 0
	}
	var attrs domain.PhoneticAttributes

	first, _ := LetterOf(rs[0])
	if first.Vowel {
		attrs = attrs.With(domain.FirstLetterVowel)
	} else {
		attrs = attrs.With(domain.FirstLetterConsonant)
	}

	var lastVowel *Letter
	for i := len(rs) - 1; i >= 0; i-- {
		if l, ok := LetterOf(rs[i]); ok && l.Vowel {
			lastVowel = &l
			break
		}
	}
	if lastVowel != nil {
		if lastVowel.Rounded {
			attrs = attrs.With(domain.LastVowelRounded)
		} else {
			attrs = attrs.With(domain.LastVowelUnrounded)
		}
		if lastVowel.Frontal {
			attrs = attrs.With(domain.LastVowelFrontal)
		} else {
			attrs = attrs.With(domain.LastVowelBack)
		}
	} else {
		attrs = attrs.With(domain.HasNoVowel)
	}

	last, _ := LetterOf(rs[len(rs)-1])
	if last.Vowel {
		attrs = attrs.With(domain.LastLetterVowel)
	} else {
		attrs = attrs.With(domain.LastLetterConsonant)
	}
	if last.Voiceless {
		attrs = attrs.With(domain.LastLetterVoiceless)
		if last.IsVoicelessStop() {
			attrs = attrs.With(domain.LastLetterVoicelessStop)
		}
	} else {
		attrs = attrs.With(domain.LastLetterNotVoiceless)
	}
	return attrs
}

// Advance returns the attributes of a surface after text is appended to it,
// without needing the surface itself.
func Advance(attrs domain.PhoneticAttributes, text string) domain.PhoneticAttributes {
	for _, r := range text {
		attrs = advance(attrs, r)
	}
	return attrs
}

func advance(attrs domain.PhoneticAttributes, r rune) domain.PhoneticAttributes {
	l, _ := LetterOf(r)
	if l.Vowel {
		attrs = attrs.Without(domain.LastLetterConsonant, domain.LastLetterVoiceless, domain.LastLetterVoicelessStop,
			domain.HasNoVowel, domain.LastVowelFrontal, domain.LastVowelBack, domain.LastVowelRounded, domain.LastVowelUnrounded)
		attrs = attrs.With(domain.LastLetterVowel, domain.LastLetterNotVoiceless)
		if l.Frontal {
			attrs = attrs.With(domain.LastVowelFrontal)
		} else {
			attrs = attrs.With(domain.LastVowelBack)
		}
		if l.Rounded {
			attrs = attrs.With(domain.LastVowelRounded)
		} else {
			attrs = attrs.With(domain.LastVowelUnrounded)
		}
		return attrs
	}

	attrs = attrs.Without(domain.LastLetterVowel, domain.LastLetterVoiceless, domain.LastLetterNotVoiceless, domain.LastLetterVoicelessStop)
	attrs = attrs.With(domain.LastLetterConsonant)
	if l.Voiceless {
		attrs = attrs.With(domain.LastLetterVoiceless)
		if !l.Continuant {
			attrs = attrs.With(domain.LastLetterVoicelessStop)
		}
	} else {
		attrs = attrs.With(domain.LastLetterNotVoiceless)
	}
	return attrs
}

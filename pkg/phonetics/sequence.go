package phonetics

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/trnltk/pkg/domain"
)

type ruleType uint8

const (
	insertNonVowel ruleType = iota
	insertVowel
	insertA
	insertI
	insertINoRounding
	insertOptionalVowel
	insertOptionalConsonant
	insertOptionalA
	insertOptionalI
	insertDevoicable
)

func (t ruleType) optional() bool {
	switch t {
	case insertOptionalVowel, insertOptionalConsonant, insertOptionalA, insertOptionalI:
		return true
	}
	return false
}

type rule struct {
	typ  ruleType
	char rune
}

// FormSequence is a compiled suffix form template.
//
// Template syntax:
//
//	A    a/e by vowel harmony
//	I    ı/i/u/ü by vowel harmony
//	+x   x is dropped when it would follow a letter of the same class
//	!I   ı/i without rounding
//	!k   the stop is never voiced
//	'    a literal apostrophe
//
// A leading d, c, g or b (after optional letters only) devoices after a
// voiceless letter: "dA" gives "ta" after "kitap".
type FormSequence struct {
	form             string
	rules            []rule
	firstLetterVowel bool
}

// Compile parses a template.
func Compile(form string) (*FormSequence, error) {
	if i := strings.LastIndex(form, "+"); i > 0 {
		return nil, fmt.Errorf("invalid suffix form %q: '+' is only allowed as the first char", form)
	}
	rs := []rune(form)
	seq := &FormSequence{form: form}
	for i, r := range rs {
		if r == '!' || r == '+' {
			continue
		}
		if r == '\'' {
			seq.rules = append(seq.rules, rule{typ: insertNonVowel, char: r})
			continue
		}
		afterPlus := i > 0 && rs[i-1] == '+'
		afterBang := i > 0 && rs[i-1] == '!'
		letter, known := LetterOf(r)
		if !known {
			return nil, fmt.Errorf("invalid suffix form %q: unknown letter %q", form, r)
		}

		if seq.allOptional() && isDevoicable(r) {
			seq.rules = append(seq.rules, rule{typ: insertDevoicable, char: r})
			continue
		}
		if unicode.IsUpper(r) && r != 'A' && r != 'I' {
			return nil, fmt.Errorf("invalid suffix form %q: only A and I may be upper case", form)
		}
		if afterBang && r != 'I' && (letter.Vowel || letter.Continuant) {
			return nil, fmt.Errorf("invalid suffix form %q: '!' must precede I or a stop", form)
		}

		switch {
		case r == 'A' && afterPlus:
			seq.rules = append(seq.rules, rule{typ: insertOptionalA})
		case r == 'A':
			seq.rules = append(seq.rules, rule{typ: insertA})
		case r == 'I' && afterBang:
			seq.rules = append(seq.rules, rule{typ: insertINoRounding})
		case r == 'I' && afterPlus:
			seq.rules = append(seq.rules, rule{typ: insertOptionalI})
		case r == 'I':
			seq.rules = append(seq.rules, rule{typ: insertI})
		case afterPlus && letter.Vowel:
			seq.rules = append(seq.rules, rule{typ: insertOptionalVowel, char: r})
		case afterPlus:
			seq.rules = append(seq.rules, rule{typ: insertOptionalConsonant, char: r})
		case letter.Vowel:
			seq.rules = append(seq.rules, rule{typ: insertVowel, char: r})
		default:
			seq.rules = append(seq.rules, rule{typ: insertNonVowel, char: r})
		}
	}
	seq.firstLetterVowel = findFirstLetterVowel(rs)
	return seq, nil
}

// MustCompile is like Compile but panics on an invalid template.
func MustCompile(form string) *FormSequence {
	seq, err := Compile(form)
	if err != nil {
		panic(err)
	}
	return seq
}

func (s *FormSequence) allOptional() bool {
	for _, r := range s.rules {
		if !r.typ.optional() {
			return false
		}
	}
	return true
}

func findFirstLetterVowel(rs []rune) bool {
	if strings.TrimSpace(string(rs)) == "" {
		return false
	}
	if IsVowel(rs[0]) {
		return true
	}
	if rs[0] == '+' {
		if len(rs) >= 3 {
			return IsVowel(rs[1]) || IsVowel(rs[2])
		}
		if len(rs) >= 2 {
			return IsVowel(rs[1])
		}
	}
	return false
}

func (s *FormSequence) Form() string { return s.form }

func (s *FormSequence) IsBlank() bool { return strings.TrimSpace(s.form) == "" }

// FirstLetterVowel reports whether the realized form may start with a vowel.
func (s *FormSequence) FirstLetterVowel() bool { return s.firstLetterVowel }

// IsApplicable reports whether the form can follow a surface with attrs.
// The only impossible combination is a vowel-initial form after a vowel.
func (s *FormSequence) IsApplicable(attrs domain.PhoneticAttributes) bool {
	if len(s.rules) == 0 || !attrs.Has(domain.LastLetterVowel) {
		return true
	}
	switch s.rules[0].typ {
	case insertVowel, insertA, insertI, insertINoRounding:
		return false
	}
	return true
}

// Apply realizes the template after a surface with attrs.
func (s *FormSequence) Apply(attrs domain.PhoneticAttributes) string {
	var b strings.Builder
	for _, r := range s.rules {
		if c, ok := r.apply(attrs); ok {
			b.WriteRune(c)
		}
	}
	return strings.TrimSpace(b.String())
}

func (r rule) apply(attrs domain.PhoneticAttributes) (rune, bool) {
	back := attrs.Has(domain.LastVowelBack) || !attrs.Has(domain.LastVowelFrontal)
	unrounded := attrs.Has(domain.LastVowelUnrounded) || !attrs.Has(domain.LastVowelRounded)
	lastVowel := attrs.Has(domain.LastLetterVowel) || !attrs.Has(domain.LastLetterConsonant)
	lastConsonant := attrs.Has(domain.LastLetterConsonant) || !attrs.Has(domain.LastLetterVowel)

	switch r.typ {
	case insertNonVowel, insertVowel:
		return r.char, true
	case insertA:
		return harmonyA(back), true
	case insertI:
		return harmonyI(back, unrounded), true
	case insertINoRounding:
		return harmonyI(back, true), true
	case insertOptionalVowel:
		return r.char, !lastVowel
	case insertOptionalConsonant:
		return r.char, !lastConsonant
	case insertOptionalA:
		return harmonyA(back), !lastVowel
	case insertOptionalI:
		return harmonyI(back, unrounded), !lastVowel
	case insertDevoicable:
		if attrs.Has(domain.LastLetterVoiceless) {
			if d, ok := Devoice(r.char); ok {
				return d, true
			}
		}
		return r.char, true
	}
	return 0, false
}

func harmonyA(back bool) rune {
	if back {
		return 'a'
	}
	return 'e'
}

func harmonyI(back, unrounded bool) rune {
	switch {
	case back && unrounded:
		return 'ı'
	case back:
		return 'u'
	case unrounded:
		return 'i'
	default:
		return 'ü'
	}
}

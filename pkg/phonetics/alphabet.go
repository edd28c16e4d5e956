package phonetics

import "unicode"

// Letter describes the phonetic class of a Turkish letter.
type Letter struct {
	Char       rune
	Vowel      bool
	Frontal    bool
	Rounded    bool
	Voiceless  bool
	Continuant bool
}

// IsVoicelessStop reports whether the letter is one of ç, k, p, t.
func (l Letter) IsVoicelessStop() bool {
	return !l.Vowel && l.Voiceless && !l.Continuant
}

var alphabet = map[rune]Letter{}

func vowel(r rune, frontal, rounded bool) {
	alphabet[r] = Letter{Char: r, Vowel: true, Frontal: frontal, Rounded: rounded, Continuant: true}
}

func consonant(r rune, voiceless, continuant bool) {
	alphabet[r] = Letter{Char: r, Voiceless: voiceless, Continuant: continuant}
}

func init() {
	vowel('a', false, false)
	vowel('e', true, false)
	vowel('ı', false, false)
	vowel('i', true, false)
	vowel('o', false, true)
	vowel('ö', true, true)
	vowel('u', false, true)
	vowel('ü', true, true)
	vowel('â', false, false)
	vowel('î', true, false)
	vowel('û', false, true)

	for _, r := range "bcdg" {
		consonant(r, false, false)
	}
	for _, r := range "çkpt" {
		consonant(r, true, false)
	}
	for _, r := range "fhsş" {
		consonant(r, true, true)
	}
	for _, r := range "ğjlmnrvyz" {
		consonant(r, false, true)
	}
	for _, r := range "qwx" {
		consonant(r, false, true)
	}
}

var voicing = map[rune]rune{'p': 'b', 'ç': 'c', 't': 'd', 'g': 'ğ', 'k': 'ğ'}

var devoicing = map[rune]rune{'b': 'p', 'c': 'ç', 'd': 't', 'g': 'k'}

var inverseVoicing = map[rune][]rune{'b': {'p'}, 'c': {'ç'}, 'd': {'t'}, 'g': {'k'}, 'ğ': {'g', 'k'}}

// ToLower lowers a rune with Turkish dotted/dotless I rules.
func ToLower(r rune) rune {
	switch r {
	case 'I':
		return 'ı'
	case 'İ':
		return 'i'
	}
	return unicode.ToLower(r)
}

// LetterOf returns the letter for r. Upper-case runes resolve to their
// lower-case letter, so the template meta letters A and I read as vowels.
func LetterOf(r rune) (Letter, bool) {
	l, ok := alphabet[ToLower(r)]
	return l, ok
}

// IsVowel reports whether r is a Turkish vowel.
func IsVowel(r rune) bool {
	l, ok := LetterOf(r)
	return ok && l.Vowel
}

// Voice returns the voiced counterpart of r (k -> ğ, t -> d ...).
func Voice(r rune) (rune, bool) {
	v, ok := voicing[r]
	return v, ok
}

// Devoice returns the voiceless counterpart of r (d -> t, c -> ç ...).
func Devoice(r rune) (rune, bool) {
	v, ok := devoicing[r]
	return v, ok
}

// Unvoiced returns the letters that voice into r: 'ğ' may come from 'g'
// or 'k'.
func Unvoiced(r rune) []rune {
	return inverseVoicing[r]
}

// IsVoicable reports whether r has a voiced counterpart.
func IsVoicable(r rune) bool {
	_, ok := voicing[r]
	return ok
}

func isDevoicable(r rune) bool {
	_, ok := devoicing[r]
	return ok
}

// VoiceLast voices the last letter of surface when it has a voiced counterpart.
func VoiceLast(surface string) string {
	rs := []rune(surface)
	if len(rs) == 0 {
		return surface
	}
	if v, ok := Voice(rs[len(rs)-1]); ok {
		rs[len(rs)-1] = v
		return string(rs)
	}
	return surface
}

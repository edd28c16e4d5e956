package rootfinder

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/numeral"
	"github.com/aretw0/trnltk/pkg/phonetics"
)

const (
	apostropheChar = '\''
	ordinalChar    = '.'
	rangeChar      = "-"
)

var (
	cardinalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[-+]?\d+(,\d)?\d*$`),
		regexp.MustCompile(`^[-+]?(\d{1,3}\.)+\d{3}(,\d)?\d*$`),
	}
	ordinalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[-+]?\d+\.$`),
		regexp.MustCompile(`^[-+]?(\d{1,3}\.)+\d{3}\.$`),
	}
	rangePattern = regexp.MustCompile(`^((\d{1,3}\.)+\d{3}|\d+)(-((\d{1,3}\.)+\d{3}|\d+))*-((\d{1,3}\.)+\d{3}|\d+)$`)

	ordinalSuffix = phonetics.MustCompile("+IncI")
)

// CardinalDigits reads numbers written with digits ("3", "-1.000,5"). Its
// suffixes must follow an apostrophe ("3'e").
type CardinalDigits struct{}

func NewCardinalDigits() *CardinalDigits { return &CardinalDigits{} }

func (f *CardinalDigits) Handles(partial, whole string) bool {
	if partial == "" {
		return false
	}
	if next, ok := nextRune(partial, whole); ok {
		if unicode.IsDigit(next) || next == '.' || next == ',' {
			return false
		}
		if i := strings.LastIndexByte(whole, apostropheChar); i > 0 && i != len(partial) {
			return false
		}
	}
	return matchesAny(cardinalPatterns, partial)
}

func (f *CardinalDigits) FindRoots(partial, _ string) []*domain.Root {
	text, err := numeral.ToText(partial)
	if err != nil {
		return nil
	}
	return []*domain.Root{digitsRoot(partial, text, domain.SecDigitsCardinal)}
}

// OrdinalDigits reads ordinals written with digits and a full stop ("3.",
// "1.000."), read "üçüncü" and "bininci".
type OrdinalDigits struct{}

func NewOrdinalDigits() *OrdinalDigits { return &OrdinalDigits{} }

func (f *OrdinalDigits) Handles(partial, whole string) bool {
	if !strings.HasSuffix(partial, string(ordinalChar)) {
		return false
	}
	if next, ok := nextRune(partial, whole); ok && next != apostropheChar {
		return false
	}
	return matchesAny(ordinalPatterns, partial)
}

func (f *OrdinalDigits) FindRoots(partial, _ string) []*domain.Root {
	digits := strings.TrimSuffix(partial, string(ordinalChar))
	cardinal, err := numeral.ToText(digits)
	if err != nil {
		return nil
	}
	// only "dört" voices: dördüncü
	var lexAttrs domain.LexemeAttributes
	if !strings.HasSuffix(digits, "4") {
		lexAttrs = domain.NewLexemeAttributes(domain.NoVoicing)
	}
	attrs := phonetics.Attributes(cardinal, lexAttrs)
	surface := cardinal
	if !lexAttrs.Has(domain.NoVoicing) && attrs.Has(domain.LastLetterVoicelessStop) {
		surface = phonetics.VoiceLast(cardinal)
	}
	text := surface + ordinalSuffix.Apply(attrs)
	return []*domain.Root{digitsRoot(partial, text, domain.SecDigitsOrdinal)}
}

// RangeDigits reads ranges of numbers ("3-5", "1.000-2.000"). A range may be
// followed by an apostrophe or by a full stop.
type RangeDigits struct{}

func NewRangeDigits() *RangeDigits { return &RangeDigits{} }

func (f *RangeDigits) Handles(partial, whole string) bool {
	if partial == "" {
		return false
	}
	if next, ok := nextRune(partial, whole); ok && next != apostropheChar && next != ordinalChar {
		return false
	}
	return rangePattern.MatchString(partial)
}

func (f *RangeDigits) FindRoots(partial, _ string) []*domain.Root {
	var words []string
	for _, part := range strings.Split(partial, rangeChar) {
		text, err := numeral.ToText(part)
		if err != nil {
			return nil
		}
		words = append(words, text)
	}
	return []*domain.Root{digitsRoot(partial, strings.Join(words, " "), domain.SecRange)}
}

// digitsRoot keeps the digits as the lemma and takes the phonetic
// attributes from the way they are read.
func digitsRoot(partial, text string, spos domain.SecondaryPos) *domain.Root {
	attrs := domain.NewLexemeAttributes(domain.NoVoicing)
	return &domain.Root{
		Sequence: partial,
		Lexeme: &domain.Lexeme{
			Lemma:        partial,
			LemmaRoot:    partial,
			PrimaryPos:   domain.PosNumeral,
			SecondaryPos: spos,
			Attributes:   attrs,
		},
		PhoneticAttributes: phonetics.Attributes(text, attrs),
	}
}

// nextRune returns the rune of whole right after partial, if any.
func nextRune(partial, whole string) (rune, bool) {
	if len(partial) >= len(whole) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(whole[len(partial):])
	return r, true
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

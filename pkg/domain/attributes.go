package domain

import "strings"

// LexemeAttribute is a dictionary flag that changes how a lexeme behaves
// under suffixation (voicing, vowel drop, aorist vowel...).
type LexemeAttribute uint8

const (
	AoristI LexemeAttribute = iota
	AoristA
	ProgressiveVowelDrop
	PassiveIl
	PassiveIn
	PassiveInIl
	CausativeT
	CausativeIr
	CausativeIt
	CausativeAr
	CausativeDIr
	NoVoicing
	Voicing
	VoicingOpt
	InverseHarmony
	Doubling
	EndsWithAyn
	CompoundP3sg
	LastVowelDrop
	RootChange
	Special
	NoSuffix
	Plural
	lexemeAttributeCount
)

var lexemeAttributeNames = [lexemeAttributeCount]string{
	"Aorist_I", "Aorist_A", "ProgressiveVowelDrop", "Passive_Il", "Passive_In", "Passive_InIl",
	"Causative_t", "Causative_Ir", "Causative_It", "Causative_Ar", "Causative_dIr",
	"NoVoicing", "Voicing", "VoicingOpt", "InverseHarmony", "Doubling", "EndsWithAyn",
	"CompoundP3sg", "LastVowelDrop", "RootChange", "Special", "NoSuffix", "Plural",
}

func (a LexemeAttribute) String() string {
	if a >= lexemeAttributeCount {
		return "LexemeAttribute(?)"
	}
	return lexemeAttributeNames[a]
}

// ParseLexemeAttribute resolves the dictionary spelling of an attribute.
func ParseLexemeAttribute(s string) (LexemeAttribute, bool) {
	for i, name := range lexemeAttributeNames {
		if strings.EqualFold(name, s) {
			return LexemeAttribute(i), true
		}
	}
	return 0, false
}

// LexemeAttributes is a set of LexemeAttribute packed into a bit field.
type LexemeAttributes uint32

// NewLexemeAttributes builds a set from the given attributes.
func NewLexemeAttributes(attrs ...LexemeAttribute) LexemeAttributes {
	var s LexemeAttributes
	for _, a := range attrs {
		s |= 1 << a
	}
	return s
}

func (s LexemeAttributes) Has(a LexemeAttribute) bool { return s&(1<<a) != 0 }

// HasAll reports whether every attribute of o is in s.
func (s LexemeAttributes) HasAll(o LexemeAttributes) bool { return s&o == o }

func (s LexemeAttributes) With(attrs ...LexemeAttribute) LexemeAttributes {
	return s | NewLexemeAttributes(attrs...)
}

func (s LexemeAttributes) Without(attrs ...LexemeAttribute) LexemeAttributes {
	return s &^ NewLexemeAttributes(attrs...)
}

func (s LexemeAttributes) IsEmpty() bool { return s == 0 }

// List returns the attributes in declaration order.
func (s LexemeAttributes) List() []LexemeAttribute {
	var out []LexemeAttribute
	for a := LexemeAttribute(0); a < lexemeAttributeCount; a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s LexemeAttributes) String() string {
	names := make([]string, 0, 4)
	for _, a := range s.List() {
		names = append(names, a.String())
	}
	return "[" + strings.Join(names, ",") + "]"
}

// PhoneticAttribute classifies the sound environment at the edges of a surface.
type PhoneticAttribute uint8

const (
	LastLetterVowel PhoneticAttribute = iota
	LastLetterConsonant
	LastVowelFrontal
	LastVowelBack
	LastVowelRounded
	LastVowelUnrounded
	LastLetterVoiceless
	LastLetterNotVoiceless
	LastLetterVoicelessStop
	FirstLetterVowel
	FirstLetterConsonant
	HasNoVowel
	phoneticAttributeCount
)

// PhoneticAttributeCount is the number of distinct phonetic attributes.
const PhoneticAttributeCount = int(phoneticAttributeCount)

var phoneticAttributeNames = [phoneticAttributeCount]string{
	"LLV", "LLC", "LVF", "LVB", "LVR", "LVU", "LLVless", "LLNotVless", "LLVlessStop", "FLV", "FLC", "NoVow",
}

func (a PhoneticAttribute) String() string {
	if a >= phoneticAttributeCount {
		return "PhoneticAttribute(?)"
	}
	return phoneticAttributeNames[a]
}

// PhoneticAttributes is a set of PhoneticAttribute packed into a bit field.
// The packed value doubles as the lookup key of the valid-set table.
type PhoneticAttributes uint16

func NewPhoneticAttributes(attrs ...PhoneticAttribute) PhoneticAttributes {
	var s PhoneticAttributes
	for _, a := range attrs {
		s |= 1 << a
	}
	return s
}

func (s PhoneticAttributes) Has(a PhoneticAttribute) bool { return s&(1<<a) != 0 }

func (s PhoneticAttributes) With(attrs ...PhoneticAttribute) PhoneticAttributes {
	return s | NewPhoneticAttributes(attrs...)
}

func (s PhoneticAttributes) Without(attrs ...PhoneticAttribute) PhoneticAttributes {
	return s &^ NewPhoneticAttributes(attrs...)
}

func (s PhoneticAttributes) IsEmpty() bool { return s == 0 }

func (s PhoneticAttributes) List() []PhoneticAttribute {
	var out []PhoneticAttribute
	for a := PhoneticAttribute(0); a < phoneticAttributeCount; a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s PhoneticAttributes) String() string {
	names := make([]string, 0, 6)
	for _, a := range s.List() {
		names = append(names, a.String())
	}
	return "[" + strings.Join(names, ",") + "]"
}

// PhoneticExpectation constrains the first letter of the next non-blank suffix form.
type PhoneticExpectation uint8

const (
	VowelStart PhoneticExpectation = iota
	ConsonantStart
)

func (e PhoneticExpectation) String() string {
	if e == VowelStart {
		return "VowelStart"
	}
	return "ConsonantStart"
}

// PhoneticExpectations is a set of PhoneticExpectation.
type PhoneticExpectations uint8

func NewPhoneticExpectations(es ...PhoneticExpectation) PhoneticExpectations {
	var s PhoneticExpectations
	for _, e := range es {
		s |= 1 << e
	}
	return s
}

func (s PhoneticExpectations) Has(e PhoneticExpectation) bool { return s&(1<<e) != 0 }

func (s PhoneticExpectations) With(es ...PhoneticExpectation) PhoneticExpectations {
	return s | NewPhoneticExpectations(es...)
}

func (s PhoneticExpectations) IsEmpty() bool { return s == 0 }

func (s PhoneticExpectations) List() []PhoneticExpectation {
	var out []PhoneticExpectation
	for _, e := range []PhoneticExpectation{VowelStart, ConsonantStart} {
		if s.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

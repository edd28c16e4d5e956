package domain

import "strings"

// PrimaryPos is the main syntactic category of a lexeme or a graph state.
// The value is the short form used in formatted analyses.
type PrimaryPos string

const (
	PosNoun         PrimaryPos = "Noun"
	PosVerb         PrimaryPos = "Verb"
	PosAdjective    PrimaryPos = "Adj"
	PosAdverb       PrimaryPos = "Adv"
	PosPronoun      PrimaryPos = "Pron"
	PosDeterminer   PrimaryPos = "Det"
	PosInterjection PrimaryPos = "Interj"
	PosConjunction  PrimaryPos = "Conj"
	PosNumeral      PrimaryPos = "Num"
	PosPunctuation  PrimaryPos = "Punc"
	PosDuplicator   PrimaryPos = "Dup"
	PosPostPositive PrimaryPos = "Postp"
	PosQuestion     PrimaryPos = "Ques"
)

var primaryPosLongForms = map[string]PrimaryPos{
	"noun":         PosNoun,
	"verb":         PosVerb,
	"adjective":    PosAdjective,
	"adverb":       PosAdverb,
	"pronoun":      PosPronoun,
	"determiner":   PosDeterminer,
	"interjection": PosInterjection,
	"conjunction":  PosConjunction,
	"numeral":      PosNumeral,
	"punctuation":  PosPunctuation,
	"duplicator":   PosDuplicator,
	"postpositive": PosPostPositive,
	"question":     PosQuestion,
}

// ParsePrimaryPos accepts either the short form ("Adj") or the long name ("Adjective").
func ParsePrimaryPos(s string) (PrimaryPos, bool) {
	for _, p := range primaryPosLongForms {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	p, ok := primaryPosLongForms[strings.ToLower(s)]
	return p, ok
}

// SecondaryPos refines a PrimaryPos. The zero value means none.
type SecondaryPos string

const (
	SecNone          SecondaryPos = ""
	SecDemonstrative SecondaryPos = "Demons"
	SecTime          SecondaryPos = "Time"
	SecQuantitive    SecondaryPos = "Quant"
	SecQuestion      SecondaryPos = "Ques"
	SecProperNoun    SecondaryPos = "Prop"
	SecPersonal      SecondaryPos = "Pers"
	SecReflexive     SecondaryPos = "Reflex"
	SecAbbreviation  SecondaryPos = "Abbr"
	SecOrdinal       SecondaryPos = "Ord"
	SecCardinal      SecondaryPos = "Card"
	SecPercentage    SecondaryPos = "Percent"
	SecRatio         SecondaryPos = "Ratio"
	SecRange         SecondaryPos = "Range"
	SecReal          SecondaryPos = "Real"
	SecDistribution  SecondaryPos = "Dist"
	SecClock         SecondaryPos = "Clock"
	SecDate          SecondaryPos = "Date"
	SecUnknown       SecondaryPos = "Unk"

	// Numbers written with digits.
	SecDigitsCardinal SecondaryPos = "DigitsC"
	SecDigitsOrdinal  SecondaryPos = "DigitsO"
)

var secondaryPosLongForms = map[string]SecondaryPos{
	"demonstrative":  SecDemonstrative,
	"time":           SecTime,
	"quantitive":     SecQuantitive,
	"question":       SecQuestion,
	"propernoun":     SecProperNoun,
	"personal":       SecPersonal,
	"reflexive":      SecReflexive,
	"abbreviation":   SecAbbreviation,
	"ordinal":        SecOrdinal,
	"cardinal":       SecCardinal,
	"percentage":     SecPercentage,
	"ratio":          SecRatio,
	"range":          SecRange,
	"real":           SecReal,
	"distribution":   SecDistribution,
	"clock":          SecClock,
	"date":           SecDate,
	"unknown":        SecUnknown,
	"digitscardinal": SecDigitsCardinal,
	"digitsordinal":  SecDigitsOrdinal,
}

// ParseSecondaryPos accepts either the short form ("Prop") or the long name ("ProperNoun").
func ParseSecondaryPos(s string) (SecondaryPos, bool) {
	if s == "" || strings.EqualFold(s, "none") {
		return SecNone, true
	}
	for _, p := range secondaryPosLongForms {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	p, ok := secondaryPosLongForms[strings.ToLower(s)]
	return p, ok
}

// PrimaryPosValues returns every primary category.
func PrimaryPosValues() []PrimaryPos {
	return []PrimaryPos{
		PosNoun, PosVerb, PosAdjective, PosAdverb, PosPronoun, PosDeterminer, PosInterjection,
		PosConjunction, PosNumeral, PosPunctuation, PosDuplicator, PosPostPositive, PosQuestion,
	}
}

// SecondaryPosValues returns every secondary category, SecNone first.
func SecondaryPosValues() []SecondaryPos {
	return []SecondaryPos{
		SecNone, SecDemonstrative, SecTime, SecQuantitive, SecQuestion, SecProperNoun,
		SecPersonal, SecReflexive, SecAbbreviation, SecOrdinal, SecCardinal, SecPercentage,
		SecRatio, SecRange, SecReal, SecDistribution, SecClock, SecDate, SecUnknown,
		SecDigitsCardinal, SecDigitsOrdinal,
	}
}

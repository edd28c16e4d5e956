package graph

import (
	d "github.com/aretw0/trnltk/pkg/domain"
)

// Numeral extends Basic with cardinal and ordinal numbers, spelled out
// ("üç", "üçüncü") or written with digits ("3", "3.", "3-5"). A number
// either stands as an adjective or derives one ("üçlü", "üçlerce"). Digits
// take their suffixes after an apostrophe ("3'e"). It must be applied after
// Basic.
func Numeral(b *Builder) error {
	adjRoot := b.ExistingState("ADJECTIVE_ROOT")

	cardRoot := b.State("NUMERAL_CARDINAL_ROOT", d.Transfer, d.PosNumeral, d.SecNone)
	cardDeriv := b.State("NUMERAL_CARDINAL_DERIV", d.Derivational, d.PosNumeral, d.SecNone)
	digitCardRoot := b.State("NUMERAL_DIGIT_CARDINAL_ROOT", d.Transfer, d.PosNumeral, d.SecNone)
	ordRoot := b.State("NUMERAL_ORDINAL_ROOT", d.Transfer, d.PosNumeral, d.SecNone)
	ordDeriv := b.State("NUMERAL_ORDINAL_DERIV", d.Derivational, d.PosNumeral, d.SecNone)
	digitOrdRoot := b.State("NUMERAL_DIGIT_ORDINAL_ROOT", d.Transfer, d.PosNumeral, d.SecNone)

	b.Connect(cardRoot, b.FreeTransition("Numeral_Free_Transition_1"), cardDeriv)
	b.Connect(ordRoot, b.FreeTransition("Numeral_Free_Transition_2"), ordDeriv)
	b.Connect(digitCardRoot, b.FreeTransition("Digits_Free_Transition_1"), cardDeriv)
	b.Connect(digitOrdRoot, b.FreeTransition("Digits_Free_Transition_2"), ordDeriv)

	b.Connect(cardDeriv, b.ZeroTransition("Numeral_Zero_Transition_1", "Zero"), adjRoot)
	b.Connect(ordDeriv, b.ZeroTransition("Numeral_Zero_Transition_2", "Zero"), adjRoot)

	numbersOf := b.Suffix("NumbersOf", "", "NumbersOf", false)
	numbersOf.AddForm("lArcA", nil, nil, nil)
	b.Connect(cardDeriv, numbersOf, adjRoot)
	ofUnit := b.Suffix("OfUnit_Number", "", "OfUnit", false)
	ofUnit.AddForm("lIk", nil, nil, nil)
	b.Connect(cardDeriv, ofUnit, adjRoot)

	apos := b.Suffix("Apos_Digit", "", "Apos", false)
	apos.AddForm("'", nil, nil, nil)
	b.Connect(digitCardRoot, apos, cardDeriv)
	b.Connect(digitOrdRoot, apos, ordDeriv)

	b.RootStates(func(r *d.Root) *d.State {
		if r.Lexeme.PrimaryPos != d.PosNumeral {
			return nil
		}
		switch r.Lexeme.SecondaryPos {
		case d.SecCardinal:
			return cardRoot
		case d.SecOrdinal:
			return ordRoot
		case d.SecDigitsCardinal, d.SecRange:
			return digitCardRoot
		case d.SecDigitsOrdinal:
			return digitOrdRoot
		}
		return nil
	})
	return b.Err()
}

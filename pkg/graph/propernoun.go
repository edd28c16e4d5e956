package graph

import (
	d "github.com/aretw0/trnltk/pkg/domain"
)

// ProperNoun extends Basic with proper nouns and abbreviations. A proper
// noun either stands alone ("Ankara") or takes noun suffixes after an
// apostrophe ("Ankara'ya"). It must be applied after Basic.
func ProperNoun(b *Builder) error {
	nounRoot := b.ExistingState("NOUN_ROOT")

	root := b.State("PROPER_NOUN_ROOT", d.Transfer, d.PosNoun, d.SecProperNoun)
	withAgreement := b.State("PROPER_NOUN_WITH_AGREEMENT", d.Transfer, d.PosNoun, d.SecProperNoun)
	withPossession := b.State("PROPER_NOUN_WITH_POSSESSION", d.Transfer, d.PosNoun, d.SecProperNoun)
	withCase := b.State("PROPER_NOUN_WITH_CASE", d.Transfer, d.PosNoun, d.SecProperNoun)
	terminal := b.State("PROPER_NOUN_TERMINAL", d.Terminal, d.PosNoun, d.SecProperNoun)

	a3sg := b.Suffix("A3Sg_Proper_Noun", "", "A3sg", false)
	a3sg.AddForm("", nil, nil, nil)
	pnon := b.Suffix("Pnon_Proper_Noun", "", "Pnon", false)
	pnon.AddForm("", nil, nil, nil)
	nom := b.Suffix("Nom_Proper_Noun", "", "Nom", false)
	nom.AddForm("", nil, nil, nil)
	apos := b.Suffix("Apos_Proper_Noun", "", "Apos", false)
	apos.AddForm("'", nil, nil, nil)

	b.Connect(root, a3sg, withAgreement)
	b.Connect(withAgreement, pnon, withPossession)
	b.Connect(withPossession, nom, withCase)
	b.Connect(withCase, b.FreeTransition("Proper_Noun_Free_Transition_1"), terminal)
	b.Connect(root, apos, nounRoot)

	b.RootStates(func(r *d.Root) *d.State {
		if r.Lexeme.PrimaryPos != d.PosNoun {
			return nil
		}
		switch r.Lexeme.SecondaryPos {
		case d.SecProperNoun, d.SecAbbreviation:
			return root
		}
		return nil
	})
	return b.Err()
}

package graph

import (
	d "github.com/aretw0/trnltk/pkg/domain"
)

const (
	copulaAgreements d.SuffixGroup = "Copula_Agreements_Group"

	degil = "değil"
)

// Copula extends Basic with the copular verb: nominals used as predicates
// ("evdeyim", "öğretmendi"), the explicit copula "-dIr" and the negative
// "değil". It must be applied after Basic.
func Copula(b *Builder) error {
	c := &copula{b: b}
	c.states()
	c.freeTransitions()
	c.tenses()
	c.swappedPlural()
	c.agreements()
	c.adverbs()
	c.explicit()
	b.DeclareRootState(c.degilRoot)
	b.RootStates(func(r *d.Root) *d.State {
		if r.Lexeme.PrimaryPos == d.PosVerb && r.Canonical().Sequence == degil {
			return c.degilRoot
		}
		return nil
	})
	return b.Err()
}

type copula struct {
	b *Builder

	nounCop, adjCop, advCop, pronCop *d.State
	degilRoot                        *d.State
	withoutTense, withoutTenseDeriv  *d.State
	withTense, withTenseDeriv        *d.State
	swappedA3pl, othersSwappedA3pl   *d.State

	presCop, narrCop, pastCop, condCop, condCopSecondary *d.Suffix
	a1sg, a2sg, a3sg, a1pl, a2pl, a3pl                   *d.Suffix
}

func (c *copula) states() {
	b := c.b
	c.nounCop = b.State("NOUN_COPULA", d.Derivational, d.PosNoun, d.SecNone)
	c.adjCop = b.State("ADJECTIVE_COPULA", d.Derivational, d.PosAdjective, d.SecNone)
	c.advCop = b.State("ADVERB_COPULA", d.Derivational, d.PosAdverb, d.SecNone)
	c.pronCop = b.State("PRONOUN_COPULA", d.Derivational, d.PosPronoun, d.SecNone)
	c.degilRoot = b.State("VERB_DEGIL_ROOT", d.Transfer, d.PosVerb, d.SecNone)
	c.withoutTense = b.State("VERB_COPULA_WITHOUT_TENSE", d.Transfer, d.PosVerb, d.SecNone)
	c.withoutTenseDeriv = b.State("VERB_COPULA_WITHOUT_TENSE_DERIV", d.Derivational, d.PosVerb, d.SecNone)
	c.withTense = b.State("VERB_COPULA_WITH_TENSE", d.Transfer, d.PosVerb, d.SecNone)
	c.withTenseDeriv = b.State("VERB_COPULA_WITH_TENSE_DERIV", d.Derivational, d.PosVerb, d.SecNone)
	c.swappedA3pl = b.State("VERB_COPULA_WITH_SWAPPED_A3PL", d.Transfer, d.PosVerb, d.SecNone)
	c.othersSwappedA3pl = b.State("VERB_COPULA_FROM_OTHERS_WITH_SWAPPED_A3PL", d.Derivational, d.PosVerb, d.SecNone)

	c.presCop = b.Suffix("Pres_Cop", "", "Pres", false)
	c.narrCop = b.Suffix("Narr_Cop", "", "Narr", false)
	c.pastCop = b.Suffix("Past_Cop", "", "Past", false)
	c.condCop = b.Suffix("Cond_Cop", "", "Cond", false)
	c.condCopSecondary = b.Suffix("Cond_Cop_Secondary", "", "Cond", false)

	c.a1sg = b.Suffix("A1Sg_Cop", copulaAgreements, "A1sg", false)
	c.a2sg = b.Suffix("A2Sg_Cop", copulaAgreements, "A2sg", false)
	c.a3sg = b.Suffix("A3Sg_Cop", copulaAgreements, "A3sg", false)
	c.a1pl = b.Suffix("A1Pl_Cop", copulaAgreements, "A1pl", false)
	c.a2pl = b.Suffix("A2Pl_Cop", copulaAgreements, "A2pl", false)
	c.a3pl = b.Suffix("A3Pl_Cop", copulaAgreements, "A3pl", false)
}

func (c *copula) freeTransitions() {
	b := c.b
	b.Connect(b.ExistingState("NOUN_TERMINAL_TRANSFER"), b.FreeTransition("Noun_Cop_Free_Transition"), c.nounCop)
	b.Connect(b.ExistingState("ADJECTIVE_TERMINAL_TRANSFER"), b.FreeTransition("Adjective_Cop_Free_Transition"), c.adjCop)
	b.Connect(b.ExistingState("ADVERB_TERMINAL_TRANSFER"), b.FreeTransition("Adverb_Cop_Free_Transition"), c.advCop)
	b.Connect(b.ExistingState("PRONOUN_TERMINAL_TRANSFER"), b.FreeTransition("Pronoun_Cop_Free_Transition"), c.pronCop)
	b.Connect(c.degilRoot, b.FreeTransition("Verb_Degil_Free_Transition"), c.withoutTense)
	b.Connect(c.withoutTense, b.FreeTransition("Copula_Deriv_Free_Transition_1"), c.withoutTenseDeriv)
	b.Connect(c.withTense, b.FreeTransition("Copula_Deriv_Free_Transition_2"), c.withTenseDeriv)

	b.Connect(c.nounCop, b.ZeroTransition("Noun_Copula_Zero_Transition", "Zero"), c.withoutTense)
	b.Connect(c.adjCop, b.ZeroTransition("Adjective_Copula_Zero_Transition", "Zero"), c.withoutTense)
	b.Connect(c.advCop, b.ZeroTransition("Adverb_Copula_Zero_Transition", "Zero"), c.withoutTense)
	b.Connect(c.pronCop, b.ZeroTransition("Pronoun_Copula_Zero_Transition", "Zero"), c.withoutTense)
	b.Connect(b.ExistingState("ADJECTIVE_DERIV"), b.ZeroTransition("Adjective_Adverb_Zero_Transition", "Zero"), b.ExistingState("ADVERB_ROOT"))
}

func (c *copula) tenses() {
	b := c.b
	for _, s := range []*d.Suffix{c.presCop, c.narrCop, c.pastCop, c.condCop} {
		b.Connect(c.withoutTense, s, c.withTense)
	}
	c.presCop.AddForm("", nil, nil, nil)
	c.narrCop.AddForm("+ymIş", nil, nil, nil)
	c.pastCop.AddForm("+ydI", nil, nil, nil)
	c.condCop.AddForm("+ysA", nil, nil, nil)

	// elma-ydı-ysa
	b.Connect(c.withTense, c.condCopSecondary, c.withTense)
	c.condCopSecondary.AddForm("+ysA", d.DoesntComeAfter(c.presCop), nil, nil)
}

// swappedPlural reads "gelirdir" and "evlerdir" style plurals where the
// copula precedes the agreement.
func (c *copula) swappedPlural() {
	b := c.b
	verbTerminal := b.ExistingState("VERB_TERMINAL")

	afterTense := d.Or(
		d.ComesAfter(b.ExistingSuffix("Aor")),
		d.ComesAfter(b.ExistingSuffix("Prog")),
		d.ComesAfter(b.ExistingSuffix("Fut")),
		d.ComesAfter(b.ExistingSuffix("Narr")),
	)
	verbSwapped := b.Suffix("Cop_Verb_Swapped", "", "Cop", false)
	verbSwapped.AddForm("dIr", afterTense, nil, nil)
	b.Connect(b.ExistingState("VERB_WITH_TENSE"), verbSwapped, c.swappedA3pl)
	b.Connect(c.swappedA3pl, c.a3pl, verbTerminal)

	othersSwapped := b.Suffix("Cop_Others_Swapped", "", "Cop", false)
	othersSwapped.AddForm("dIr", nil, nil, nil)
	b.Connect(c.withoutTense, othersSwapped, c.othersSwappedA3pl)
	b.Connect(c.othersSwappedA3pl, c.a3pl, verbTerminal)
}

func (c *copula) agreements() {
	verbTerminalTransfer := c.b.ExistingState("VERB_TERMINAL_TRANSFER")
	for _, s := range []*d.Suffix{c.a1sg, c.a2sg, c.a3sg, c.a1pl, c.a2pl, c.a3pl} {
		c.b.Connect(c.withTense, s, verbTerminalTransfer)
	}

	afterCondOrPast := d.Or(d.ComesAfter(c.condCop), d.ComesAfter(c.condCopSecondary), d.ComesAfter(c.pastCop))
	c.a1sg.AddForm("+yIm", nil, nil, nil)
	c.a1sg.AddForm("m", afterCondOrPast, nil, nil)
	c.a2sg.AddForm("sIn", nil, nil, nil)
	c.a2sg.AddForm("n", afterCondOrPast, nil, nil)
	c.a3sg.AddForm("", nil, nil, nil)
	c.a1pl.AddForm("+yIz", nil, nil, nil)
	c.a1pl.AddForm("!k", afterCondOrPast, nil, nil)
	c.a2pl.AddForm("sInIz", nil, nil, nil)
	c.a2pl.AddForm("nIz", afterCondOrPast, nil, nil)
	c.a3pl.AddForm("lAr", nil, nil, nil)
}

func (c *copula) adverbs() {
	b := c.b
	advRoot := b.ExistingState("ADVERB_ROOT")

	while := b.Suffix("While_Cop", "", "While", false)
	while.AddForm("+yken", nil, nil, nil)
	b.Connect(c.withoutTenseDeriv, while, advRoot)

	asIf := b.Suffix("AsIf_Cop", "", "AsIf", false)
	asIf.AddForm("cAs!InA", d.Or(d.ComesAfter(c.presCop), d.ComesAfter(c.narrCop)), nil, nil)
	b.Connect(c.withTenseDeriv, asIf, advRoot)
}

// explicit wires the stand-alone "-dIr" of verbs ("gelmiştir") and of the
// question particle ("midir").
func (c *copula) explicit() {
	b := c.b
	var notAfter []d.Condition
	for _, name := range []string{"Aor", "Past", "Cond", "Imp", "Narr_Ques", "Past_Ques"} {
		notAfter = append(notAfter, d.DoesntComeAfter(b.ExistingSuffix(name)))
	}
	for _, s := range []*d.Suffix{c.condCop, c.condCopSecondary, c.pastCop, c.narrCop} {
		notAfter = append(notAfter, d.DoesntComeAfter(s))
	}
	verbTerminalTransfer := b.ExistingState("VERB_TERMINAL_TRANSFER")
	copVerb := b.Suffix("Cop_Verb", "", "Cop", false)
	copVerb.AddForm("dIr", d.And(notAfter...), nil, nil)
	b.Connect(verbTerminalTransfer, copVerb, verbTerminalTransfer)

	quesWithAgreement := b.ExistingState("QUESTION_WITH_AGREEMENT")
	copQues := b.Suffix("Cop_Ques", "", "Cop", false)
	copQues.AddForm("dIr", d.ComesAfter(b.ExistingSuffix("Pres_Ques")), nil, nil)
	b.Connect(quesWithAgreement, copQues, quesWithAgreement)
}

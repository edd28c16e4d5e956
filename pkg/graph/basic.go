package graph

import (
	d "github.com/aretw0/trnltk/pkg/domain"
)

const (
	nounAgreements    d.SuffixGroup = "Noun_Agreements_Group"
	nounPossessions   d.SuffixGroup = "Noun_Possessions_Group"
	nounCases         d.SuffixGroup = "Noun_Cases_Group"
	verbPolarity      d.SuffixGroup = "Verb_Polarity_Group"
	verbAgreements    d.SuffixGroup = "Verb_Agreements_Group"
	pronounAgreements d.SuffixGroup = "Pronoun_Agreements_Group"
	pronounPossession d.SuffixGroup = "Pronoun_Possessions_Group"
	pronounCases      d.SuffixGroup = "Pronoun_Case_Group"
	questionTenses    d.SuffixGroup = "Question_Tense_Group"
	questionAgreement d.SuffixGroup = "Question_Agreements_Group"
)

// Basic defines nouns, verbs, adjectives, pronouns, adverbs, question
// particles and the closed word classes.
func Basic(b *Builder) error {
	g := &basic{b: b}
	g.states()
	g.suffixes()
	g.freeTransitions()
	g.nouns()
	g.verbs()
	g.adjectives()
	g.pronouns()
	g.adverbs()
	g.questions()
	b.RootStates(g.rootState)
	return b.Err()
}

type basic struct {
	b *Builder

	nounRoot, nounWithAgreement, nounWithPossession, nounWithCase *d.State
	nounTerminalTransfer, nounTerminal                            *d.State
	nounNomDeriv, nounDerivWithCase                               *d.State

	verbRoot, verbWithPolarity, verbWithTense, verbTerminalTransfer, verbTerminal *d.State
	verbPlainDeriv, verbPolarityDeriv                                             *d.State

	adjRoot, adjTerminalTransfer, adjTerminal, adjDeriv *d.State

	advRoot, advTerminalTransfer, advTerminal, advDeriv *d.State

	pronRoot, pronWithAgreement, pronWithPossession, pronWithCase *d.State
	pronTerminalTransfer, pronTerminal                            *d.State
	pronNomDeriv, pronDerivWithCase                               *d.State

	quesRoot, quesWithTense, quesWithAgreement, quesTerminal *d.State

	detTerminal, interjTerminal, conjTerminal, postpTerminal, dupTerminal, puncTerminal *d.State

	// noun
	a3sgNoun, a3plNoun                                                          *d.Suffix
	pnonNoun, p1sgNoun, p2sgNoun, p3sgNoun, p1plNoun, p2plNoun, p3plNoun        *d.Suffix
	nomNoun, nomDerivNoun, accNoun, datNoun, locNoun, ablNoun, genNoun, insNoun *d.Suffix
	dim, ness, agtNoun, acquire, becomeNoun                                     *d.Suffix
	with, without, justLikeNoun, equNoun, pointQualNoun                         *d.Suffix

	// verb
	neg, pos                                                   *d.Suffix
	aor, prog, fut, narr, past, cond, imp                      *d.Suffix
	a1sgVerb, a2sgVerb, a3sgVerb, a1plVerb, a2plVerb, a3plVerb *d.Suffix
	caus, able, inf, presPart                                  *d.Suffix

	// adjective
	adjToNounZero, nessAdj, becomeAdj, justLikeAdj, ly *d.Suffix

	// adverb
	pointQualAdv *d.Suffix

	// pronoun
	a1sgPron, a2sgPron, a3sgPron, a1plPron, a2plPron, a3plPron                               *d.Suffix
	pnonPron, p1sgPron, p2sgPron, p3sgPron, p1plPron, p2plPron, p3plPron                     *d.Suffix
	nomPron, nomPronDeriv, accPron, datPron, locPron, ablPron, genPron, insPron, accordingTo *d.Suffix
	withoutPron, pointQualPron                                                               *d.Suffix

	// question
	presQues, pastQues, narrQues                               *d.Suffix
	a1sgQues, a2sgQues, a3sgQues, a1plQues, a2plQues, a3plQues *d.Suffix
}

func (g *basic) states() {
	b := g.b
	g.nounRoot = b.State("NOUN_ROOT", d.Transfer, d.PosNoun, d.SecNone)
	g.nounWithAgreement = b.State("NOUN_WITH_AGREEMENT", d.Transfer, d.PosNoun, d.SecNone)
	g.nounWithPossession = b.State("NOUN_WITH_POSSESSION", d.Transfer, d.PosNoun, d.SecNone)
	g.nounWithCase = b.State("NOUN_WITH_CASE", d.Transfer, d.PosNoun, d.SecNone)
	g.nounTerminalTransfer = b.State("NOUN_TERMINAL_TRANSFER", d.Transfer, d.PosNoun, d.SecNone)
	g.nounTerminal = b.State("NOUN_TERMINAL", d.Terminal, d.PosNoun, d.SecNone)
	g.nounNomDeriv = b.State("NOUN_NOM_DERIV", d.Derivational, d.PosNoun, d.SecNone)
	g.nounDerivWithCase = b.State("NOUN_DERIV_WITH_CASE", d.Derivational, d.PosNoun, d.SecNone)

	g.verbRoot = b.State("VERB_ROOT", d.Transfer, d.PosVerb, d.SecNone)
	g.verbWithPolarity = b.State("VERB_WITH_POLARITY", d.Transfer, d.PosVerb, d.SecNone)
	g.verbWithTense = b.State("VERB_WITH_TENSE", d.Transfer, d.PosVerb, d.SecNone)
	g.verbTerminalTransfer = b.State("VERB_TERMINAL_TRANSFER", d.Transfer, d.PosVerb, d.SecNone)
	g.verbTerminal = b.State("VERB_TERMINAL", d.Terminal, d.PosVerb, d.SecNone)
	g.verbPlainDeriv = b.State("VERB_PLAIN_DERIV", d.Derivational, d.PosVerb, d.SecNone)
	g.verbPolarityDeriv = b.State("VERB_POLARITY_DERIV", d.Derivational, d.PosVerb, d.SecNone)

	g.adjRoot = b.State("ADJECTIVE_ROOT", d.Transfer, d.PosAdjective, d.SecNone)
	g.adjTerminalTransfer = b.State("ADJECTIVE_TERMINAL_TRANSFER", d.Transfer, d.PosAdjective, d.SecNone)
	g.adjTerminal = b.State("ADJECTIVE_TERMINAL", d.Terminal, d.PosAdjective, d.SecNone)
	g.adjDeriv = b.State("ADJECTIVE_DERIV", d.Derivational, d.PosAdjective, d.SecNone)

	g.advRoot = b.State("ADVERB_ROOT", d.Transfer, d.PosAdverb, d.SecNone)
	g.advTerminalTransfer = b.State("ADVERB_TERMINAL_TRANSFER", d.Transfer, d.PosAdverb, d.SecNone)
	g.advTerminal = b.State("ADVERB_TERMINAL", d.Terminal, d.PosAdverb, d.SecNone)
	g.advDeriv = b.State("ADVERB_DERIV", d.Derivational, d.PosAdverb, d.SecNone)

	g.pronRoot = b.State("PRONOUN_ROOT", d.Transfer, d.PosPronoun, d.SecNone)
	g.pronWithAgreement = b.State("PRONOUN_WITH_AGREEMENT", d.Transfer, d.PosPronoun, d.SecNone)
	g.pronWithPossession = b.State("PRONOUN_WITH_POSSESSION", d.Transfer, d.PosPronoun, d.SecNone)
	g.pronWithCase = b.State("PRONOUN_WITH_CASE", d.Transfer, d.PosPronoun, d.SecNone)
	g.pronTerminalTransfer = b.State("PRONOUN_TERMINAL_TRANSFER", d.Transfer, d.PosPronoun, d.SecNone)
	g.pronTerminal = b.State("PRONOUN_TERMINAL", d.Terminal, d.PosPronoun, d.SecNone)
	g.pronNomDeriv = b.State("PRONOUN_NOM_DERIV", d.Derivational, d.PosPronoun, d.SecNone)
	g.pronDerivWithCase = b.State("PRONOUN_DERIV_WITH_CASE", d.Derivational, d.PosPronoun, d.SecNone)

	g.quesRoot = b.State("QUESTION_ROOT", d.Transfer, d.PosQuestion, d.SecNone)
	g.quesWithTense = b.State("QUESTION_WITH_TENSE", d.Transfer, d.PosQuestion, d.SecNone)
	g.quesWithAgreement = b.State("QUESTION_WITH_AGREEMENT", d.Transfer, d.PosQuestion, d.SecNone)
	g.quesTerminal = b.State("QUESTION_TERMINAL", d.Terminal, d.PosQuestion, d.SecNone)

	g.detTerminal = b.State("DETERMINER_ROOT_TERMINAL", d.Terminal, d.PosDeterminer, d.SecNone)
	g.interjTerminal = b.State("INTERJECTION_ROOT_TERMINAL", d.Terminal, d.PosInterjection, d.SecNone)
	g.conjTerminal = b.State("CONJUNCTION_ROOT_TERMINAL", d.Terminal, d.PosConjunction, d.SecNone)
	g.postpTerminal = b.State("POSTP_ROOT_TERMINAL", d.Terminal, d.PosPostPositive, d.SecNone)
	g.dupTerminal = b.State("DUP_ROOT_TERMINAL", d.Terminal, d.PosDuplicator, d.SecNone)
	g.puncTerminal = b.State("PUNC_ROOT_TERMINAL", d.Terminal, d.PosPunctuation, d.SecNone)
}

func (g *basic) suffixes() {
	b := g.b

	g.a3sgNoun = b.Suffix("A3Sg_Noun", nounAgreements, "A3sg", false)
	g.a3plNoun = b.Suffix("A3Pl_Noun", nounAgreements, "A3pl", false)
	g.pnonNoun = b.Suffix("Pnon_Noun", nounPossessions, "Pnon", false)
	g.p1sgNoun = b.Suffix("P1Sg_Noun", nounPossessions, "P1sg", false)
	g.p2sgNoun = b.Suffix("P2Sg_Noun", nounPossessions, "P2sg", false)
	g.p3sgNoun = b.Suffix("P3Sg_Noun", nounPossessions, "P3sg", false)
	g.p1plNoun = b.Suffix("P1Pl_Noun", nounPossessions, "P1pl", false)
	g.p2plNoun = b.Suffix("P2Pl_Noun", nounPossessions, "P2pl", false)
	g.p3plNoun = b.Suffix("P3Pl_Noun", nounPossessions, "P3pl", false)
	g.nomNoun = b.Suffix("Nom_Noun", nounCases, "Nom", false)
	g.nomDerivNoun = b.Suffix("Nom_Deriv_Noun", nounCases, "Nom", false)
	g.accNoun = b.Suffix("Acc_Noun", nounCases, "Acc", false)
	g.datNoun = b.Suffix("Dat_Noun", nounCases, "Dat", false)
	g.locNoun = b.Suffix("Loc_Noun", nounCases, "Loc", false)
	g.ablNoun = b.Suffix("Abl_Noun", nounCases, "Abl", false)
	g.genNoun = b.Suffix("Gen_Noun", nounCases, "Gen", false)
	g.insNoun = b.Suffix("Ins_Noun", nounCases, "Ins", false)

	g.dim = b.Suffix("Dim", "", "", false)
	g.ness = b.Suffix("Ness_Noun", "", "Ness", false)
	g.agtNoun = b.Suffix("Agt_Noun", "", "Agt", false)
	g.acquire = b.Suffix("Acquire", "", "", false)
	g.becomeNoun = b.Suffix("Become_Noun", "", "Become", false)
	g.with = b.Suffix("With", "", "", false)
	g.without = b.Suffix("Without", "", "", false)
	g.justLikeNoun = b.Suffix("JustLike_Noun", "", "JustLike", false)
	g.equNoun = b.Suffix("Equ_Noun", "", "Equ", false)
	g.pointQualNoun = b.Suffix("PointQual_Noun", "", "PointQual", false)

	g.neg = b.Suffix("Neg", verbPolarity, "", false)
	g.pos = b.Suffix("Pos", verbPolarity, "", false)
	g.aor = b.Suffix("Aor", "", "", false)
	g.prog = b.Suffix("Prog", "", "", false)
	g.fut = b.Suffix("Fut", "", "", false)
	g.narr = b.Suffix("Narr", "", "", false)
	g.past = b.Suffix("Past", "", "", false)
	g.cond = b.Suffix("Cond", "", "", false)
	g.imp = b.Suffix("Imp", "", "", false)
	g.a1sgVerb = b.Suffix("A1Sg_Verb", verbAgreements, "A1sg", false)
	g.a2sgVerb = b.Suffix("A2Sg_Verb", verbAgreements, "A2sg", false)
	g.a3sgVerb = b.Suffix("A3Sg_Verb", verbAgreements, "A3sg", false)
	g.a1plVerb = b.Suffix("A1Pl_Verb", verbAgreements, "A1pl", false)
	g.a2plVerb = b.Suffix("A2Pl_Verb", verbAgreements, "A2pl", false)
	g.a3plVerb = b.Suffix("A3Pl_Verb", verbAgreements, "A3pl", false)
	g.caus = b.Suffix("Caus", "", "", true)
	g.able = b.Suffix("Able", "", "", false)
	g.inf = b.Suffix("Inf", "", "", false)
	g.presPart = b.Suffix("PresPart", "", "", false)

	g.nessAdj = b.Suffix("Ness", "", "", false)
	g.becomeAdj = b.Suffix("Become_Adj", "", "Become", false)
	g.justLikeAdj = b.Suffix("JustLike_Adj", "", "JustLike", false)
	g.ly = b.Suffix("Ly", "", "", false)

	g.pointQualAdv = b.Suffix("PointQual_Adv", "", "PointQual", false)

	g.a1sgPron = b.Suffix("A1Sg_Pron", pronounAgreements, "A1sg", false)
	g.a2sgPron = b.Suffix("A2Sg_Pron", pronounAgreements, "A2sg", false)
	g.a3sgPron = b.Suffix("A3Sg_Pron", pronounAgreements, "A3sg", false)
	g.a1plPron = b.Suffix("A1Pl_Pron", pronounAgreements, "A1pl", false)
	g.a2plPron = b.Suffix("A2Pl_Pron", pronounAgreements, "A2pl", false)
	g.a3plPron = b.Suffix("A3Pl_Pron", pronounAgreements, "A3pl", false)
	g.pnonPron = b.Suffix("Pnon_Pron", pronounPossession, "Pnon", false)
	g.p1sgPron = b.Suffix("P1Sg_Pron", pronounPossession, "P1sg", false)
	g.p2sgPron = b.Suffix("P2Sg_Pron", pronounPossession, "P2sg", false)
	g.p3sgPron = b.Suffix("P3Sg_Pron", pronounPossession, "P3sg", false)
	g.p1plPron = b.Suffix("P1Pl_Pron", pronounPossession, "P1pl", false)
	g.p2plPron = b.Suffix("P2Pl_Pron", pronounPossession, "P2pl", false)
	g.p3plPron = b.Suffix("P3Pl_Pron", pronounPossession, "P3pl", false)
	g.nomPron = b.Suffix("Nom_Pron", pronounCases, "Nom", false)
	g.nomPronDeriv = b.Suffix("Nom_Pron_Deriv", pronounCases, "Nom", false)
	g.accPron = b.Suffix("Acc_Pron", pronounCases, "Acc", false)
	g.datPron = b.Suffix("Dat_Pron", pronounCases, "Dat", false)
	g.locPron = b.Suffix("Loc_Pron", pronounCases, "Loc", false)
	g.ablPron = b.Suffix("Abl_Pron", pronounCases, "Abl", false)
	g.genPron = b.Suffix("Gen_Pron", pronounCases, "Gen", false)
	g.insPron = b.Suffix("Ins_Pron", pronounCases, "Ins", false)
	g.accordingTo = b.Suffix("AccordingTo", pronounCases, "", false)
	g.withoutPron = b.Suffix("Without_Pron", "", "Without", false)
	g.pointQualPron = b.Suffix("PointQual_Pron", "", "PointQual", false)

	g.presQues = b.Suffix("Pres_Ques", questionTenses, "Pres", false)
	g.pastQues = b.Suffix("Past_Ques", questionTenses, "Past", false)
	g.narrQues = b.Suffix("Narr_Ques", questionTenses, "Narr", false)
	g.a1sgQues = b.Suffix("A1Sg_Ques", questionAgreement, "A1sg", false)
	g.a2sgQues = b.Suffix("A2Sg_Ques", questionAgreement, "A2sg", false)
	g.a3sgQues = b.Suffix("A3Sg_Ques", questionAgreement, "A3sg", false)
	g.a1plQues = b.Suffix("A1Pl_Ques", questionAgreement, "A1pl", false)
	g.a2plQues = b.Suffix("A2Pl_Ques", questionAgreement, "A2pl", false)
	g.a3plQues = b.Suffix("A3Pl_Ques", questionAgreement, "A3pl", false)
}

func (g *basic) freeTransitions() {
	b := g.b
	b.Connect(g.nounWithCase, b.FreeTransition("Noun_Free_Transition_1"), g.nounTerminalTransfer)
	b.Connect(g.nounWithCase, b.FreeTransition("Noun_Free_Transition_2"), g.nounDerivWithCase)

	b.Connect(g.verbRoot, b.FreeTransition("Verb_Free_Transition_1"), g.verbPlainDeriv)
	b.Connect(g.verbWithPolarity, b.FreeTransition("Verb_Free_Transition_2"), g.verbPolarityDeriv)
	b.Connect(g.verbTerminalTransfer, b.FreeTransition("Verb_Free_Transition_5"), g.verbTerminal)

	b.Connect(g.adjRoot, b.FreeTransition("Adj_Free_Transition_1"), g.adjTerminalTransfer)
	b.Connect(g.adjTerminalTransfer, b.FreeTransition("Adj_Free_Transition_2"), g.adjTerminal)
	b.Connect(g.adjRoot, b.FreeTransition("Adj_Free_Transition_3"), g.adjDeriv)

	b.Connect(g.advRoot, b.FreeTransition("Adv_Free_Transition_1"), g.advTerminalTransfer)
	b.Connect(g.advTerminalTransfer, b.FreeTransition("Adv_Free_Transition_2"), g.advTerminal)
	b.Connect(g.advRoot, b.FreeTransition("Adv_Free_Transition_3"), g.advDeriv)

	b.Connect(g.pronWithCase, b.FreeTransition("Pronoun_Free_Transition_1"), g.pronTerminalTransfer)
	b.Connect(g.pronTerminalTransfer, b.FreeTransition("Pronoun_Free_Transition_2"), g.pronTerminal)
	b.Connect(g.pronWithCase, b.FreeTransition("Pronoun_Free_Transition_3"), g.pronDerivWithCase)

	b.Connect(g.quesWithAgreement, b.FreeTransition("Question_Free_Transition_1"), g.quesTerminal)

	g.adjToNounZero = b.ZeroTransition("Adj_to_Noun_Zero_Transition", "Zero")
	b.Connect(g.adjDeriv, g.adjToNounZero, g.nounRoot)
}

func (g *basic) nouns() {
	b := g.b

	b.Connect(g.nounRoot, g.a3sgNoun, g.nounWithAgreement)
	g.a3sgNoun.AddForm("", nil, nil, nil)
	b.Connect(g.nounRoot, g.a3plNoun, g.nounWithAgreement)
	g.a3plNoun.AddForm("lAr", nil, nil, nil)

	doesntComeAfterPointQual := d.Not(d.ComesAfterLastNonBlankDerivation(g.pointQualNoun, ""))
	for _, p := range []struct {
		s    *d.Suffix
		form string
	}{
		{g.p1sgNoun, "+Im"}, {g.p2sgNoun, "+In"}, {g.p3sgNoun, "+sI"},
		{g.p1plNoun, "+ImIz"}, {g.p2plNoun, "+InIz"}, {g.p3plNoun, "lAr!I"},
	} {
		b.Connect(g.nounWithAgreement, p.s, g.nounWithPossession)
		p.s.AddForm(p.form, doesntComeAfterPointQual, nil, nil)
	}
	g.p3plNoun.AddForm("!I", d.And(d.ComesAfter(g.a3plNoun), doesntComeAfterPointQual), nil, nil)
	b.Connect(g.nounWithAgreement, g.pnonNoun, g.nounWithPossession)
	g.pnonNoun.AddForm("", nil, nil, nil)

	comesAfterP3 := d.Or(d.ComesAfter(g.p3sgNoun), d.ComesAfter(g.p3plNoun))
	comesAfterPointQual := d.Or(
		d.ComesAfterLastNonBlankDerivation(g.pointQualAdv, ""),
		d.ComesAfterLastNonBlankDerivation(g.pointQualNoun, ""),
		d.ComesAfterLastNonBlankDerivation(g.pointQualPron, ""),
	)
	afterPointQualA3sg := d.And(comesAfterPointQual, d.ComesAfter(g.a3sgNoun))
	afterPointQualA3pl := d.And(comesAfterPointQual, d.ComesAfter(g.a3plNoun))
	// kitab-ı-nı, kitaptaki-ni
	insertN := d.Or(comesAfterP3, afterPointQualA3sg)
	insertY := d.Or(d.And(d.Not(comesAfterP3), d.Not(afterPointQualA3sg)), afterPointQualA3pl)

	b.Connect(g.nounWithPossession, g.nomNoun, g.nounWithCase)
	g.nomNoun.AddForm("", nil, nil, nil)
	b.Connect(g.nounWithPossession, g.nomDerivNoun, g.nounNomDeriv)
	g.nomDerivNoun.AddForm("", d.ComesAfter(g.pnonNoun), nil, nil)

	for _, c := range []struct {
		s    *d.Suffix
		y, n string
	}{
		{g.accNoun, "+yI", "nI"},
		{g.datNoun, "+yA", "nA"},
		{g.locNoun, "dA", "ndA"},
		{g.ablNoun, "dAn", "ndAn"},
	} {
		b.Connect(g.nounWithPossession, c.s, g.nounWithCase)
		c.s.AddForm(c.y, insertY, nil, nil)
		c.s.AddForm(c.n, insertN, nil, nil)
	}
	b.Connect(g.nounWithPossession, g.genNoun, g.nounWithCase)
	g.genNoun.AddForm("+nIn", nil, nil, nil)
	b.Connect(g.nounWithPossession, g.insNoun, g.nounWithCase)
	g.insNoun.AddForm("+ylA", nil, nil, nil)

	// "kırmızı" as a bare noun is only reachable through the adjective itself.
	notAdjZeroA3sgPnonNom := d.Not(d.And(
		d.ComesAfterDerivation(g.adjToNounZero, ""),
		d.ComesAfter(g.a3sgNoun),
		d.ComesAfter(g.pnonNoun),
		d.ComesAfter(g.nomNoun),
	))
	b.Connect(g.nounTerminalTransfer, b.ConditionalFreeTransition("Noun_Terminal_Conditional_Free_Transition", notAdjZeroA3sgPnonNom, nil, nil), g.nounTerminal)

	doesntComeAfterA3pl := d.DoesntComeAfter(g.a3plNoun)
	b.Connect(g.nounNomDeriv, g.dim, g.nounRoot)
	g.dim.AddForm("cIk", doesntComeAfterA3pl, nil, nil)
	b.Connect(g.nounNomDeriv, g.ness, g.nounRoot)
	g.ness.AddForm("lIk", nil, nil, nil)
	b.Connect(g.nounNomDeriv, g.agtNoun, g.adjRoot)
	g.agtNoun.AddForm("cI", nil, nil, nil)
	b.Connect(g.nounNomDeriv, g.acquire, g.verbRoot)
	g.acquire.AddForm("lAn", nil, nil, nil)
	b.Connect(g.nounNomDeriv, g.becomeNoun, g.verbRoot)
	g.becomeNoun.AddForm("lAş", nil, nil, nil)
	b.Connect(g.nounNomDeriv, g.with, g.adjRoot)
	g.with.AddForm("lI", nil, nil, nil)
	b.Connect(g.nounNomDeriv, g.without, g.adjRoot)
	g.without.AddForm("sIz", doesntComeAfterA3pl, nil, nil)
	b.Connect(g.nounNomDeriv, g.justLikeNoun, g.adjRoot)
	g.justLikeNoun.AddForm("+ImsI", nil, nil, nil)
	b.Connect(g.nounNomDeriv, g.equNoun, g.adjRoot)
	g.equNoun.AddForm("cA", nil, nil, nil)

	b.Connect(g.nounDerivWithCase, g.pointQualNoun, g.adjRoot)
	g.pointQualNoun.AddForm("ki", d.ComesAfter(g.locNoun), nil, nil)
}

func (g *basic) verbs() {
	b := g.b

	b.Connect(g.verbRoot, g.neg, g.verbWithPolarity)
	g.neg.AddForm("m", nil, d.Not(d.FollowedBySuffixGoesTo(d.Derivational)), nil)
	g.neg.AddForm("mA", nil, nil, nil)
	b.Connect(g.verbRoot, g.pos, g.verbWithPolarity)
	g.pos.AddForm("", nil, nil, nil)

	followedByA1sgA1pl := d.Or(d.ComesAfterForm(g.a1sgVerb, "+Im"), d.ComesAfterForm(g.a1plVerb, "yIz"))
	g.aor.AddForm("+Ir", d.And(d.HasLexemeAttributes(d.AoristI), d.DoesntComeAfter(g.neg)), nil, nil)
	g.aor.AddForm("+Ar", d.DoesntComeAfter(g.neg), nil, nil)
	g.aor.AddForm("z", d.ComesAfter(g.neg), d.Not(followedByA1sgA1pl), nil)
	g.aor.AddForm("", d.ComesAfter(g.neg), followedByA1sgA1pl, nil)

	g.prog.AddForm("Iyor", nil, nil, nil)
	g.prog.AddForm("mAktA", nil, nil, nil)
	g.fut.AddForm("+yAcAk", nil, nil, nil)
	g.narr.AddForm("mIş", nil, nil, nil)
	g.narr.AddForm("ymIş", nil, nil, nil)
	g.past.AddForm("dI", nil, nil, nil)
	g.past.AddForm("ydI", nil, nil, nil)
	g.cond.AddForm("+ysA", nil, nil, nil)
	g.imp.AddForm("", nil, d.Or(d.ComesAfter(g.a2sgVerb), d.ComesAfter(g.a3sgVerb), d.ComesAfter(g.a2plVerb), d.ComesAfter(g.a3plVerb)), nil)
	g.imp.AddForm("sAnA", nil, d.ComesAfter(g.a2sgVerb), nil)
	g.imp.AddForm("sAnIzA", nil, d.ComesAfter(g.a2plVerb), nil)

	for _, s := range []*d.Suffix{g.aor, g.prog, g.fut, g.narr, g.past, g.cond, g.imp} {
		b.Connect(g.verbWithPolarity, s, g.verbWithTense)
	}
	for _, s := range []*d.Suffix{g.cond, g.narr, g.past} {
		b.Connect(g.verbWithTense, s, g.verbWithTense)
	}

	afterImp := d.ComesAfter(g.imp)
	notAfterImp := d.Not(afterImp)
	afterEmptyImp := d.ComesAfterForm(g.imp, "")

	for _, s := range []*d.Suffix{g.a1sgVerb, g.a2sgVerb, g.a3sgVerb, g.a1plVerb, g.a2plVerb, g.a3plVerb} {
		b.Connect(g.verbWithTense, s, g.verbTerminalTransfer)
	}
	g.a1sgVerb.AddForm("+Im", nil, nil, nil)
	g.a1sgVerb.AddForm("yIm", nil, nil, nil)
	g.a2sgVerb.AddForm("n", notAfterImp, nil, nil)
	g.a2sgVerb.AddForm("sIn", notAfterImp, nil, nil)
	g.a2sgVerb.AddForm("", afterImp, nil, nil)
	g.a3sgVerb.AddForm("", notAfterImp, nil, nil)
	g.a3sgVerb.AddForm("sIn", afterImp, nil, nil)
	g.a1plVerb.AddForm("+Iz", nil, nil, nil)
	g.a1plVerb.AddForm("!k", d.Or(d.ComesAfter(g.past), d.ComesAfter(g.cond)), nil, nil)
	g.a1plVerb.AddForm("yIz", nil, nil, nil)
	g.a2plVerb.AddForm("", d.And(afterImp, d.Not(afterEmptyImp)), nil, nil)
	g.a2plVerb.AddForm("sInIz", notAfterImp, nil, nil)
	g.a2plVerb.AddForm("nIz", notAfterImp, nil, nil)
	g.a2plVerb.AddForm("+yIn", afterEmptyImp, nil, nil)
	g.a2plVerb.AddForm("+yInIz", afterEmptyImp, nil, nil)
	g.a3plVerb.AddForm("lAr", notAfterImp, nil, nil)
	g.a3plVerb.AddForm("sInlAr", afterImp, nil, nil)

	b.Connect(g.verbPlainDeriv, g.caus, g.verbRoot)
	g.caus.AddForm("t", d.HasLexemeAttributes(d.CausativeT), nil, nil)
	g.caus.AddForm("Ir", d.HasLexemeAttributes(d.CausativeIr), nil, nil)
	g.caus.AddForm("It", d.HasLexemeAttributes(d.CausativeIt), nil, nil)
	g.caus.AddForm("Ar", d.HasLexemeAttributes(d.CausativeAr), nil, nil)
	g.caus.AddForm("dIr", d.HasLexemeAttributes(d.CausativeDIr), nil, nil)
	b.Connect(g.verbPlainDeriv, g.able, g.verbRoot)
	g.able.AddForm("+yAbil", nil, nil, nil)

	b.Connect(g.verbPolarityDeriv, g.inf, g.nounRoot)
	g.inf.AddForm("mAk", nil, nil, nil)
	g.inf.AddForm("mA", nil, nil, nil)
	g.inf.AddForm("+yIş", nil, nil, nil)
	b.Connect(g.verbPolarityDeriv, g.presPart, g.adjRoot)
	g.presPart.AddForm("+yAn", nil, nil, nil)
}

func (g *basic) adjectives() {
	b := g.b
	b.Connect(g.adjDeriv, g.nessAdj, g.nounRoot)
	g.nessAdj.AddForm("lIk", nil, nil, nil)
	b.Connect(g.adjDeriv, g.becomeAdj, g.verbRoot)
	g.becomeAdj.AddForm("lAş", nil, nil, nil)
	b.Connect(g.adjDeriv, g.justLikeAdj, g.adjRoot)
	g.justLikeAdj.AddForm("+ImsI", nil, nil, nil)
	b.Connect(g.adjDeriv, g.ly, g.advRoot)
	g.ly.AddForm("cA", nil, nil, nil)
}

func (g *basic) adverbs() {
	kuRoots := d.Or(d.AppliesToRoot("bugün"), d.AppliesToRoot("dün"), d.AppliesToRoot("gün"), d.AppliesToRoot("öbür"))
	g.b.Connect(g.advDeriv, g.pointQualAdv, g.adjRoot)
	g.pointQualAdv.AddForm("ki", d.Not(kuRoots), nil, nil)
	g.pointQualAdv.AddForm("kü", kuRoots, nil, nil)
}

func (g *basic) pronouns() {
	b := g.b

	// Personal pronoun agreements only come from predefined paths.
	for _, s := range []*d.Suffix{g.a1sgPron, g.a2sgPron, g.a3sgPron, g.a1plPron, g.a2plPron, g.a3plPron} {
		b.Connect(g.pronRoot, s, g.pronWithAgreement)
	}
	g.a3sgPron.AddForm("", nil, nil, nil)
	g.a3plPron.AddForm("lAr", nil, nil, nil)

	for _, s := range []*d.Suffix{g.pnonPron, g.p1sgPron, g.p2sgPron, g.p3sgPron, g.p1plPron, g.p2plPron, g.p3plPron} {
		b.Connect(g.pronWithAgreement, s, g.pronWithPossession)
	}
	g.pnonPron.AddForm("", nil, nil, nil)
	g.p1sgPron.AddForm("+Im", nil, nil, nil)
	g.p2sgPron.AddForm("+In", nil, nil, nil)
	g.p3sgPron.AddForm("+sI", nil, nil, nil)
	g.p1plPron.AddForm("+ImIz", nil, nil, nil)
	g.p2plPron.AddForm("+InIz", nil, nil, nil)
	g.p3plPron.AddForm("lAr!I", nil, nil, nil)
	g.p3plPron.AddForm("!I", d.ComesAfter(g.a3plPron), nil, nil)

	comesAfterP3 := d.Or(d.ComesAfter(g.p3sgPron), d.ComesAfter(g.p3plPron))
	notAfterP3 := d.Not(comesAfterP3)

	b.Connect(g.pronWithPossession, g.nomPron, g.pronWithCase)
	g.nomPron.AddForm("", nil, nil, nil)
	b.Connect(g.pronWithPossession, g.nomPronDeriv, g.pronNomDeriv)
	g.nomPronDeriv.AddForm("", d.ComesAfter(g.pnonPron), nil, nil)
	for _, c := range []struct {
		s    *d.Suffix
		y, n string
	}{
		{g.accPron, "+yI", "nI"},
		{g.datPron, "+yA", "nA"},
		{g.locPron, "dA", "ndA"},
		{g.ablPron, "dAn", "ndAn"},
	} {
		b.Connect(g.pronWithPossession, c.s, g.pronWithCase)
		c.s.AddForm(c.y, notAfterP3, nil, nil)
		c.s.AddForm(c.n, comesAfterP3, nil, nil)
	}
	b.Connect(g.pronWithPossession, g.genPron, g.pronWithCase)
	g.genPron.AddForm("+nIn", nil, nil, nil)
	b.Connect(g.pronWithPossession, g.insPron, g.pronWithCase)
	g.insPron.AddForm("+ylA", nil, nil, nil)
	b.Connect(g.pronWithPossession, g.accordingTo, g.pronWithCase)
	g.accordingTo.AddForm("cA", nil, nil, nil)

	afterBuSuOPnon := d.And(
		d.ComesAfter(g.a3sgPron),
		d.ComesAfter(g.pnonPron),
		d.Or(d.AppliesToRoot("o"), d.AppliesToRoot("bu"), d.AppliesToRoot("şu")),
	)
	b.Connect(g.pronNomDeriv, g.withoutPron, g.adjRoot)
	g.withoutPron.AddForm("sIz", d.Not(afterBuSuOPnon), nil, nil)
	g.withoutPron.AddForm("nsuz", afterBuSuOPnon, nil, nil)

	b.Connect(g.pronDerivWithCase, g.pointQualPron, g.adjRoot)
	g.pointQualPron.AddForm("ki", d.ComesAfter(g.locPron), nil, nil)
}

func (g *basic) questions() {
	b := g.b
	for _, s := range []*d.Suffix{g.presQues, g.pastQues, g.narrQues} {
		b.Connect(g.quesRoot, s, g.quesWithTense)
	}
	g.presQues.AddForm("", nil, nil, nil)
	g.pastQues.AddForm("ydI", nil, nil, nil)
	g.narrQues.AddForm("ymIş", nil, nil, nil)

	for _, s := range []*d.Suffix{g.a1sgQues, g.a2sgQues, g.a3sgQues, g.a1plQues, g.a2plQues, g.a3plQues} {
		b.Connect(g.quesWithTense, s, g.quesWithAgreement)
	}
	g.a1sgQues.AddForm("yIm", d.ComesAfter(g.presQues), nil, nil)
	g.a1sgQues.AddForm("m", d.DoesntComeAfter(g.presQues), nil, nil)
	g.a2sgQues.AddForm("sIn", d.ComesAfter(g.presQues), nil, nil)
	g.a2sgQues.AddForm("n", d.DoesntComeAfter(g.presQues), nil, nil)
	g.a3sgQues.AddForm("", nil, nil, nil)
	g.a1plQues.AddForm("yIz", d.ComesAfter(g.presQues), nil, nil)
	g.a1plQues.AddForm("k", d.ComesAfter(g.pastQues), nil, nil)
	g.a2plQues.AddForm("sInIz", d.ComesAfter(g.presQues), nil, nil)
	g.a2plQues.AddForm("nIz", d.DoesntComeAfter(g.presQues), nil, nil)
	g.a3plQues.AddForm("lAr", nil, nil, nil)
}

func (g *basic) rootState(root *d.Root) *d.State {
	switch root.Lexeme.PrimaryPos {
	case d.PosNoun:
		return g.nounRoot
	case d.PosVerb:
		return g.verbRoot
	case d.PosAdjective:
		return g.adjRoot
	case d.PosAdverb:
		return g.advRoot
	case d.PosPronoun:
		return g.pronRoot
	case d.PosDeterminer:
		return g.detTerminal
	case d.PosInterjection:
		return g.interjTerminal
	case d.PosConjunction:
		return g.conjTerminal
	case d.PosQuestion:
		return g.quesRoot
	case d.PosDuplicator:
		return g.dupTerminal
	case d.PosPunctuation:
		return g.puncTerminal
	case d.PosPostPositive:
		return g.postpTerminal
	}
	return nil
}

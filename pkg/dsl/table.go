package dsl

import d "github.com/aretw0/trnltk/pkg/domain"

// Irregulars authors the paths of the irregular roots of the embedded lexicon.
func Irregulars(b *Builder) {
	personalPronouns(b)
	demonstrativePronouns(b)
	placePronouns(b)
	quantityPronouns(b)
	irregularNouns(b)
	irregularVerbs(b)
}

type casePath struct {
	suffix, form string
}

func personalPronouns(b *Builder) {
	// ben, bana, beni, bende, benden, benle/benimle, benim, bence
	singular := func(root, changed, agreement, gen, ins string) {
		pron := func(seq string) *PathBuilder {
			return b.Root(seq, d.PosPronoun, d.SecPersonal).S(agreement).S("Pnon_Pron")
		}
		pron(root).S("Nom_Pron").Add()
		pron(root).S("Nom_Pron_Deriv").Add()
		pron(changed).S("Dat_Pron", "a").Add()
		for _, c := range []casePath{
			{"Acc_Pron", "i"},
			{"Loc_Pron", "de"},
			{"Abl_Pron", "den"},
			{"Ins_Pron", "le"},
			{"Ins_Pron", ins},
			{"Gen_Pron", gen},
			{"AccordingTo", "ce"},
		} {
			pron(root).S(c.suffix, c.form).Add()
		}
	}
	singular("ben", "ban", "A1Sg_Pron", "im", "imle")
	singular("sen", "san", "A2Sg_Pron", "in", "inle")

	// biz, bizler, bize, bizim, bizimle ...
	plural := func(root, agreement, gen, ins string) {
		for _, agr := range []string{"", "ler"} {
			pron := func() *PathBuilder {
				return b.Root(root, d.PosPronoun, d.SecPersonal).S(agreement, agr).S("Pnon_Pron")
			}
			pron().S("Nom_Pron").Add()
			pron().S("Nom_Pron_Deriv").Add()
			for _, c := range []casePath{
				{"Acc_Pron", "i"},
				{"Dat_Pron", "e"},
				{"Loc_Pron", "de"},
				{"Abl_Pron", "den"},
				{"Ins_Pron", "le"},
				{"Gen_Pron", gen},
				{"AccordingTo", "ce"},
			} {
				pron().S(c.suffix, c.form).Add()
			}
			if agr == "" {
				pron().S("Ins_Pron", ins).Add()
			}
		}
	}
	plural("biz", "A1Pl_Pron", "im", "imle")
	plural("siz", "A2Pl_Pron", "in", "inle")
}

// o, bu, şu take an "n" before every case ending: onu, buna, şundan.
func demonstrativePronouns(b *Builder) {
	stems := []struct {
		root string
		spos d.SecondaryPos
	}{
		{"o", d.SecPersonal},
		{"bu", d.SecDemonstrative},
		{"şu", d.SecDemonstrative},
	}
	for _, s := range stems {
		singular := func() *PathBuilder {
			return b.Root(s.root, d.PosPronoun, s.spos).S("A3Sg_Pron").S("Pnon_Pron")
		}
		singular().S("Nom_Pron").Add()
		singular().S("Nom_Pron_Deriv").Add()
		for _, c := range []casePath{
			{"Acc_Pron", "nu"},
			{"Dat_Pron", "na"},
			{"Loc_Pron", "nda"},
			{"Abl_Pron", "ndan"},
			{"Ins_Pron", "nla"},
			{"Ins_Pron", "nunla"},
			{"Gen_Pron", "nun"},
			{"AccordingTo", "nca"},
		} {
			singular().S(c.suffix, c.form).Add()
		}

		plural := func() *PathBuilder {
			return b.Root(s.root, d.PosPronoun, s.spos).S("A3Pl_Pron", "nlar").S("Pnon_Pron")
		}
		plural().S("Nom_Pron").Add()
		plural().S("Nom_Pron_Deriv").Add()
		for _, c := range []casePath{
			{"Acc_Pron", "ı"},
			{"Dat_Pron", "a"},
			{"Loc_Pron", "da"},
			{"Abl_Pron", "dan"},
			{"Ins_Pron", "la"},
			{"Gen_Pron", "ın"},
			{"AccordingTo", "ca"},
		} {
			plural().S(c.suffix, c.form).Add()
		}
	}
}

// orda, burdan, nerde: the colloquial short stems only take locative and
// ablative.
func placePronouns(b *Builder) {
	stems := []struct {
		root string
		spos d.SecondaryPos
		loc  string
	}{
		{"or", d.SecDemonstrative, "da"},
		{"bur", d.SecDemonstrative, "da"},
		{"şur", d.SecDemonstrative, "da"},
		{"ner", d.SecQuestion, "de"},
	}
	for _, s := range stems {
		for _, c := range []casePath{{"Loc_Pron", s.loc}, {"Abl_Pron", s.loc + "n"}} {
			b.Root(s.root, d.PosPronoun, s.spos).S("A3Sg_Pron").S("Pnon_Pron").S(c.suffix, c.form).Add()
		}
	}
}

// hepimiz, hepiniz, hepsi; birbirimiz, birbiriniz, birbirleri
func quantityPronouns(b *Builder) {
	for _, s := range []struct {
		root       string
		p1, p2, p3 string
	}{
		{"hep", "imiz", "iniz", "si"},
		{"birbir", "imiz", "iniz", "leri"},
	} {
		b.Root(s.root, d.PosPronoun, d.SecQuantitive).S("A1Pl_Pron").S("P1Pl_Pron", s.p1).Add()
		b.Root(s.root, d.PosPronoun, d.SecQuantitive).S("A2Pl_Pron").S("P2Pl_Pron", s.p2).Add()
		b.Root(s.root, d.PosPronoun, d.SecQuantitive).S("A3Pl_Pron").S("P3Pl_Pron", s.p3).Add()
	}
}

func irregularNouns(b *Builder) {
	// su: suyum, suyun, suyu ... sular
	su := func() *PathBuilder { return b.Root("su", d.PosNoun).S("A3Sg_Noun") }
	for _, c := range []casePath{
		{"P1Sg_Noun", "yum"},
		{"P2Sg_Noun", "yun"},
		{"P3Sg_Noun", "yu"},
		{"P1Pl_Noun", "yumuz"},
		{"P2Pl_Noun", "yunuz"},
		{"P3Pl_Noun", "ları"},
	} {
		su().S(c.suffix, c.form).Add()
	}
	su().S("Pnon_Noun").S("Gen_Noun", "yun").Add()
	su().S("Pnon_Noun").Add()
	b.Root("su", d.PosNoun).S("A3Pl_Noun", "lar").S("Pnon_Noun").Add()

	// içerde, dışardan, içersi
	for _, s := range []struct{ root, loc, p3 string }{
		{"içer", "de", "si"},
		{"dışar", "da", "sı"},
	} {
		in := func() *PathBuilder { return b.Root(s.root, d.PosNoun).S("A3Sg_Noun") }
		in().S("Pnon_Noun").S("Loc_Noun", s.loc).Add()
		in().S("Pnon_Noun").S("Abl_Noun", s.loc+"n").Add()
		in().S("P3Sg_Noun", s.p3).Add()
	}
}

// diyecek, yiyeceğim, diyor
func irregularVerbs(b *Builder) {
	for _, root := range []string{"di", "yi"} {
		v := func() *PathBuilder { return b.Root(root, d.PosVerb).S("Pos") }
		v().S("Fut", "yecek").Add()
		v().S("Fut", "yeceğ").Add()
		v().S("Prog", "yor").Add()
	}
}

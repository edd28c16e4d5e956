// Package lexicon loads dictionary lexemes, derives their surface roots and
// indexes the roots by sequence.
//
// A dictionary line is a lemma optionally followed by bracketed metadata:
//
//	kitap
//	yapmak
//	ben [P:Pron, Pers; A:RootChange]
//	bura [P:Pron, Demons; A:RootChange]
//	ağaç [A:Voicing]
//	etmek [A:Voicing, Aorist_A; R:et]
//
// P is the primary (and optional secondary) part of speech, A the lexeme
// attributes and R an explicit lemma root. A lemma without P ending in
// -mak/-mek is a verb, anything else a noun. Lines starting with # are
// comments.
package lexicon

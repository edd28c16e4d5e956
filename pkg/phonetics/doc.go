// Package phonetics implements Turkish vowel harmony, consonant voicing and
// suffix allomorph selection.
//
// The Engine is the oracle the suffix applier consults. Suffix forms are
// written as templates ("+yA", "lAr", "dI") and realized against the
// phonetic attributes of the surface they follow:
//
//	e := phonetics.NewEngine()
//	attrs := phonetics.Attributes("kitap", 0)
//	surface, form := e.Apply("kitap", attrs, "+yA", 0) // "kitab", "a"
package phonetics

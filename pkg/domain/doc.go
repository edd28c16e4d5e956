/*
Package domain contains the core models of the Turkish morphological analyzer.

It defines the vocabulary every other package speaks: lexemes and roots,
suffixes and their surface forms, the states of the suffix graph, and the
candidate analysis (Container) the parser grows one suffix at a time. The
package performs no I/O and has no external dependencies.

# Key Entities

  - Lexeme / Root: a dictionary entry and one concrete surface realization of it.
  - Suffix / SuffixForm: an abstract morpheme and one of its templates ("+yA", "lAr").
  - State / Edge: a node of the suffix graph and a suffix-labelled arc out of it.
  - Condition: a composable predicate over a candidate (And, Or, Not).
  - Container: a persistent candidate; Append returns a new value sharing history.

# Output

Format, FormatWithForms and FormatDerivations render a finished Container:

	kitap+Noun+A3sg+Pnon+Dat
	kitab(kitap)+Noun+A3sg+Pnon+Dat(+yA[a])
	(1,"kitap+Noun+A3sg+Pnon+Dat")
*/
package domain

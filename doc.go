/*
Package trnltk is a morphological analyzer for Turkish.

A word is split into a root and a chain of suffixes by walking a suffix graph:
states are morphological categories (noun with agreement, verb with tense, ...)
and edges are suffixes with one or more phonetic templates ("+yA", "dI", "lAr").
Every path that consumes the whole word and ends in a terminal state is an
analysis.

# Concept

The analyzer combines four collaborators:

  - a suffix graph (pkg/graph), built from composable definitions;
  - a lexicon (pkg/lexicon) whose lexemes are expanded into surface roots;
  - root finders (pkg/rootfinder) that propose roots for each prefix;
  - predefined paths (pkg/dsl) for irregular roots such as "ben" / "bana".

# Usage

	analyzer, err := trnltk.New()
	if err != nil {
		log.Fatal(err)
	}

	results, err := analyzer.ParseStr(ctx, "kitaba")
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range results {
		fmt.Println(domain.Format(r)) // kitap+Noun+A3sg+Pnon+Dat
	}

Results can be memoized with the caches under pkg/adapters and the caching
parser in pkg/parser.
*/
package trnltk

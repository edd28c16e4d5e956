/*
Package dsl provides a fluent Go DSL for authoring the suffix paths of
irregular roots.

Some frequent roots (personal and demonstrative pronouns, "demek" and
"yemek", "su") take endings that the general phonetic rules cannot derive.
Their analyses are written out explicitly, hop by hop, and replace the
generic traversal for those roots at parse time.

Example usage:

	table := func(b *dsl.Builder) {
		b.Root("ban", domain.PosPronoun, domain.SecPersonal).
			S("A1Sg_Pron").
			S("Pnon_Pron").
			S("Dat_Pron", "a").
			Add()
	}

	paths := dsl.NewPredefinedPaths(g, applier, lexicon, table)
	if err := paths.Initialize(); err != nil {
		// authoring error: unknown suffix, missing root, no edge
	}

When a suffix cannot be reached directly from the current state, the builder
looks one state further and inserts the blank hop in between, so the free
transitions of the graph do not have to be spelled out.
*/
package dsl

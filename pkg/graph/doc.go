/*
Package graph holds the suffix graph: the states a word passes through while
suffixes are attached, and the suffixes that connect them.

A graph is assembled from Definitions applied in order and then frozen:

	g, err := graph.New("mine", graph.Basic, graph.ProperNoun)

Later definitions extend earlier ones. They may connect to existing states
and their root-state mappings take precedence, which is how ProperNoun
sends "Ankara" to PROPER_NOUN_ROOT instead of NOUN_ROOT.
*/
package graph

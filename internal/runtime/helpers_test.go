package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk/internal/runtime"
	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/graph"
	"github.com/aretw0/trnltk/pkg/phonetics"
)

// mapFinder returns fixed roots per prefix.
type mapFinder map[string][]*domain.Root

func (f mapFinder) Handles(partial, _ string) bool { return len(f[partial]) > 0 }

func (f mapFinder) FindRoots(partial, _ string) []*domain.Root { return f[partial] }

func (f mapFinder) add(roots ...*domain.Root) mapFinder {
	for _, r := range roots {
		f[r.Sequence] = append(f[r.Sequence], r)
	}
	return f
}

func newRoot(seq, lemma, lemmaRoot string, pos domain.PrimaryPos, attrs ...domain.LexemeAttribute) *domain.Root {
	lex := &domain.Lexeme{
		Lemma:      lemma,
		LemmaRoot:  lemmaRoot,
		PrimaryPos: pos,
		Attributes: domain.NewLexemeAttributes(attrs...),
	}
	return &domain.Root{
		Sequence:           seq,
		Lexeme:             lex,
		PhoneticAttributes: phonetics.Attributes(seq, lex.Attributes),
	}
}

func noun(seq string) *domain.Root {
	return newRoot(seq, seq, seq, domain.PosNoun)
}

func adjective(seq string) *domain.Root {
	return newRoot(seq, seq, seq, domain.PosAdjective)
}

func verb(seq string, attrs ...domain.LexemeAttribute) *domain.Root {
	return newRoot(seq, seq+"mak", seq, domain.PosVerb, attrs...)
}

type fixture struct {
	graph      *graph.Graph
	engine     *phonetics.Engine
	applier    *runtime.SuffixApplier
	disallowed *runtime.RuleProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	g, err := graph.Default()
	require.NoError(t, err)

	engine := phonetics.NewEngine()
	require.NoError(t, engine.Precache(g.Forms()))

	disallowed, err := runtime.NewRuleProvider(g, runtime.DefaultDisallowedPaths()...)
	require.NoError(t, err)

	return &fixture{
		graph:      g,
		engine:     engine,
		applier:    runtime.NewSuffixApplier(engine, disallowed, nil),
		disallowed: disallowed,
	}
}

func (f *fixture) parser(t *testing.T, finder mapFinder, opts ...runtime.ParserOption) *runtime.Parser {
	t.Helper()
	rules, err := runtime.DefaultMandatoryRules(f.graph)
	require.NoError(t, err)
	opts = append([]runtime.ParserOption{
		runtime.WithMandatory(runtime.NewMandatoryTransitionApplier(f.applier, nil, rules...)),
	}, opts...)
	return runtime.NewParser(f.graph, finder, f.applier, opts...)
}

func (f *fixture) state(t *testing.T, name string) *domain.State {
	t.Helper()
	s, err := f.graph.State(name)
	require.NoError(t, err)
	return s
}

func (f *fixture) suffix(t *testing.T, name string) *domain.Suffix {
	t.Helper()
	s, err := f.graph.Suffix(name)
	require.NoError(t, err)
	return s
}

func (f *fixture) form(t *testing.T, suffix, form string) *domain.SuffixForm {
	t.Helper()
	sf, err := f.graph.SuffixForm(suffix, form)
	require.NoError(t, err)
	return sf
}

func formatted(results []*domain.Container) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = domain.FormatWithForms(r)
	}
	return out
}

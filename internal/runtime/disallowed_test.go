package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk/internal/runtime"
	"github.com/aretw0/trnltk/pkg/domain"
)

type step struct {
	suffix, form, target string
}

func (f *fixture) walk(t *testing.T, root *domain.Root, state, input string, steps ...step) *domain.Container {
	t.Helper()
	c := domain.NewContainer(root, f.state(t, state), input[len(root.Sequence):])
	plain := runtime.NewSuffixApplier(f.engine, nil, nil)
	for _, s := range steps {
		c = plain.TryForm(c, f.form(t, s.suffix, s.form), f.state(t, s.target), input)
		require.NotNil(t, c, "step %s(%s)", s.suffix, s.form)
	}
	return c
}

func TestRuleProvider_Default(t *testing.T) {
	f := newFixture(t)
	input := "kırmızılık"
	zeroNoun := f.walk(t, adjective("kırmızı"), "ADJECTIVE_ROOT", input,
		step{"Adj_Free_Transition_3", "", "ADJECTIVE_DERIV"},
		step{"Adj_to_Noun_Zero_Transition", "", "NOUN_ROOT"},
		step{"A3Sg_Noun", "", "NOUN_WITH_AGREEMENT"},
		step{"Pnon_Noun", "", "NOUN_WITH_POSSESSION"},
		step{"Nom_Deriv_Noun", "", "NOUN_NOM_DERIV"},
	)

	assert.True(t, f.disallowed.IsPathDisallowed(zeroNoun, f.suffix(t, "Ness_Noun")))
	assert.True(t, f.disallowed.IsPathDisallowed(zeroNoun, f.suffix(t, "Become_Noun")))
	assert.False(t, f.disallowed.IsPathDisallowed(zeroNoun, f.suffix(t, "With")))

	plainNoun := f.walk(t, noun("ev"), "NOUN_ROOT", "evlik",
		step{"A3Sg_Noun", "", "NOUN_WITH_AGREEMENT"},
		step{"Pnon_Noun", "", "NOUN_WITH_POSSESSION"},
		step{"Nom_Deriv_Noun", "", "NOUN_NOM_DERIV"},
	)
	assert.False(t, f.disallowed.IsPathDisallowed(plainNoun, f.suffix(t, "Ness_Noun")))
}

func TestRuleProvider_OrderAndScope(t *testing.T) {
	f := newFixture(t)
	// ev+Noun+A3sg+Pnon+Nom ... +Adj+With ... +Noun+Zero
	input := "evli"
	c := f.walk(t, noun("ev"), "NOUN_ROOT", input,
		step{"A3Sg_Noun", "", "NOUN_WITH_AGREEMENT"},
		step{"Pnon_Noun", "", "NOUN_WITH_POSSESSION"},
		step{"Nom_Deriv_Noun", "", "NOUN_NOM_DERIV"},
		step{"With", "lI", "ADJECTIVE_ROOT"},
		step{"Adj_Free_Transition_3", "", "ADJECTIVE_DERIV"},
	)
	zero := f.suffix(t, "Adj_to_Noun_Zero_Transition")

	tests := []struct {
		name  string
		path  runtime.DisallowedPath
		match bool
	}{
		{"in order with gap", runtime.DisallowedPath{Suffixes: []string{"A3Sg_Noun", "With", "Adj_to_Noun_Zero_Transition"}, Scope: runtime.ScopeWholeHistory}, true},
		{"wrong order", runtime.DisallowedPath{Suffixes: []string{"With", "A3Sg_Noun", "Adj_to_Noun_Zero_Transition"}, Scope: runtime.ScopeWholeHistory}, false},
		{"repeated suffix needs two positions", runtime.DisallowedPath{Suffixes: []string{"With", "With", "Adj_to_Noun_Zero_Transition"}, Scope: runtime.ScopeWholeHistory}, false},
		{"since derivation includes the boundary", runtime.DisallowedPath{Suffixes: []string{"With", "Adj_to_Noun_Zero_Transition"}}, true},
		{"since derivation stops at the boundary", runtime.DisallowedPath{Suffixes: []string{"A3Sg_Noun", "Adj_to_Noun_Zero_Transition"}}, false},
		{"whole history crosses the boundary", runtime.DisallowedPath{Suffixes: []string{"A3Sg_Noun", "Adj_to_Noun_Zero_Transition"}, Scope: runtime.ScopeWholeHistory}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := runtime.NewRuleProvider(f.graph, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.match, p.IsPathDisallowed(c, zero))
			assert.False(t, p.IsPathDisallowed(c, f.suffix(t, "Ness")), "rules are keyed by their last suffix")
		})
	}
}

func TestRuleProvider_Errors(t *testing.T) {
	f := newFixture(t)

	_, err := runtime.NewRuleProvider(f.graph, runtime.DisallowedPath{Suffixes: []string{"Ness"}})
	assert.Error(t, err)

	_, err = runtime.NewRuleProvider(f.graph, runtime.DisallowedPath{Suffixes: []string{"Ness", "Nope"}})
	assert.ErrorIs(t, err, domain.ErrUnknownSuffix)
}

func TestScope_String(t *testing.T) {
	assert.Equal(t, "since-derivation", runtime.ScopeSinceDerivation.String())
	assert.Equal(t, "whole-history", runtime.ScopeWholeHistory.String())
}

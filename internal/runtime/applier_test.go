package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk/internal/runtime"
	"github.com/aretw0/trnltk/pkg/domain"
)

func TestSuffixApplier_TransitionAllowed(t *testing.T) {
	f := newFixture(t)
	c := domain.NewContainer(noun("ev"), f.state(t, "NOUN_ROOT"), "ler")
	c = f.applier.TryForm(c, f.form(t, "A3Sg_Noun", ""), f.state(t, "NOUN_WITH_AGREEMENT"), "evler")
	require.NotNil(t, c)

	assert.False(t, f.applier.TransitionAllowed(c, f.suffix(t, "A3Pl_Noun")), "agreement group already used")
	assert.True(t, f.applier.TransitionAllowed(c, f.suffix(t, "Pnon_Noun")))
	assert.Empty(t, f.applier.TryAllForms(c, f.suffix(t, "A3Pl_Noun"), f.state(t, "NOUN_WITH_AGREEMENT"), "evler"))
}

func TestSuffixApplier_NonRepeatableDerivation(t *testing.T) {
	f := newFixture(t)
	input := "güzellik"
	c := domain.NewContainer(adjective("güzel"), f.state(t, "ADJECTIVE_ROOT"), "lik")
	c = f.applier.TryForm(c, f.form(t, "Adj_Free_Transition_3", ""), f.state(t, "ADJECTIVE_DERIV"), input)
	require.NotNil(t, c)
	c = f.applier.TryForm(c, f.form(t, "Ness", "lIk"), f.state(t, "NOUN_ROOT"), input)
	require.NotNil(t, c)

	assert.False(t, f.applier.TransitionAllowed(c, f.suffix(t, "Ness")))
	assert.True(t, f.applier.TransitionAllowed(c, f.suffix(t, "Ness_Noun")))

	caus := f.suffix(t, "Caus")
	assert.True(t, caus.AllowRepetition)
}

func TestSuffixApplier_TryForm(t *testing.T) {
	f := newFixture(t)
	start := domain.NewContainer(noun("kapı"), f.state(t, "NOUN_ROOT"), "ya")
	input := "kapıya"
	c := f.applier.TryForm(start, f.form(t, "A3Sg_Noun", ""), f.state(t, "NOUN_WITH_AGREEMENT"), input)
	require.NotNil(t, c)
	c = f.applier.TryForm(c, f.form(t, "Pnon_Noun", ""), f.state(t, "NOUN_WITH_POSSESSION"), input)
	require.NotNil(t, c)

	t.Run("phonetic match", func(t *testing.T) {
		next := f.applier.TryForm(c, f.form(t, "Dat_Noun", "+yA"), f.state(t, "NOUN_WITH_CASE"), input)
		require.NotNil(t, next)
		last := next.LastTransition()
		assert.Equal(t, "ya", last.Application.Actual)
		assert.Equal(t, "ya", last.Application.Fitting)
		assert.Equal(t, "kapıya", next.SurfaceSoFar())
		assert.Empty(t, next.Remaining())
		assert.Equal(t, 2, c.Len(), "receiver is never modified")
	})

	t.Run("phonetic mismatch", func(t *testing.T) {
		assert.Nil(t, f.applier.TryForm(c, f.form(t, "Loc_Noun", "dA"), f.state(t, "NOUN_WITH_CASE"), input))
	})

	t.Run("precondition", func(t *testing.T) {
		// "nA" only follows a third person possessive.
		assert.Nil(t, f.applier.TryForm(c, f.form(t, "Dat_Noun", "nA"), f.state(t, "NOUN_WITH_CASE"), "kapına"))
	})

	t.Run("forced form", func(t *testing.T) {
		forced := domain.NewForcedForm(f.suffix(t, "Dat_Noun"), "yaa")
		next := f.applier.TryForm(c, forced, f.state(t, "NOUN_WITH_CASE"), "kapıyaa")
		require.NotNil(t, next)
		assert.Equal(t, "yaa", next.LastTransition().Application.Actual)
		assert.Nil(t, f.applier.TryForm(c, forced, f.state(t, "NOUN_WITH_CASE"), input))
	})
}

func TestSuffixApplier_Postcondition(t *testing.T) {
	f := newFixture(t)
	input := "gelmedim"
	c := domain.NewContainer(verb("gel"), f.state(t, "VERB_ROOT"), "medim")

	// Neg "m" may not be followed by a derivational state.
	neg := f.applier.TryForm(c, f.form(t, "Neg", "m"), f.state(t, "VERB_WITH_POLARITY"), "gelmek")
	require.NotNil(t, neg)
	assert.Nil(t, f.applier.TryForm(neg, f.form(t, "Verb_Free_Transition_2", ""), f.state(t, "VERB_POLARITY_DERIV"), "gelmek"))

	negA := f.applier.TryForm(c, f.form(t, "Neg", "mA"), f.state(t, "VERB_WITH_POLARITY"), input)
	require.NotNil(t, negA)
	past := f.applier.TryForm(negA, f.form(t, "Past", "dI"), f.state(t, "VERB_WITH_TENSE"), input)
	require.NotNil(t, past)
	assert.Equal(t, "gelmedi", past.SurfaceSoFar())
}

func TestSuffixApplier_ConsultsDisallowedProvider(t *testing.T) {
	f := newFixture(t)
	veto := vetoAll{}
	a := runtime.NewSuffixApplier(f.engine, veto, nil)

	c := domain.NewContainer(noun("ev"), f.state(t, "NOUN_ROOT"), "")
	assert.Nil(t, a.TryForm(c, f.form(t, "A3Sg_Noun", ""), f.state(t, "NOUN_WITH_AGREEMENT"), "ev"))
}

type vetoAll struct{}

func (vetoAll) IsPathDisallowed(*domain.Container, *domain.Suffix) bool { return true }

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/graph"
)

func root(seq string, pos domain.PrimaryPos, spos domain.SecondaryPos) *domain.Root {
	return &domain.Root{Sequence: seq, Lexeme: &domain.Lexeme{Lemma: seq, LemmaRoot: seq, PrimaryPos: pos, SecondaryPos: spos}}
}

func TestDefault_RootStates(t *testing.T) {
	g, err := graph.Default()
	require.NoError(t, err)

	tests := []struct {
		root *domain.Root
		want string
	}{
		{root("kitap", domain.PosNoun, domain.SecNone), "NOUN_ROOT"},
		{root("Ankara", domain.PosNoun, domain.SecProperNoun), "PROPER_NOUN_ROOT"},
		{root("TBMM", domain.PosNoun, domain.SecAbbreviation), "PROPER_NOUN_ROOT"},
		{root("yap", domain.PosVerb, domain.SecNone), "VERB_ROOT"},
		{root("mavi", domain.PosAdjective, domain.SecNone), "ADJECTIVE_ROOT"},
		{root("ben", domain.PosPronoun, domain.SecPersonal), "PRONOUN_ROOT"},
		{root("ve", domain.PosConjunction, domain.SecNone), "CONJUNCTION_ROOT_TERMINAL"},
		{root("mi", domain.PosQuestion, domain.SecNone), "QUESTION_ROOT"},
	}
	for _, tt := range tests {
		s, err := g.DefaultStateForRoot(tt.root)
		require.NoError(t, err, tt.root.String())
		assert.Equal(t, tt.want, s.Name)
	}
}

func TestDefaultStateForRoot_Missing(t *testing.T) {
	g, err := graph.New(graph.BasicName, graph.Basic)
	require.NoError(t, err)

	_, err = g.DefaultStateForRoot(root("üç", domain.PosNumeral, domain.SecCardinal))
	assert.ErrorIs(t, err, domain.ErrMissingDefaultState)
}

func TestBasicWithoutProperNoun(t *testing.T) {
	g, err := graph.ByName(graph.BasicName)
	require.NoError(t, err)

	s, err := g.DefaultStateForRoot(root("Ankara", domain.PosNoun, domain.SecProperNoun))
	require.NoError(t, err)
	assert.Equal(t, "NOUN_ROOT", s.Name)

	_, err = g.State("PROPER_NOUN_ROOT")
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestLookups(t *testing.T) {
	g, err := graph.Default()
	require.NoError(t, err)

	f, err := g.SuffixForm("Dat_Noun", "+yA")
	require.NoError(t, err)
	assert.Equal(t, "Dat", f.Suffix.PrettyName)

	_, err = g.SuffixForm("Dat_Noun", "+yI")
	assert.ErrorIs(t, err, domain.ErrUnknownSuffixForm)

	_, err = g.Suffix("Nope")
	assert.ErrorIs(t, err, domain.ErrUnknownSuffix)

	zero, err := g.Suffix("Adj_to_Noun_Zero_Transition")
	require.NoError(t, err)
	assert.Equal(t, domain.SuffixZero, zero.Kind)
	assert.Equal(t, "Zero", zero.PrettyName)

	free, err := g.Suffix("Noun_Free_Transition_1")
	require.NoError(t, err)
	assert.True(t, free.IsFree())

	assert.Contains(t, g.Forms(), "+yA")
	assert.Contains(t, g.Forms(), "'")
	assert.NotContains(t, g.Forms(), "")
}

func TestEdgesAreWired(t *testing.T) {
	g, err := graph.Default()
	require.NoError(t, err)

	verbRoot, err := g.State("VERB_ROOT")
	require.NoError(t, err)
	pos, err := g.Suffix("Pos")
	require.NoError(t, err)
	withPolarity, err := g.State("VERB_WITH_POLARITY")
	require.NoError(t, err)
	assert.True(t, verbRoot.HasEdge(pos, withPolarity))

	properRoot, err := g.State("PROPER_NOUN_ROOT")
	require.NoError(t, err)
	apos, err := g.Suffix("Apos_Proper_Noun")
	require.NoError(t, err)
	nounRoot, err := g.State("NOUN_ROOT")
	require.NoError(t, err)
	assert.True(t, properRoot.HasEdge(apos, nounRoot))

	// personal pronoun agreements only exist through predefined paths
	var formless []string
	for _, s := range g.Suffixes() {
		if len(s.Forms()) == 0 {
			formless = append(formless, s.Name)
		}
	}
	assert.ElementsMatch(t, []string{"A1Sg_Pron", "A2Sg_Pron", "A1Pl_Pron", "A2Pl_Pron"}, formless)
}

func TestNew_Errors(t *testing.T) {
	dup := func(b *graph.Builder) error {
		b.State("X", domain.Transfer, domain.PosNoun, domain.SecNone)
		b.State("X", domain.Transfer, domain.PosNoun, domain.SecNone)
		return nil
	}
	_, err := graph.New("dup", dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	_, err = graph.New("orphan", graph.ProperNoun)
	assert.ErrorIs(t, err, domain.ErrUnknownState)

	badForm := func(b *graph.Builder) error {
		b.Suffix("Bad", "", "", false).AddForm("l+Ar", nil, nil, nil)
		return nil
	}
	_, err = graph.New("bad", badForm)
	assert.Error(t, err)

	_, err = graph.ByName("nope")
	assert.Error(t, err)
}

func TestNumeral_RootStates(t *testing.T) {
	g, err := graph.Default()
	require.NoError(t, err)

	tests := []struct {
		root *domain.Root
		want string
	}{
		{root("üç", domain.PosNumeral, domain.SecCardinal), "NUMERAL_CARDINAL_ROOT"},
		{root("üçüncü", domain.PosNumeral, domain.SecOrdinal), "NUMERAL_ORDINAL_ROOT"},
		{root("3", domain.PosNumeral, domain.SecDigitsCardinal), "NUMERAL_DIGIT_CARDINAL_ROOT"},
		{root("3-5", domain.PosNumeral, domain.SecRange), "NUMERAL_DIGIT_CARDINAL_ROOT"},
		{root("3.", domain.PosNumeral, domain.SecDigitsOrdinal), "NUMERAL_DIGIT_ORDINAL_ROOT"},
	}
	for _, tt := range tests {
		s, err := g.DefaultStateForRoot(tt.root)
		require.NoError(t, err, tt.root.String())
		assert.Equal(t, tt.want, s.Name)
	}

	_, err = g.DefaultStateForRoot(root("%3", domain.PosNumeral, domain.SecPercentage))
	assert.ErrorIs(t, err, domain.ErrMissingDefaultState)

	// the copula is opt-in
	s, err := g.DefaultStateForRoot(root("değil", domain.PosVerb, domain.SecNone))
	require.NoError(t, err)
	assert.Equal(t, "VERB_ROOT", s.Name)
	assert.Empty(t, g.DeclaredRootStates())
	_, err = g.State("NOUN_COPULA")
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestCopula_RootStates(t *testing.T) {
	g, err := graph.ByName(graph.FullName)
	require.NoError(t, err)

	s, err := g.DefaultStateForRoot(root("değil", domain.PosVerb, domain.SecNone))
	require.NoError(t, err)
	assert.Equal(t, "VERB_DEGIL_ROOT", s.Name)

	capital := root("Değil", domain.PosVerb, domain.SecNone)
	capital.Origin = root("değil", domain.PosVerb, domain.SecNone)
	s, err = g.DefaultStateForRoot(capital)
	require.NoError(t, err)
	assert.Equal(t, "VERB_DEGIL_ROOT", s.Name)

	s, err = g.DefaultStateForRoot(root("değil", domain.PosConjunction, domain.SecNone))
	require.NoError(t, err)
	assert.Equal(t, "CONJUNCTION_ROOT_TERMINAL", s.Name)

	s, err = g.DefaultStateForRoot(root("yap", domain.PosVerb, domain.SecNone))
	require.NoError(t, err)
	assert.Equal(t, "VERB_ROOT", s.Name)

	require.Len(t, g.DeclaredRootStates(), 1)
	assert.Equal(t, "VERB_DEGIL_ROOT", g.DeclaredRootStates()[0].Name)
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", graph.DefaultName},
		{"default", graph.DefaultName},
		{"full", graph.FullName},
		{graph.BasicName, graph.BasicName},
		{graph.ProperNounName, graph.ProperNounName},
		{graph.DefaultName, graph.DefaultName},
		{graph.FullName, graph.FullName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, graph.Known(tt.name))
			g, err := graph.ByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Name())
		})
	}

	assert.False(t, graph.Known("basic+copula"))
	assert.Equal(t, []string{graph.BasicName, graph.ProperNounName, graph.DefaultName, graph.FullName}, graph.Names())
}

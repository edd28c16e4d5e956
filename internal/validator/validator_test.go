package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/graph"
)

func TestValidateGraph_BuiltIn(t *testing.T) {
	for _, name := range graph.Names() {
		t.Run(name, func(t *testing.T) {
			g, err := graph.ByName(name)
			require.NoError(t, err)

			report := ValidateGraph(g, PredefinedOnly...)
			assert.NoError(t, report.Err())
			assert.Contains(t, report.RootStates, "NOUN_ROOT")
			assert.Contains(t, report.RootStates, "VERB_ROOT")
			assert.Equal(t, len(g.States()), report.States)
		})
	}

	g, err := graph.Default()
	require.NoError(t, err)
	err = ValidateGraph(g).Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formless suffix: 'A1Sg_Pron'")
}

func TestValidateGraph_DeclaredRootStates(t *testing.T) {
	g, err := graph.ByName(graph.FullName)
	require.NoError(t, err)

	report := ValidateGraph(g, PredefinedOnly...)
	require.NoError(t, report.Err())
	assert.Contains(t, report.RootStates, "VERB_DEGIL_ROOT")
	assert.Contains(t, report.RootStates, "NUMERAL_DIGIT_CARDINAL_ROOT")
}

func TestValidateGraph_Broken(t *testing.T) {
	broken := func(b *graph.Builder) error {
		root := b.State("ROOT", domain.Transfer, domain.PosNoun, domain.SecNone)
		stuck := b.State("STUCK", domain.Transfer, domain.PosNoun, domain.SecNone)
		end := b.State("END", domain.Terminal, domain.PosNoun, domain.SecNone)

		toEnd := b.Suffix("To_End", "", "End", false)
		toEnd.AddForm("lAr", nil, nil, nil)
		toStuck := b.Suffix("To_Stuck", "", "Stuck", false)
		toStuck.AddForm("+yA", nil, nil, nil)
		b.Suffix("Unused", "", "Unused", false)
		empty := b.Suffix("Empty", "", "Empty", false)

		b.Connect(root, toEnd, end)
		b.Connect(root, toStuck, stuck)
		b.Connect(end, empty, end)
		b.State("ORPHAN", domain.Terminal, domain.PosNoun, domain.SecNone)
		b.RootStates(func(*domain.Root) *domain.State { return root })
		return nil
	}
	g, err := graph.New("broken", broken)
	require.NoError(t, err)

	report := ValidateGraph(g)
	assert.Equal(t, []string{"ROOT"}, report.RootStates)
	assert.ElementsMatch(t, []string{
		"dead end: state 'STUCK' cannot reach a terminal state",
		"unreachable: state 'ORPHAN' is not reached from any root state",
		"unused suffix: 'Unused' labels no edge",
		"formless suffix: 'Unused' has no forms",
		"formless suffix: 'Empty' has no forms",
	}, report.Errors)
	assert.ErrorContains(t, report.Err(), "found 5 errors")
}

func TestValidateGraph_NoRoots(t *testing.T) {
	g, err := graph.New("empty", func(b *graph.Builder) error {
		b.State("END", domain.Terminal, domain.PosNoun, domain.SecNone)
		return nil
	})
	require.NoError(t, err)

	report := ValidateGraph(g)
	assert.Empty(t, report.RootStates)
	assert.Contains(t, report.Errors, "no root state: no category maps to a state")
}

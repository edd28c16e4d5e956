package runtime_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk/internal/runtime"
	"github.com/aretw0/trnltk/pkg/domain"
)

func TestParser_Scenarios(t *testing.T) {
	f := newFixture(t)
	finder := mapFinder{}.add(
		noun("sokak"), noun("kapı"), noun("ev"),
		verb("yap"), adjective("kırmızı"),
	)
	p := f.parser(t, finder)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "bare noun",
			input: "sokak",
			want:  []string{"sokak(sokak)+Noun+A3sg+Pnon+Nom"},
		},
		{
			name:  "dative with buffer consonant",
			input: "kapıya",
			want:  []string{"kapı(kapı)+Noun+A3sg+Pnon+Dat(+yA[ya])"},
		},
		{
			name:  "progressive",
			input: "yapıyor",
			want:  []string{"yap(yapmak)+Verb+Pos+Prog(Iyor[ıyor])+A3sg"},
		},
		{
			name:  "past with devoiced d",
			input: "yaptım",
			want:  []string{"yap(yapmak)+Verb+Pos+Past(dI[tı])+A1sg(+Im[m])"},
		},
		{
			name:  "ambiguous",
			input: "evi",
			want: []string{
				"ev(ev)+Noun+A3sg+P3sg(+sI[i])+Nom",
				"ev(ev)+Noun+A3sg+Pnon+Acc(+yI[i])",
			},
		},
		{
			name:  "unknown word",
			input: "xyz",
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := p.Parse(context.Background(), tt.input)
			require.NoError(t, err)
			require.NotNil(t, results)
			assert.ElementsMatch(t, tt.want, formatted(results))
		})
	}
}

func TestParser_AdjectiveZeroDerivation(t *testing.T) {
	f := newFixture(t)
	p := f.parser(t, mapFinder{}.add(adjective("kırmızı")))

	results, err := p.Parse(context.Background(), "kırmızılık")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "kırmızı+Adj+Noun+Ness+A3sg+Pnon+Nom", domain.Format(results[0]))

	results, err = p.Parse(context.Background(), "kırmızı")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "kırmızı+Adj", domain.Format(results[0]))
}

func TestParser_MissingDefaultState(t *testing.T) {
	f := newFixture(t)
	p := f.parser(t, mapFinder{}.add(newRoot("üç", "üç", "üç", domain.PosNumeral)))

	_, err := p.Parse(context.Background(), "üç")
	assert.ErrorIs(t, err, domain.ErrMissingDefaultState)
}

func TestParser_Properties(t *testing.T) {
	f := newFixture(t)
	finder := mapFinder{}.add(noun("ev"), noun("kitap"), verb("gel"), adjective("güzel"))
	p := f.parser(t, finder)

	for _, input := range []string{"evi", "evlerimizden", "geldim", "güzellik", "güzelleşti", "kitapçı"} {
		t.Run(input, func(t *testing.T) {
			results, err := p.Parse(context.Background(), input)
			require.NoError(t, err)
			require.NotEmpty(t, results)

			for _, r := range results {
				assert.True(t, r.IsResult())

				var surface strings.Builder
				surface.WriteString(r.Root().Sequence)
				for _, tr := range r.Transitions() {
					surface.WriteString(tr.Application.Actual)
					assert.True(t, tr.Source.HasEdge(tr.Suffix(), tr.Target), "no edge for %s", tr)
				}
				assert.Equal(t, input, surface.String(), "total coverage of %s", domain.Format(r))
				assertGroupsExclusive(t, r)
			}

			again, err := p.Parse(context.Background(), input)
			require.NoError(t, err)
			assert.Equal(t, formatted(results), formatted(again))
		})
	}
}

func assertGroupsExclusive(t *testing.T, c *domain.Container) {
	t.Helper()
	seen := map[domain.SuffixGroup]bool{}
	for _, tr := range c.Transitions() {
		if tr.IsDerivational() {
			seen = map[domain.SuffixGroup]bool{}
		}
		g := tr.Suffix().Group
		if g == "" {
			continue
		}
		assert.False(t, seen[g], "group %s repeated in %s", g, domain.Format(c))
		seen[g] = true
	}
}

func TestParser_MaxCandidates(t *testing.T) {
	f := newFixture(t)
	p := f.parser(t, mapFinder{}.add(noun("ev")), runtime.WithMaxCandidates(1))

	_, err := p.Parse(context.Background(), "evi")
	assert.ErrorIs(t, err, domain.ErrParseAborted)
}

func TestParser_Cancelled(t *testing.T) {
	f := newFixture(t)
	p := f.parser(t, mapFinder{}.add(noun("ev")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Parse(ctx, "evi")
	assert.ErrorIs(t, err, context.Canceled)
}

type stubPaths struct {
	paths map[*domain.Root][]*domain.Container
	err   error
}

func (s stubPaths) HasPaths(r *domain.Root) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.paths[r]
	return ok, nil
}

func (s stubPaths) Paths(r *domain.Root) ([]*domain.Container, error) {
	return s.paths[r], s.err
}

func TestParser_DropsRootsOffTheInput(t *testing.T) {
	f := newFixture(t)
	// A finder answering with a root that does not start the word must not
	// produce a result with an empty remaining surface.
	stray := newRoot("ve", "ve", "ve", domain.PosConjunction)
	p := f.parser(t, mapFinder{"g": {stray}})

	results, err := p.Parse(context.Background(), "gel")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestParser_PathProviderRespellsRoots(t *testing.T) {
	f := newFixture(t)
	ev := noun("ev")
	authored := domain.NewContainer(ev, f.state(t, "NOUN_ROOT"), "")
	authored = f.applier.TryForm(authored, f.form(t, "A3Sg_Noun", ""), f.state(t, "NOUN_WITH_AGREEMENT"), "evi")
	require.NotNil(t, authored)
	authored = f.applier.TryForm(authored, f.form(t, "P3Sg_Noun", "+sI"), f.state(t, "NOUN_WITH_POSSESSION"), "evi")
	require.NotNil(t, authored)

	capital := *ev
	capital.Sequence = "Ev"
	capital.Origin = ev
	p := f.parser(t, mapFinder{}.add(&capital), runtime.WithPathProvider(stubPaths{
		paths: map[*domain.Root][]*domain.Container{ev: {authored}},
	}))

	results, err := p.Parse(context.Background(), "Evi")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ev(ev)+Noun+A3sg+P3sg(+sI[i])+Nom"}, formatted(results))
}

func TestParser_PathProvider(t *testing.T) {
	f := newFixture(t)
	ev := noun("ev")

	// A single authored path replaces the generic traversal for its root.
	authored := domain.NewContainer(ev, f.state(t, "NOUN_ROOT"), "")
	authored = f.applier.TryForm(authored, f.form(t, "A3Sg_Noun", ""), f.state(t, "NOUN_WITH_AGREEMENT"), "evi")
	require.NotNil(t, authored)
	authored = f.applier.TryForm(authored, f.form(t, "P3Sg_Noun", "+sI"), f.state(t, "NOUN_WITH_POSSESSION"), "evi")
	require.NotNil(t, authored)

	p := f.parser(t, mapFinder{}.add(ev), runtime.WithPathProvider(stubPaths{
		paths: map[*domain.Root][]*domain.Container{ev: {authored}},
	}))

	results, err := p.Parse(context.Background(), "evi")
	require.NoError(t, err)
	assert.Equal(t, []string{"ev(ev)+Noun+A3sg+P3sg(+sI[i])+Nom"}, formatted(results))

	results, err = p.Parse(context.Background(), "evim")
	require.NoError(t, err)
	assert.Empty(t, results)

	p = f.parser(t, mapFinder{}.add(ev), runtime.WithPathProvider(stubPaths{err: domain.ErrPathsNotInitialized}))
	_, err = p.Parse(context.Background(), "evi")
	assert.ErrorIs(t, err, domain.ErrPathsNotInitialized)
}

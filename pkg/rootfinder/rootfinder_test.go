package rootfinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/lexicon"
	"github.com/aretw0/trnltk/pkg/rootfinder"
)

type fixedFinder struct {
	handles bool
	roots   []*domain.Root
	calls   int
}

func (f *fixedFinder) Handles(string, string) bool { return f.handles }

func (f *fixedFinder) FindRoots(string, string) []*domain.Root {
	f.calls++
	return f.roots
}

func root(seq string, pos domain.PrimaryPos) *domain.Root {
	return &domain.Root{Sequence: seq, Lexeme: &domain.Lexeme{Lemma: seq, LemmaRoot: seq, PrimaryPos: pos}}
}

func embedded(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	lx, err := lexicon.Embedded()
	require.NoError(t, err)
	return lx
}

func TestChain_Policies(t *testing.T) {
	a := &fixedFinder{handles: true, roots: []*domain.Root{root("a", domain.PosNoun)}}
	skipped := &fixedFinder{handles: false, roots: []*domain.Root{root("x", domain.PosNoun)}}
	b := &fixedFinder{handles: true, roots: []*domain.Root{root("b", domain.PosNoun)}}
	c := &fixedFinder{handles: true, roots: []*domain.Root{root("c", domain.PosNoun)}}

	t.Run("stop ends the chain", func(t *testing.T) {
		chain := rootfinder.NewChain().
			MustAdd(skipped, rootfinder.StopChainWhenHandled).
			MustAdd(a, rootfinder.StopChainWhenHandled).
			MustAdd(b, rootfinder.ContinueOnChain)
		roots := chain.FindRoots("a", "a")
		require.Len(t, roots, 1)
		assert.Equal(t, "a", roots[0].Sequence)
		assert.Zero(t, skipped.calls)
	})

	t.Run("continue collects from all", func(t *testing.T) {
		chain := rootfinder.NewChain().
			MustAdd(b, rootfinder.ContinueOnChain).
			MustAdd(c, rootfinder.ContinueOnChain)
		roots := chain.FindRoots("b", "bc")
		require.Len(t, roots, 2)
		assert.Equal(t, "b", roots[0].Sequence)
		assert.Equal(t, "c", roots[1].Sequence)
		assert.True(t, chain.Handles("b", "bc"))
		assert.Equal(t, 2, chain.Len())
	})

	t.Run("nothing handles", func(t *testing.T) {
		chain := rootfinder.NewChain().MustAdd(skipped, rootfinder.ContinueOnChain)
		assert.Empty(t, chain.FindRoots("x", "x"))
		assert.False(t, chain.Handles("x", "x"))
	})
}

func TestChain_Registration(t *testing.T) {
	chain := rootfinder.NewChain()
	require.NoError(t, chain.Add(&fixedFinder{}, rootfinder.ContinueOnChain))
	assert.Error(t, chain.Add(&fixedFinder{}, rootfinder.StopChainWhenHandled))
	assert.Error(t, chain.Add(nil, rootfinder.ContinueOnChain))
	assert.Error(t, chain.Add(&fixedFinder{}, rootfinder.Policy(7)))
	assert.Equal(t, 1, chain.Len())

	assert.Panics(t, func() {
		rootfinder.NewChain().
			MustAdd(&fixedFinder{}, rootfinder.ContinueOnChain).
			MustAdd(&fixedFinder{}, rootfinder.StopChainWhenHandled)
	})
	assert.Equal(t, "continue-on-chain", rootfinder.ContinueOnChain.String())
	assert.Equal(t, "stop-chain-when-handled", rootfinder.StopChainWhenHandled.String())
}

func TestDictionary(t *testing.T) {
	d := rootfinder.NewDictionary(embedded(t))

	assert.False(t, d.Handles("", "kitap"))
	assert.True(t, d.Handles("k", "kitap"))

	roots := d.FindRoots("kitab", "kitabı")
	require.Len(t, roots, 1)
	assert.Equal(t, "kitap", roots[0].Lexeme.Lemma)

	assert.Empty(t, d.FindRoots("kita", "kitap"))

	capitalised := d.FindRoots("Kitap", "Kitaplar")
	require.Len(t, capitalised, 1)
	assert.Equal(t, "Kitap", capitalised[0].Sequence)
	assert.Equal(t, "kitap", capitalised[0].Lexeme.LemmaRoot)
	require.NotNil(t, capitalised[0].Origin)
	assert.Equal(t, "kitap", capitalised[0].Origin.Sequence)
	assert.Same(t, capitalised[0].Origin, capitalised[0].Canonical())
	assert.Same(t, roots[0], roots[0].Canonical())

	// capitalised lemmas are found as written
	istanbul := d.FindRoots("İstanbul", "İstanbul")
	require.Len(t, istanbul, 1)
	assert.Equal(t, domain.SecProperNoun, istanbul[0].Lexeme.SecondaryPos)
}

func TestProperNounFromApostrophe(t *testing.T) {
	f := rootfinder.NewProperNounFromApostrophe(embedded(t))

	tests := []struct {
		partial string
		handles bool
	}{
		{"Bursa'", true},
		{"THY'", true},
		{"bursa'", false},
		{"Bursa", false},
		{"'", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.handles, f.Handles(tt.partial, tt.partial+"ya"), tt.partial)
	}

	roots := f.FindRoots("Bursa'", "Bursa'ya")
	require.Len(t, roots, 1)
	assert.Equal(t, "Bursa", roots[0].Sequence)
	assert.Equal(t, domain.SecProperNoun, roots[0].Lexeme.SecondaryPos)
	assert.True(t, roots[0].PhoneticAttributes.Has(domain.LastLetterVowel))

	abbr := f.FindRoots("THY'", "THY'ye")
	require.Len(t, abbr, 1)
	assert.Equal(t, "THY", abbr[0].Sequence)
	assert.Equal(t, domain.SecAbbreviation, abbr[0].Lexeme.SecondaryPos)
	assert.True(t, abbr[0].PhoneticAttributes.Has(domain.LastLetterVowel), "read as te-ha-ye")
	assert.True(t, abbr[0].PhoneticAttributes.Has(domain.LastVowelFrontal))

	assert.Empty(t, f.FindRoots("Ankara'", "Ankara'ya"), "dictionary proper nouns are not duplicated")
	assert.Len(t, rootfinder.NewProperNounFromApostrophe(nil).FindRoots("Ankara'", "Ankara'ya"), 1)
}

func TestProperNounWithoutApostrophe(t *testing.T) {
	f := rootfinder.NewProperNounWithoutApostrophe()

	assert.True(t, f.Handles("Bur", "Bursada"))
	assert.False(t, f.Handles("bur", "bursada"))
	assert.False(t, f.Handles("Bursa", "Bursa'da"))
	assert.False(t, f.Handles("", "Bursa"))

	roots := f.FindRoots("Bursa", "Bursada")
	require.Len(t, roots, 1)
	assert.Equal(t, domain.SecProperNoun, roots[0].Lexeme.SecondaryPos)

	abbr := f.FindRoots("NATO", "NATO")
	require.Len(t, abbr, 1)
	assert.Equal(t, domain.SecAbbreviation, abbr[0].Lexeme.SecondaryPos)

	partialCaps := f.FindRoots("NA", "NATO")
	assert.Equal(t, domain.SecProperNoun, partialCaps[0].Lexeme.SecondaryPos)
}

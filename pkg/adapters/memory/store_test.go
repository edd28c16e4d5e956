package memory_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk"
	"github.com/aretw0/trnltk/internal/testutils"
	"github.com/aretw0/trnltk/pkg/adapters/memory"
	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/ports"
)

var contractWords = []string{"kitaba", "evi", "geldim", "bana"}

func newAnalyzer(t *testing.T) *trnltk.Analyzer {
	t.Helper()
	return testutils.Analyzer(t)
}

func TestLRU_Contract(t *testing.T) {
	cache, err := memory.NewLRU(64)
	require.NoError(t, err)
	ports.RunParseCacheContract(t, cache, newAnalyzer(t), contractWords...)
}

func TestTwoLevel_Contract(t *testing.T) {
	l1, err := memory.NewLRU(64)
	require.NoError(t, err)
	cache := memory.NewTwoLevel(l1, memory.NewOffline([]string{"okul"}))
	ports.RunParseCacheContract(t, cache, newAnalyzer(t), contractWords...)
}

func TestLRU_Eviction(t *testing.T) {
	ctx := context.Background()
	cache, err := memory.NewLRU(2)
	require.NoError(t, err)

	require.NoError(t, cache.Put(ctx, "a", []*domain.Container{}))
	require.NoError(t, cache.Put(ctx, "b", []*domain.Container{}))
	_, ok, _ := cache.Get(ctx, "a")
	require.True(t, ok)
	require.NoError(t, cache.Put(ctx, "c", []*domain.Container{}))

	_, ok, _ = cache.Get(ctx, "b")
	assert.False(t, ok, "least recently used entry is evicted")
	_, ok, _ = cache.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, 2, cache.Len())

	defaulted, err := memory.NewLRU(0)
	require.NoError(t, err)
	assert.Zero(t, defaulted.Len())
}

func TestLRU_ResultsAreCopied(t *testing.T) {
	ctx := context.Background()
	analyzer := newAnalyzer(t)
	cache, err := memory.NewLRU(4)
	require.NoError(t, err)

	results, err := analyzer.ParseStr(ctx, "evi")
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.NoError(t, cache.Put(ctx, "evi", results))

	results[0] = nil
	got, ok, err := cache.Get(ctx, "evi")
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotNil(t, got[0])

	got[1] = nil
	again, _, _ := cache.Get(ctx, "evi")
	assert.NotNil(t, again[1])
}

func TestOffline(t *testing.T) {
	ctx := context.Background()
	analyzer := newAnalyzer(t)
	cache := memory.NewOffline([]string{"evi", "kitaba", "evi", "xqzw"})

	_, ok, err := cache.Get(ctx, "evi")
	require.NoError(t, err)
	assert.False(t, ok, "nothing is served before Build")

	require.NoError(t, cache.Build(ctx, analyzer))
	assert.Equal(t, 3, cache.Len())

	got, ok, err := cache.Get(ctx, "kitaba")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, formatted(got), "kitap+Noun+A3sg+Pnon+Dat")

	empty, ok, err := cache.Get(ctx, "xqzw")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, empty)

	require.NoError(t, cache.Put(ctx, "okul", got))
	_, ok, _ = cache.Get(ctx, "okul")
	assert.False(t, ok, "writes are ignored")
}

func TestOffline_BuildError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cache := memory.NewOffline([]string{"evlerimizden"})
	assert.ErrorIs(t, cache.Build(ctx, newAnalyzer(t)), context.Canceled)
}

func TestTwoLevel_Promotion(t *testing.T) {
	ctx := context.Background()
	l1, err := memory.NewLRU(4)
	require.NoError(t, err)
	l2 := memory.NewOffline([]string{"evi"})
	cache := memory.NewTwoLevel(l1, l2)
	require.NoError(t, cache.Build(ctx, newAnalyzer(t)))

	assert.Zero(t, l1.Len())
	_, ok, err := cache.Get(ctx, "evi")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, l1.Len())

	_, ok, err = cache.Get(ctx, "kitaba")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadWords(t *testing.T) {
	input := "# frequent words\nev\n\n  kitap  \n#skip\ngel\n"
	words, err := memory.ReadWords(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"ev", "kitap", "gel"}, words)
}

func formatted(results []*domain.Container) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = domain.Format(r)
	}
	return out
}

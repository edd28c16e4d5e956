package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk/pkg/domain"
)

// RunParseCacheContract runs a suite of tests to verify that a writable
// ParseCache implementation adheres to the interface contract. parser
// produces the analyses stored during the suite; words should have at least
// one analysis each.
func RunParseCacheContract(t *testing.T, cache ParseCache, parser MorphologicParser, words ...string) {
	t.Helper()
	require.NotEmpty(t, words, "contract needs at least one word")
	ctx := context.Background()
	suffix := time.Now().Format("20060102150405")

	parse := func(t *testing.T, word string) []*domain.Container {
		results, err := parser.ParseStr(ctx, word)
		require.NoError(t, err)
		require.NotEmpty(t, results, "word %q has no analyses", word)
		return results
	}

	require.NoError(t, cache.Build(ctx, parser), "Build should not return error")

	t.Run("Get Missing", func(t *testing.T) {
		results, ok, err := cache.Get(ctx, "missing-"+suffix)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, results)
	})

	t.Run("Put and Get", func(t *testing.T) {
		word := words[0]
		want := parse(t, word)
		require.NoError(t, cache.Put(ctx, word, want), "Put should not return error")

		got, ok, err := cache.Get(ctx, word)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, formatAll(want), formatAll(got))
		assert.Equal(t, formatAllPlain(want), formatAllPlain(got))
	})

	t.Run("Empty Result Is Cached", func(t *testing.T) {
		word := "nothing-" + suffix
		require.NoError(t, cache.Put(ctx, word, []*domain.Container{}))

		got, ok, err := cache.Get(ctx, word)
		require.NoError(t, err)
		assert.True(t, ok, "an empty analysis list is a cached value")
		assert.Empty(t, got)
	})

	t.Run("PutAll", func(t *testing.T) {
		entries := make(map[string][]*domain.Container, len(words))
		for _, w := range words {
			entries[w] = parse(t, w)
		}
		require.NoError(t, cache.PutAll(ctx, entries))

		for w, want := range entries {
			got, ok, err := cache.Get(ctx, w)
			require.NoError(t, err)
			require.True(t, ok, w)
			assert.Equal(t, formatAll(want), formatAll(got), w)
		}
	})

	t.Run("Last Write Wins", func(t *testing.T) {
		word := "overwrite-" + suffix
		require.NoError(t, cache.Put(ctx, word, parse(t, words[0])))
		require.NoError(t, cache.Put(ctx, word, []*domain.Container{}))

		got, ok, err := cache.Get(ctx, word)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Empty(t, got)
	})

	t.Run("Concurrent Access", func(t *testing.T) {
		want := parse(t, words[0])
		done := make(chan error, 8)
		for i := 0; i < cap(done); i++ {
			go func() {
				if err := cache.Put(ctx, words[0], want); err != nil {
					done <- err
					return
				}
				_, _, err := cache.Get(ctx, words[0])
				done <- err
			}()
		}
		for i := 0; i < cap(done); i++ {
			assert.NoError(t, <-done)
		}
	})
}

func formatAll(results []*domain.Container) []string {
	out := make([]string, len(results))
	for i, c := range results {
		out[i] = domain.FormatWithForms(c)
	}
	return out
}

func formatAllPlain(results []*domain.Container) []string {
	out := make([]string, len(results))
	for i, c := range results {
		out[i] = domain.Format(c)
	}
	return out
}

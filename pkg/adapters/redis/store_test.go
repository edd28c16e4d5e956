package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk"
	"github.com/aretw0/trnltk/internal/testutils"
	"github.com/aretw0/trnltk/pkg/adapters/redis"
	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/ports"
)

func setup(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *redis.Cache, *trnltk.Analyzer) {
	t.Helper()
	mr, client := testutils.Redis(t)
	analyzer := testutils.Analyzer(t)
	cache := redis.NewFromClient(client, analyzer.Graph(), opts...)
	t.Cleanup(func() { _ = cache.Close() })
	return mr, cache, analyzer
}

func TestCache_Contract(t *testing.T) {
	_, cache, analyzer := setup(t)
	// "bana" runs through a predefined path with literal forms.
	ports.RunParseCacheContract(t, cache, analyzer, "kitaba", "evlerimizden", "bana", "Ankara'ya")
}

func TestCache_RoundTripKeepsAttributes(t *testing.T) {
	ctx := context.Background()
	_, cache, analyzer := setup(t)

	want, err := analyzer.ParseStr(ctx, "kitabı")
	require.NoError(t, err)
	require.NotEmpty(t, want)
	require.NoError(t, cache.Put(ctx, "kitabı", want))

	got, ok, err := cache.Get(ctx, "kitabı")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Root().Key(), got[i].Root().Key())
		assert.Equal(t, want[i].LastState().Name, got[i].LastState().Name)
		assert.Equal(t, want[i].PhoneticAttributes(), got[i].PhoneticAttributes())
		assert.Equal(t, want[i].SurfaceSoFar(), got[i].SurfaceSoFar())
		assert.Equal(t, domain.FormatDerivations(want[i]), domain.FormatDerivations(got[i]))
	}
}

func TestCache_PrefixAndTTL(t *testing.T) {
	ctx := context.Background()
	mr, cache, _ := setup(t, redis.WithPrefix("test:"), redis.WithTTL(time.Minute))

	require.NoError(t, cache.Put(ctx, "ev", []*domain.Container{}))
	assert.True(t, mr.Exists("test:ev"))
	assert.Equal(t, time.Minute, mr.TTL("test:ev"))

	mr.FastForward(2 * time.Minute)
	_, ok, err := cache.Get(ctx, "ev")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_CorruptValue(t *testing.T) {
	mr, cache, _ := setup(t)
	require.NoError(t, mr.Set("trnltk:parse:ev", "not msgpack"))

	_, _, err := cache.Get(context.Background(), "ev")
	assert.Error(t, err)
}

func TestCache_UnknownState(t *testing.T) {
	ctx := context.Background()
	mr, cache, analyzer := setup(t)
	results, err := analyzer.ParseStr(ctx, "Ankara'ya")
	require.NoError(t, err)
	require.NoError(t, cache.Put(ctx, "Ankara'ya", results))

	basic, err := trnltk.New(trnltk.WithGraphName("basic"))
	require.NoError(t, err)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	reader := redis.NewFromClient(client, basic.Graph())

	_, _, err = reader.Get(ctx, "Ankara'ya")
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestCache_Warm(t *testing.T) {
	ctx := context.Background()
	mr, cache, analyzer := setup(t, redis.WithWarmWords([]string{"evi", "kitaba", "evi"}))

	require.NoError(t, cache.Build(ctx, analyzer))
	assert.True(t, mr.Exists("trnltk:parse:evi"))
	assert.True(t, mr.Exists("trnltk:parse:kitaba"))
	assert.False(t, mr.Exists("trnltk:parse:lock:warm"), "lock is released")

	got, ok, err := cache.Get(ctx, "kitaba")
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, got)

	require.NoError(t, cache.Put(ctx, "evi", []*domain.Container{}))
	require.NoError(t, cache.Build(ctx, analyzer))
	got, _, err = cache.Get(ctx, "evi")
	require.NoError(t, err)
	assert.Empty(t, got, "cached words are not parsed again")
}

package observability_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/observability"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	hooks := m.Hooks()
	ctx := context.Background()
	hooks.EmitParse(ctx, &domain.ParseEvent{Word: "kitap", Results: 1, Duration: time.Millisecond})
	hooks.EmitParse(ctx, &domain.ParseEvent{Word: "xyz"})
	hooks.EmitParse(ctx, &domain.ParseEvent{Word: "boom", Err: errors.New("boom")})
	hooks.EmitCacheLookup(ctx, &domain.CacheEvent{Word: "kitap", Hit: true})
	hooks.EmitCacheLookup(ctx, &domain.CacheEvent{Word: "xyz"})
	hooks.EmitCacheLookup(ctx, &domain.CacheEvent{Word: "xyz"})

	expected := `
# HELP trnltk_cache_lookups_total Total number of parse cache lookups by result
# TYPE trnltk_cache_lookups_total counter
trnltk_cache_lookups_total{result="hit"} 1
trnltk_cache_lookups_total{result="miss"} 2
# HELP trnltk_parses_total Total number of parsed words by outcome
# TYPE trnltk_parses_total counter
trnltk_parses_total{outcome="error"} 1
trnltk_parses_total{outcome="parsed"} 1
trnltk_parses_total{outcome="unknown"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"trnltk_cache_lookups_total", "trnltk_parses_total"))
	count, err := testutil.GatherAndCount(reg, "trnltk_parses_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}

func TestHooks_Merge(t *testing.T) {
	var order []string
	a := domain.LifecycleHooks{OnParse: func(context.Context, *domain.ParseEvent) { order = append(order, "a") }}
	b := domain.LifecycleHooks{OnParse: func(context.Context, *domain.ParseEvent) { order = append(order, "b") }}

	e := &domain.ParseEvent{Word: "ev"}
	a.Merge(b).EmitParse(context.Background(), e)
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, domain.EventParse, e.Type)

	// nil callbacks are skipped
	domain.LifecycleHooks{}.EmitCacheLookup(context.Background(), &domain.CacheEvent{})
}

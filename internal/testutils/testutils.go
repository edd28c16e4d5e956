// Package testutils holds fixtures shared by the package tests.
package testutils

import (
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk"
)

var (
	defaultOnce     sync.Once
	defaultAnalyzer *trnltk.Analyzer
	defaultErr      error
)

// Analyzer returns an analyzer over the default graph and the embedded
// lexicon. Without options the same instance is shared by every caller,
// since building the lexicon and the predefined paths is the slow part.
// It fails the test immediately on error.
func Analyzer(t testing.TB, opts ...trnltk.Option) *trnltk.Analyzer {
	t.Helper()
	if len(opts) > 0 {
		a, err := trnltk.New(opts...)
		require.NoError(t, err, "failed to build analyzer")
		return a
	}
	defaultOnce.Do(func() {
		defaultAnalyzer, defaultErr = trnltk.New()
	})
	require.NoError(t, defaultErr, "failed to build analyzer")
	return defaultAnalyzer
}

// Redis starts an in-memory Redis for the test and returns it with a
// connected client. Both are closed on cleanup.
func Redis(t testing.TB) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

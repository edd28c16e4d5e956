package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk/internal/config"
	"github.com/aretw0/trnltk/internal/logging"
	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/parser"
)

func writeWords(t *testing.T, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# warm list\n"+strings.Join(words, "\n")+"\n"), 0o644))
	return path
}

func TestNewRuntime_CacheKinds(t *testing.T) {
	ctx := context.Background()
	words := writeWords(t, "kitaba", "evi")

	tests := []struct {
		name    string
		kind    string
		caching bool
	}{
		{"none", config.CacheNone, false},
		{"lru", config.CacheLRU, true},
		{"offline", config.CacheOffline, true},
		{"twolevel", config.CacheTwoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Cache.Kind = tt.kind
			cfg.Cache.Words = words

			rt, err := NewRuntime(ctx, cfg, logging.NewNop(), domain.LifecycleHooks{})
			require.NoError(t, err)
			defer rt.Close()

			_, isCaching := rt.Parser.(*parser.Caching)
			assert.Equal(t, tt.caching, isCaching)

			results, err := rt.Parser.ParseStr(ctx, "kitaba")
			require.NoError(t, err)
			assert.NotEmpty(t, results)
		})
	}
}

func TestNewRuntime_Redis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.Cache.Kind = config.CacheRedis
	cfg.Cache.Words = writeWords(t, "kitaba", "geldim")
	cfg.Cache.Redis.Addr = mr.Addr()
	cfg.Cache.Redis.TTL = time.Hour

	var lookups, hits int
	hooks := domain.LifecycleHooks{OnCacheLookup: func(_ context.Context, e *domain.CacheEvent) {
		lookups++
		if e.Hit {
			hits++
		}
	}}
	rt, err := NewRuntime(ctx, cfg, logging.NewNop(), hooks)
	require.NoError(t, err)
	defer rt.Close()

	assert.True(t, mr.Exists(cfg.Cache.Redis.Prefix+"kitaba"))
	assert.True(t, mr.Exists(cfg.Cache.Redis.Prefix+"geldim"))

	results, err := rt.Parser.ParseStr(ctx, "kitaba")
	require.NoError(t, err)
	assert.NotEmpty(t, results)
	assert.Equal(t, 1, lookups)
	assert.Equal(t, 1, hits)
}

func TestNewRuntime_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown graph", func(t *testing.T) {
		cfg := config.Default()
		cfg.Graph = "nope"
		_, err := NewRuntime(ctx, cfg, logging.NewNop(), domain.LifecycleHooks{})
		assert.Error(t, err)
	})

	t.Run("missing word list", func(t *testing.T) {
		cfg := config.Default()
		cfg.Cache.Kind = config.CacheOffline
		cfg.Cache.Words = filepath.Join(t.TempDir(), "missing.txt")
		_, err := NewRuntime(ctx, cfg, logging.NewNop(), domain.LifecycleHooks{})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown cache kind", func(t *testing.T) {
		cfg := config.Default()
		cfg.Cache.Kind = "disk"
		_, err := NewRuntime(ctx, cfg, logging.NewNop(), domain.LifecycleHooks{})
		assert.ErrorContains(t, err, "disk")
	})
}

func TestAnalyzerOptions(t *testing.T) {
	cfg := config.Default()
	assert.Len(t, AnalyzerOptions(cfg, logging.NewNop(), domain.LifecycleHooks{}), 5)

	cfg.Lexicon.Path = "extra.dict"
	cfg.Lexicon.Embedded = false
	cfg.Lexicon.Circumflex = true
	cfg.Parser.GuessProper = true
	cfg.Parser.BruteForceNouns = true
	assert.Len(t, AnalyzerOptions(cfg, logging.NewNop(), domain.LifecycleHooks{}), 10)
}

func newSessionParser(t *testing.T) Parser {
	t.Helper()
	cfg := config.Default()
	cfg.Cache.Kind = config.CacheNone
	rt, err := NewRuntime(context.Background(), cfg, logging.NewNop(), domain.LifecycleHooks{})
	require.NoError(t, err)
	return rt.Parser
}

func TestSession_Text(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(newSessionParser(t), &out, SessionOptions{})

	require.NoError(t, s.ParseWords(context.Background(), []string{"kitaba", "xqzw"}))
	text := out.String()
	assert.Contains(t, text, "kitap")
	assert.Contains(t, text, "Dat")
	assert.Contains(t, text, "no analysis")
	assert.Less(t, strings.Index(text, "kitaba"), strings.Index(text, "xqzw"))
}

func TestSession_JSON(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(newSessionParser(t), &out, SessionOptions{JSON: true})

	require.NoError(t, s.Run(context.Background(), strings.NewReader("kitaba evi\n\nxqzw\n")))

	dec := json.NewDecoder(&out)
	var got []Result
	for {
		var r Result
		if err := dec.Decode(&r); err == io.EOF {
			break
		} else {
			require.NoError(t, err)
		}
		got = append(got, r)
	}
	require.Len(t, got, 3)
	assert.Equal(t, "kitaba", got[0].Word)
	assert.NotEmpty(t, got[0].Analyses)
	assert.Equal(t, "evi", got[1].Word)
	assert.Equal(t, "xqzw", got[2].Word)
	assert.Empty(t, got[2].Analyses)
}

func TestSession_Quit(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(newSessionParser(t), &out, SessionOptions{Prompt: "> "})

	require.NoError(t, s.Run(context.Background(), strings.NewReader("ev\nquit\nkitaba\n")))
	assert.Contains(t, out.String(), "> ")
	assert.NotContains(t, out.String(), "kitaba")
}

func TestSession_Cancelled(t *testing.T) {
	s := NewSession(newSessionParser(t), io.Discard, SessionOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr, pw := io.Pipe()
	defer pw.Close()
	assert.ErrorIs(t, s.Run(ctx, pr), context.Canceled)
}

func TestServe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, ln, handler, logging.NewNop()) }()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

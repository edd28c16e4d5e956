package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk/internal/config"
	"github.com/aretw0/trnltk/pkg/graph"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, graph.DefaultName, cfg.Graph)
	assert.False(t, cfg.Parser.BruteForceNouns)
	assert.True(t, cfg.Lexicon.Embedded)
	assert.Equal(t, 10000, cfg.Parser.MaxCandidates)
	assert.Equal(t, config.CacheLRU, cfg.Cache.Kind)
	assert.Equal(t, 8080, cfg.Server.Port)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "trnltk.yaml",
			content: `
graph: basic
parser:
  max_candidates: 500
cache:
  kind: redis
  redis:
    addr: redis:6379
    ttl: 10m
log:
  level: debug
`,
		},
		{
			name: "toml",
			file: "trnltk.toml",
			content: `
graph = "basic"

[parser]
max_candidates = 500

[cache]
kind = "redis"

[cache.redis]
addr = "redis:6379"
ttl = "10m"

[log]
level = "debug"
`,
		},
		{
			name: "json",
			file: "trnltk.json",
			content: `{
  "graph": "basic",
  "parser": {"max_candidates": 500},
  "cache": {"kind": "redis", "redis": {"addr": "redis:6379", "ttl": "10m"}},
  "log": {"level": "debug"}
}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(write(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, "basic", cfg.Graph)
			assert.Equal(t, 500, cfg.Parser.MaxCandidates)
			assert.Equal(t, config.CacheRedis, cfg.Cache.Kind)
			assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
			assert.Equal(t, 10*time.Minute, cfg.Cache.Redis.TTL)

			// untouched keys keep their defaults
			assert.Equal(t, "trnltk:parse:", cfg.Cache.Redis.Prefix)
			assert.True(t, cfg.Lexicon.Embedded)
			assert.Equal(t, 8080, cfg.Server.Port)

			level, err := cfg.LogLevel()
			require.NoError(t, err)
			assert.Equal(t, slog.LevelDebug, level)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "grpah: basic\n"},
		{"unknown cache kind", "cache:\n  kind: memcached\n"},
		{"offline without words", "cache:\n  kind: offline\n"},
		{"lexicon without source", "lexicon:\n  embedded: false\n"},
		{"bad log level", "log:\n  level: loud\n"},
		{"bad port", "server:\n  port: 70000\n"},
		{"bad yaml", "graph: [basic\n"},
		{"unknown graph", "graph: basic+everything\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(write(t, "trnltk.yaml", tt.content))
			assert.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_GraphAndBruteForce(t *testing.T) {
	cfg, err := config.Load(write(t, "trnltk.yaml", "graph: full\nparser:\n  brute_force_nouns: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "full", cfg.Graph)
	assert.True(t, cfg.Parser.BruteForceNouns)

	for _, name := range graph.Names() {
		cfg := config.Default()
		cfg.Graph = name
		assert.NoError(t, cfg.Validate(), name)
	}
}

// Package config loads the analyzer configuration from YAML, TOML or JSON.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/trnltk/pkg/graph"
)

// Cache kinds.
const (
	CacheNone     = "none"
	CacheLRU      = "lru"
	CacheOffline  = "offline"
	CacheTwoLevel = "twolevel"
	CacheRedis    = "redis"
)

type Config struct {
	Graph   string        `mapstructure:"graph"`
	Lexicon LexiconConfig `mapstructure:"lexicon"`
	Parser  ParserConfig  `mapstructure:"parser"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
}

type LexiconConfig struct {
	// Path is an optional dictionary file added to the lexicon.
	Path       string `mapstructure:"path"`
	Embedded   bool   `mapstructure:"embedded"`
	Circumflex bool   `mapstructure:"circumflex"`
}

type ParserConfig struct {
	MaxCandidates int  `mapstructure:"max_candidates"`
	Concurrency   int  `mapstructure:"concurrency"`
	GuessProper   bool `mapstructure:"guess_proper_nouns"`
	// BruteForceNouns reads any prefix of an unknown word as a noun root.
	BruteForceNouns bool `mapstructure:"brute_force_nouns"`
}

type CacheConfig struct {
	Kind string `mapstructure:"kind"`
	Size int    `mapstructure:"size"`
	// Words is a word list file parsed ahead of time by the offline cache
	// and the redis warm-up.
	Words string      `mapstructure:"words"`
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns a configuration that runs without any file.
func Default() Config {
	return Config{
		Graph:   graph.DefaultName,
		Lexicon: LexiconConfig{Embedded: true},
		Parser:  ParserConfig{MaxCandidates: 10000},
		Cache: CacheConfig{
			Kind:  CacheLRU,
			Size:  10000,
			Redis: RedisConfig{Addr: "localhost:6379", Prefix: "trnltk:parse:"},
		},
		Server: ServerConfig{Port: 8080},
		Log:    LogConfig{Level: "info"},
	}
}

// Load overlays the file at path on Default. The format is chosen by
// extension: .toml, .json, anything else is read as YAML.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Decode overlays raw on cfg. Durations may be given as strings ("10m").
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	if !graph.Known(c.Graph) {
		return fmt.Errorf("unknown graph %q (known: %s)", c.Graph, strings.Join(graph.Names(), ", "))
	}
	switch c.Cache.Kind {
	case CacheNone, CacheLRU, CacheTwoLevel, CacheRedis:
	case CacheOffline:
		if c.Cache.Words == "" {
			return fmt.Errorf("cache kind %q needs cache.words", c.Cache.Kind)
		}
	default:
		return fmt.Errorf("unknown cache kind %q", c.Cache.Kind)
	}
	if c.Cache.Kind == CacheTwoLevel && c.Cache.Words == "" {
		return fmt.Errorf("cache kind %q needs cache.words", c.Cache.Kind)
	}
	if !c.Lexicon.Embedded && c.Lexicon.Path == "" {
		return fmt.Errorf("lexicon.path is required when the embedded lexicon is disabled")
	}
	if c.Parser.MaxCandidates < 0 {
		return fmt.Errorf("parser.max_candidates must not be negative")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/trnltk"
	"github.com/aretw0/trnltk/internal/config"
	"github.com/aretw0/trnltk/pkg/adapters/memory"
	"github.com/aretw0/trnltk/pkg/adapters/redis"
	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/parser"
	"github.com/aretw0/trnltk/pkg/ports"
)

// Runtime is an analyzer together with the parser that fronts it.
type Runtime struct {
	Analyzer *trnltk.Analyzer
	// Parser is the analyzer itself, or a caching decorator around it.
	Parser ports.MorphologicParser

	closers []func() error
}

// Close releases the cache connections.
func (r *Runtime) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// AnalyzerOptions translates cfg into analyzer options.
func AnalyzerOptions(cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) []trnltk.Option {
	opts := []trnltk.Option{
		trnltk.WithLogger(logger),
		trnltk.WithGraphName(cfg.Graph),
		trnltk.WithMaxCandidates(cfg.Parser.MaxCandidates),
		trnltk.WithConcurrency(cfg.Parser.Concurrency),
		trnltk.WithLifecycleHooks(hooks),
	}
	if cfg.Lexicon.Path != "" {
		opts = append(opts, trnltk.WithDictionaryFile(cfg.Lexicon.Path))
	}
	if !cfg.Lexicon.Embedded {
		opts = append(opts, trnltk.WithoutEmbeddedLexicon())
	}
	if cfg.Lexicon.Circumflex {
		opts = append(opts, trnltk.WithCircumflexConversion())
	}
	if cfg.Parser.GuessProper {
		opts = append(opts, trnltk.WithProperNounGuessing())
	}
	if cfg.Parser.BruteForceNouns {
		opts = append(opts, trnltk.WithBruteForceNouns())
	}
	return opts
}

// NewRuntime builds the analyzer described by cfg and puts the configured
// cache in front of it.
func NewRuntime(ctx context.Context, cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*Runtime, error) {
	analyzer, err := trnltk.New(AnalyzerOptions(cfg, logger, hooks)...)
	if err != nil {
		return nil, fmt.Errorf("error initializing analyzer: %w", err)
	}
	rt := &Runtime{Analyzer: analyzer, Parser: analyzer}

	cache, err := rt.newCache(cfg.Cache, logger)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	if cache == nil {
		return rt, nil
	}

	caching, err := parser.New(ctx, analyzer, cache,
		parser.WithLogger(logger.With("cache", cfg.Cache.Kind)),
		parser.WithLifecycleHooks(hooks),
	)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	rt.Parser = caching
	logger.Debug("parse cache ready", "kind", cfg.Cache.Kind)
	return rt, nil
}

func (rt *Runtime) newCache(cfg config.CacheConfig, logger *slog.Logger) (ports.ParseCache, error) {
	switch cfg.Kind {
	case config.CacheNone, "":
		return nil, nil
	case config.CacheLRU:
		return memory.NewLRU(cfg.Size)
	case config.CacheOffline:
		words, err := readWordFile(cfg.Words)
		if err != nil {
			return nil, err
		}
		return memory.NewOffline(words), nil
	case config.CacheTwoLevel:
		words, err := readWordFile(cfg.Words)
		if err != nil {
			return nil, err
		}
		l1, err := memory.NewLRU(cfg.Size)
		if err != nil {
			return nil, err
		}
		return memory.NewTwoLevel(l1, memory.NewOffline(words)), nil
	case config.CacheRedis:
		opts := []redis.Option{
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
			redis.WithLogger(logger),
		}
		if cfg.Words != "" {
			words, err := readWordFile(cfg.Words)
			if err != nil {
				return nil, err
			}
			opts = append(opts, redis.WithWarmWords(words))
		}
		cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, rt.Analyzer.Graph(), opts...)
		rt.closers = append(rt.closers, cache.Close)
		return cache, nil
	}
	return nil, fmt.Errorf("unknown cache kind %q", cfg.Kind)
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	words, err := memory.ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return words, nil
}

// Package parser decorates a morphologic parser with a parse cache.
package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/ports"
)

// Caching answers raw words from a cache and falls back to the delegate on
// a miss. Only the string entry points are offered: a cache is keyed by the
// word as typed, so Parse and ParseAll on sequences return
// domain.ErrUnsupported.
//
// A failing cache never fails a parse. The error is logged and the word is
// parsed by the delegate.
type Caching struct {
	delegate ports.MorphologicParser
	cache    ports.ParseCache
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option configures a Caching parser.
type Option func(*Caching)

// WithLogger sets the logger used for cache failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Caching) {
		c.logger = logger
	}
}

// WithLifecycleHooks reports every cache lookup.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Caching) {
		c.hooks = hooks
	}
}

// New builds the cache against delegate and returns the decorated parser.
func New(ctx context.Context, delegate ports.MorphologicParser, cache ports.ParseCache, opts ...Option) (*Caching, error) {
	c := &Caching{
		delegate: delegate,
		cache:    cache,
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := cache.Build(ctx, delegate); err != nil {
		return nil, fmt.Errorf("failed to build parse cache: %w", err)
	}
	return c, nil
}

func (c *Caching) Parse(context.Context, domain.Sequence) ([]*domain.Container, error) {
	return nil, fmt.Errorf("caching parser Parse: %w", domain.ErrUnsupported)
}

func (c *Caching) ParseAll(context.Context, []domain.Sequence) ([][]*domain.Container, error) {
	return nil, fmt.Errorf("caching parser ParseAll: %w", domain.ErrUnsupported)
}

// ParseStr returns the cached analyses of word, parsing and storing them on
// a miss.
func (c *Caching) ParseStr(ctx context.Context, word string) ([]*domain.Container, error) {
	if results, ok := c.lookup(ctx, word); ok {
		return results, nil
	}
	results, err := c.delegate.ParseStr(ctx, word)
	if err != nil {
		return nil, err
	}
	results = nonNil(results)
	if err := c.cache.Put(ctx, word, results); err != nil {
		c.logger.Warn("failed to store parse results", "word", word, "err", err)
	}
	return results, nil
}

// ParseAllStr answers hits from the cache and parses the distinct misses in
// a single delegate batch, storing them with one PutAll.
func (c *Caching) ParseAllStr(ctx context.Context, words []string) ([][]*domain.Container, error) {
	out := make([][]*domain.Container, len(words))
	hits := make(map[string][]*domain.Container)
	pending := make(map[string][]int)
	var misses []string
	for i, w := range words {
		if idx, ok := pending[w]; ok {
			pending[w] = append(idx, i)
			continue
		}
		if results, ok := hits[w]; ok {
			out[i] = results
			continue
		}
		if results, ok := c.lookup(ctx, w); ok {
			hits[w] = results
			out[i] = results
			continue
		}
		pending[w] = []int{i}
		misses = append(misses, w)
	}
	if len(misses) == 0 {
		return out, nil
	}

	parsed, err := c.delegate.ParseAllStr(ctx, misses)
	if err != nil {
		return nil, err
	}
	fresh := make(map[string][]*domain.Container, len(misses))
	for i, w := range misses {
		parsed[i] = nonNil(parsed[i])
		fresh[w] = parsed[i]
		for _, j := range pending[w] {
			out[j] = parsed[i]
		}
	}
	if err := c.cache.PutAll(ctx, fresh); err != nil {
		c.logger.Warn("failed to store parse results", "words", len(fresh), "err", err)
	}
	return out, nil
}

// nonNil keeps "no analyses" distinguishable from a cache miss in stores
// that encode nil as absent.
func nonNil(results []*domain.Container) []*domain.Container {
	if results == nil {
		return []*domain.Container{}
	}
	return results
}

func (c *Caching) lookup(ctx context.Context, word string) ([]*domain.Container, bool) {
	results, ok, err := c.cache.Get(ctx, word)
	if err != nil {
		c.logger.Warn("parse cache lookup failed", "word", word, "err", err)
		ok = false
	}
	c.hooks.EmitCacheLookup(ctx, &domain.CacheEvent{
		EventBase: domain.EventBase{Timestamp: time.Now()},
		Word:      word,
		Hit:       ok,
	})
	return results, ok
}

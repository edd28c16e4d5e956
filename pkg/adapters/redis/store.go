// Package redis implements a shared parse cache on Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/ports"
)

const (
	defaultPrefix = "trnltk:parse:"
	warmLockTTL   = time.Minute
)

// Cache implements ports.ParseCache using Redis. Analyses are stored as
// msgpack records and rebuilt against the graph on read, so every reader
// must run the same graph as the writers.
type Cache struct {
	client *backend.Client
	graph  GraphLookup
	locker *Locker
	logger *slog.Logger

	prefix string
	ttl    time.Duration
	warm   []string
}

type Option func(*Cache)

// WithTTL sets the expiration of cached words. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// WithWarmWords makes Build parse and store words that are not cached yet.
// Concurrent builds against the same Redis are serialized with a lock.
func WithWarmWords(words []string) Option {
	return func(c *Cache) {
		c.warm = words
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// New connects to Redis at address.
func New(address, password string, db int, g GraphLookup, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, g, opts...)
}

// NewFromClient creates a cache from an existing client.
func NewFromClient(client *backend.Client, g GraphLookup, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		graph:  g,
		prefix: defaultPrefix,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.locker = NewLocker(client, c.prefix)
	return c
}

func (c *Cache) key(word string) string {
	return c.prefix + word
}

// Build warms the cache with the configured words.
func (c *Cache) Build(ctx context.Context, delegate ports.MorphologicParser) error {
	if len(c.warm) == 0 {
		return nil
	}
	unlock, err := c.locker.Lock(ctx, "warm", warmLockTTL)
	if err != nil {
		return err
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			c.logger.Warn("failed to release warm lock", "err", err)
		}
	}()

	missing, err := c.missing(ctx, c.warm)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}
	results, err := delegate.ParseAllStr(ctx, missing)
	if err != nil {
		return fmt.Errorf("failed to warm redis cache: %w", err)
	}
	entries := make(map[string][]*domain.Container, len(missing))
	for i, w := range missing {
		entries[w] = results[i]
	}
	c.logger.Info("warmed redis cache", "words", len(entries))
	return c.PutAll(ctx, entries)
}

func (c *Cache) missing(ctx context.Context, words []string) ([]string, error) {
	seen := make(map[string]bool, len(words))
	var unique []string
	for _, w := range words {
		if !seen[w] {
			seen[w] = true
			unique = append(unique, w)
		}
	}

	pipe := c.client.Pipeline()
	cmds := make([]*backend.IntCmd, len(unique))
	for i, w := range unique {
		cmds[i] = pipe.Exists(ctx, c.key(w))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to check redis keys: %w", err)
	}

	var missing []string
	for i, cmd := range cmds {
		if cmd.Val() == 0 {
			missing = append(missing, unique[i])
		}
	}
	return missing, nil
}

func (c *Cache) Get(ctx context.Context, word string) ([]*domain.Container, bool, error) {
	data, err := c.client.Get(ctx, c.key(word)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get from redis: %w", err)
	}
	results, err := decode(data, c.graph)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode %q: %w", word, err)
	}
	return results, true, nil
}

func (c *Cache) Put(ctx context.Context, word string, results []*domain.Container) error {
	data, err := encode(results)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", word, err)
	}
	if err := c.client.Set(ctx, c.key(word), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// PutAll writes every entry in one pipeline.
func (c *Cache) PutAll(ctx context.Context, entries map[string][]*domain.Container) error {
	if len(entries) == 0 {
		return nil
	}
	pipe := c.client.Pipeline()
	for word, results := range entries {
		data, err := encode(results)
		if err != nil {
			return fmt.Errorf("failed to encode %q: %w", word, err)
		}
		pipe.Set(ctx, c.key(word), data, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}

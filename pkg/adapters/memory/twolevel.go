package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/ports"
)

// TwoLevel reads through a fast first level to a second one. Hits on the
// second level are copied into the first; writes go to the first level only.
type TwoLevel struct {
	l1 ports.ParseCache
	l2 ports.ParseCache
}

// NewTwoLevel stacks l1 over l2. A typical setup is an LRU over an Offline
// cache of the most frequent words.
func NewTwoLevel(l1, l2 ports.ParseCache) *TwoLevel {
	return &TwoLevel{l1: l1, l2: l2}
}

// Build builds the second level first so the first can rely on it.
func (c *TwoLevel) Build(ctx context.Context, delegate ports.MorphologicParser) error {
	if err := c.l2.Build(ctx, delegate); err != nil {
		return fmt.Errorf("second level: %w", err)
	}
	if err := c.l1.Build(ctx, delegate); err != nil {
		return fmt.Errorf("first level: %w", err)
	}
	return nil
}

func (c *TwoLevel) Get(ctx context.Context, word string) ([]*domain.Container, bool, error) {
	results, ok, err := c.l1.Get(ctx, word)
	if err != nil || ok {
		return results, ok, err
	}
	results, ok, err = c.l2.Get(ctx, word)
	if err != nil || !ok {
		return results, ok, err
	}
	if err := c.l1.Put(ctx, word, results); err != nil {
		return nil, false, fmt.Errorf("failed to promote %q: %w", word, err)
	}
	return results, true, nil
}

func (c *TwoLevel) Put(ctx context.Context, word string, results []*domain.Container) error {
	return c.l1.Put(ctx, word, results)
}

func (c *TwoLevel) PutAll(ctx context.Context, entries map[string][]*domain.Container) error {
	return c.l1.PutAll(ctx, entries)
}

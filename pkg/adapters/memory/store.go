package memory

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/ports"
)

// DefaultSize is the capacity used when NewLRU gets a non-positive size.
const DefaultSize = 10000

// LRU implements ports.ParseCache as a bounded in-process cache.
// Safe for concurrent use.
type LRU struct {
	cache *lru.Cache[string, []*domain.Container]
}

// NewLRU creates a cache holding at most size words.
func NewLRU(size int) (*LRU, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[string, []*domain.Container](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}
	return &LRU{cache: c}, nil
}

// Build is a no-op; the cache fills as words are parsed.
func (l *LRU) Build(ctx context.Context, delegate ports.MorphologicParser) error {
	return nil
}

func (l *LRU) Get(ctx context.Context, word string) ([]*domain.Container, bool, error) {
	results, ok := l.cache.Get(word)
	if !ok {
		return nil, false, nil
	}
	return copyResults(results), true, nil
}

// Put stores a copy of the result slice. Containers are immutable and shared.
func (l *LRU) Put(ctx context.Context, word string, results []*domain.Container) error {
	l.cache.Add(word, copyResults(results))
	return nil
}

func (l *LRU) PutAll(ctx context.Context, entries map[string][]*domain.Container) error {
	for word, results := range entries {
		l.cache.Add(word, copyResults(results))
	}
	return nil
}

// Len returns the number of cached words.
func (l *LRU) Len() int { return l.cache.Len() }

func copyResults(results []*domain.Container) []*domain.Container {
	out := make([]*domain.Container, len(results))
	copy(out, results)
	return out
}

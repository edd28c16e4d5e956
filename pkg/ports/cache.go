package ports

import (
	"context"

	"github.com/aretw0/trnltk/pkg/domain"
)

// ParseCache memoizes parse results keyed by the raw word.
// Implementations must be safe for concurrent use. Concurrent writes of the
// same key may race; the last write wins.
type ParseCache interface {
	// Build is called once before first use. It may pre-warm the cache by
	// parsing a word list with delegate.
	Build(ctx context.Context, delegate MorphologicParser) error

	// Get returns the cached analyses and whether the word was present.
	Get(ctx context.Context, word string) ([]*domain.Container, bool, error)

	// Put stores the analyses of word. An empty slice is a valid value.
	Put(ctx context.Context, word string, results []*domain.Container) error

	// PutAll stores several words at once.
	PutAll(ctx context.Context, entries map[string][]*domain.Container) error
}

package ports

import (
	"context"

	"github.com/aretw0/trnltk/pkg/domain"
)

// MorphologicParser parses words into every analysis the graph allows.
// A word without analyses yields an empty, non-nil slice.
type MorphologicParser interface {
	// Parse analyses a normalized sequence.
	Parse(ctx context.Context, seq domain.Sequence) ([]*domain.Container, error)

	// ParseStr analyses a raw word.
	ParseStr(ctx context.Context, word string) ([]*domain.Container, error)

	// ParseAll analyses a batch. Result order matches input order.
	ParseAll(ctx context.Context, seqs []domain.Sequence) ([][]*domain.Container, error)

	// ParseAllStr is ParseAll for raw words.
	ParseAllStr(ctx context.Context, words []string) ([][]*domain.Container, error)
}

// RootFinder proposes roots for a prefix of a word.
type RootFinder interface {
	// Handles reports whether the finder has anything to say about partial.
	Handles(partial, whole string) bool

	// FindRoots returns the roots whose sequence is partial.
	FindRoots(partial, whole string) []*domain.Root
}

// PathProvider supplies the authored paths of irregular roots.
// Both methods return domain.ErrPathsNotInitialized before the table is built.
type PathProvider interface {
	HasPaths(root *domain.Root) (bool, error)
	Paths(root *domain.Root) ([]*domain.Container, error)
}

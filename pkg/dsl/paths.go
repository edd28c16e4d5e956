package dsl

import (
	"fmt"

	"github.com/aretw0/trnltk/internal/runtime"
	"github.com/aretw0/trnltk/pkg/domain"
)

// Table authors a set of paths.
type Table func(b *Builder)

// PredefinedPaths holds the authored paths of irregular roots. Initialize
// must return before the value is shared; afterwards it is read-only.
type PredefinedPaths struct {
	graph   Graph
	applier *runtime.SuffixApplier
	roots   RootLookup
	tables  []Table

	paths map[string][]*domain.Container
}

// NewPredefinedPaths prepares a path table. Nothing is built until Initialize.
func NewPredefinedPaths(graph Graph, applier *runtime.SuffixApplier, roots RootLookup, tables ...Table) *PredefinedPaths {
	return &PredefinedPaths{graph: graph, applier: applier, roots: roots, tables: tables}
}

// Initialize runs every table. Any authoring error fails the whole build.
func (p *PredefinedPaths) Initialize() error {
	if p.paths != nil {
		return nil
	}
	b := New(p.graph, p.applier, p.roots)
	for _, table := range p.tables {
		table(b)
	}
	if err := b.Err(); err != nil {
		return fmt.Errorf("failed to build predefined paths: %w", err)
	}
	p.paths = b.Paths()
	return nil
}

func (p *PredefinedPaths) HasPaths(root *domain.Root) (bool, error) {
	if p.paths == nil {
		return false, domain.ErrPathsNotInitialized
	}
	_, ok := p.paths[root.Key()]
	return ok, nil
}

// Paths returns the stored paths of root. Their remaining surface is blank;
// callers rebase them against the real input.
func (p *PredefinedPaths) Paths(root *domain.Root) ([]*domain.Container, error) {
	if p.paths == nil {
		return nil, domain.ErrPathsNotInitialized
	}
	return p.paths[root.Key()], nil
}

// Len returns the number of roots with authored paths.
func (p *PredefinedPaths) Len() int { return len(p.paths) }

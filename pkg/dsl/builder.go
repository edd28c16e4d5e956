package dsl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/trnltk/internal/runtime"
	"github.com/aretw0/trnltk/pkg/domain"
)

// Graph is the part of the suffix graph the builder walks.
type Graph interface {
	Suffix(name string) (*domain.Suffix, error)
	DefaultStateForRoot(root *domain.Root) (*domain.State, error)
}

// RootLookup returns every root with the given surface sequence.
type RootLookup interface {
	Roots(sequence string) []*domain.Root
}

// Builder collects authored paths keyed by root.
type Builder struct {
	graph   Graph
	applier *runtime.SuffixApplier
	roots   RootLookup

	paths map[string][]*domain.Container
	errs  []error
}

// New creates a path builder.
func New(graph Graph, applier *runtime.SuffixApplier, roots RootLookup) *Builder {
	return &Builder{
		graph:   graph,
		applier: applier,
		roots:   roots,
		paths:   make(map[string][]*domain.Container),
	}
}

func (b *Builder) fail(err error) {
	b.errs = append(b.errs, err)
}

// Err returns every authoring error recorded so far.
func (b *Builder) Err() error {
	return errors.Join(b.errs...)
}

// Paths returns the authored paths keyed by domain.Root.Key.
func (b *Builder) Paths() map[string][]*domain.Container {
	return b.paths
}

// Root starts a path at the default state of the single root matching
// sequence and pos (and spos, when given).
func (b *Builder) Root(sequence string, pos domain.PrimaryPos, spos ...domain.SecondaryPos) *PathBuilder {
	p := &PathBuilder{builder: b}
	root, err := b.findRoot(sequence, pos, spos...)
	if err != nil {
		p.err = err
		return p
	}
	return b.Path(root)
}

// Path starts a path at the default state of root.
func (b *Builder) Path(root *domain.Root) *PathBuilder {
	p := &PathBuilder{builder: b, root: root}
	state, err := b.graph.DefaultStateForRoot(root)
	if err != nil {
		p.err = fmt.Errorf("path of %s: %w", root, err)
		return p
	}
	p.current = domain.NewContainer(root, state, "")
	return p
}

func (b *Builder) findRoot(sequence string, pos domain.PrimaryPos, spos ...domain.SecondaryPos) (*domain.Root, error) {
	var found []*domain.Root
	for _, r := range b.roots.Roots(sequence) {
		if r.Lexeme.PrimaryPos != pos {
			continue
		}
		if len(spos) > 0 && r.Lexeme.SecondaryPos != spos[0] {
			continue
		}
		found = append(found, r)
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("root %q (%s): %w", sequence, pos, domain.ErrRootNotFound)
	case 1:
		return found[0], nil
	}
	return nil, fmt.Errorf("root %q (%s) matches %d roots: %w", sequence, pos, len(found), domain.ErrAmbiguousRoot)
}

// PathBuilder extends a single path one suffix at a time. The first error
// sticks; later calls are no-ops and Add records it on the Builder.
type PathBuilder struct {
	builder *Builder
	root    *domain.Root
	current *domain.Container
	err     error
}

// S appends suffix with the given literal text (blank when omitted).
func (p *PathBuilder) S(suffixName string, form ...string) *PathBuilder {
	if p.err != nil {
		return p
	}
	literal := ""
	if len(form) > 0 {
		literal = form[0]
	}
	if literal != strings.ToLower(literal) {
		p.err = fmt.Errorf("path of %s: form %q of %s must be lower case", p.root, literal, suffixName)
		return p
	}

	suffix, err := p.builder.graph.Suffix(suffixName)
	if err != nil {
		p.err = fmt.Errorf("path of %s: %w", p.root, err)
		return p
	}

	hops, err := p.findHops(suffix)
	if err != nil {
		p.err = err
		return p
	}
	for i, hop := range hops {
		text := ""
		if i == len(hops)-1 {
			text = literal
		}
		if err := p.apply(hop, text); err != nil {
			p.err = err
			return p
		}
	}
	return p
}

// findHops returns the direct edge for suffix or, failing that, the single
// blank edge into a state that has it.
func (p *PathBuilder) findHops(suffix *domain.Suffix) ([]domain.Edge, error) {
	state := p.current.LastState()
	for _, e := range state.Edges() {
		if e.Suffix == suffix {
			return []domain.Edge{e}, nil
		}
	}

	var found [][]domain.Edge
	for _, first := range state.Edges() {
		for _, second := range first.Target.Edges() {
			if second.Suffix == suffix {
				found = append(found, []domain.Edge{first, second})
			}
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("path of %s: %s from %s: %w", p.root, suffix.Name, state.Name, domain.ErrNoPathForSuffix)
	case 1:
		return found[0], nil
	}
	return nil, fmt.Errorf("path of %s: %d paths to %s from %s: %w", p.root, len(found), suffix.Name, state.Name, domain.ErrNoPathForSuffix)
}

func (p *PathBuilder) apply(edge domain.Edge, literal string) error {
	form := domain.NewForcedForm(edge.Suffix, literal)
	next := p.builder.applier.TryForm(p.current, form, edge.Target, p.current.SurfaceSoFar()+literal)
	if next == nil {
		return fmt.Errorf("path of %s: %s(%q) rejected at %s: %w", p.root, edge.Suffix.Name, literal, p.current.LastState().Name, domain.ErrNoPathForSuffix)
	}
	p.current = next
	return nil
}

// Add stores the finished path.
func (p *PathBuilder) Add() {
	if p.err != nil {
		p.builder.fail(p.err)
		return
	}
	key := p.root.Key()
	p.builder.paths[key] = append(p.builder.paths[key], p.current)
}

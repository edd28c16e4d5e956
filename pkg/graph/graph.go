package graph

import (
	"fmt"
	"sort"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/phonetics"
)

// Graph is a frozen suffix graph. It is safe for concurrent use.
type Graph struct {
	name        string
	states      map[string]*domain.State
	stateOrder  []*domain.State
	suffixes    map[string]*domain.Suffix
	suffixOrder []*domain.Suffix
	rootStates  []RootStateFunc
	declared    []*domain.State
}

// New applies the definitions in order and freezes the result. Every suffix
// form template is checked for syntax.
func New(name string, defs ...Definition) (*Graph, error) {
	b := newBuilder()
	for _, def := range defs {
		if err := def(b); err != nil {
			return nil, fmt.Errorf("failed to build suffix graph %q: %w", name, err)
		}
		if err := b.Err(); err != nil {
			return nil, fmt.Errorf("failed to build suffix graph %q: %w", name, err)
		}
	}
	for _, s := range b.suffixOrder {
		for _, f := range s.Forms() {
			if _, err := phonetics.Compile(f.Form); err != nil {
				return nil, fmt.Errorf("failed to build suffix graph %q: suffix %s: %w", name, s.Name, err)
			}
		}
	}
	return &Graph{
		name:        name,
		states:      b.states,
		stateOrder:  b.stateOrder,
		suffixes:    b.suffixes,
		suffixOrder: b.suffixOrder,
		rootStates:  b.rootStates,
		declared:    b.declared,
	}, nil
}

func (g *Graph) Name() string { return g.name }

// DefaultStateForRoot returns the start state for root. A root whose
// category has no mapping is a configuration error.
func (g *Graph) DefaultStateForRoot(root *domain.Root) (*domain.State, error) {
	for i := len(g.rootStates) - 1; i >= 0; i-- {
		if s := g.rootStates[i](root); s != nil {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s in graph %q", domain.ErrMissingDefaultState, root, g.name)
}

// DeclaredRootStates returns the start states registered for individual
// roots rather than whole categories.
func (g *Graph) DeclaredRootStates() []*domain.State { return g.declared }

func (g *Graph) State(name string) (*domain.State, error) {
	s, ok := g.states[name]
	if !ok {
		return nil, fmt.Errorf("state %q: %w", name, domain.ErrUnknownState)
	}
	return s, nil
}

func (g *Graph) Suffix(name string) (*domain.Suffix, error) {
	s, ok := g.suffixes[name]
	if !ok {
		return nil, fmt.Errorf("suffix %q: %w", name, domain.ErrUnknownSuffix)
	}
	return s, nil
}

// SuffixForm returns the form of suffixName whose template is form.
func (g *Graph) SuffixForm(suffixName, form string) (*domain.SuffixForm, error) {
	s, err := g.Suffix(suffixName)
	if err != nil {
		return nil, err
	}
	f := s.Form(form)
	if f == nil {
		return nil, fmt.Errorf("suffix %q form %q: %w", suffixName, form, domain.ErrUnknownSuffixForm)
	}
	return f, nil
}

// States returns all states in registration order.
func (g *Graph) States() []*domain.State { return g.stateOrder }

// Suffixes returns all suffixes in registration order.
func (g *Graph) Suffixes() []*domain.Suffix { return g.suffixOrder }

// Forms returns the distinct non-blank form templates of the graph, sorted.
func (g *Graph) Forms() []string {
	seen := make(map[string]struct{})
	for _, s := range g.suffixOrder {
		for _, f := range s.Forms() {
			if f.Form != "" {
				seen[f.Form] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

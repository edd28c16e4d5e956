package graph

import (
	"fmt"

	"github.com/aretw0/trnltk/pkg/domain"
)

// RootStateFunc maps a root to its start state, or returns nil when the
// root's category is not handled.
type RootStateFunc func(root *domain.Root) *domain.State

// Definition registers states, suffixes and edges on a Builder. Definitions
// are applied in order; a later definition may reference anything an earlier
// one registered and its root-state mapping is consulted first.
type Definition func(b *Builder) error

// Builder is the mutable half of a suffix graph. It is only reachable from
// Definitions while New runs; callers get a frozen Graph.
type Builder struct {
	states      map[string]*domain.State
	stateOrder  []*domain.State
	suffixes    map[string]*domain.Suffix
	suffixOrder []*domain.Suffix
	rootStates  []RootStateFunc
	declared    []*domain.State

	err error
}

func newBuilder() *Builder {
	return &Builder{
		states:   make(map[string]*domain.State),
		suffixes: make(map[string]*domain.Suffix),
	}
}

// Err returns the first registration error, if any.
func (b *Builder) Err() error { return b.err }

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// State registers a new state.
func (b *Builder) State(name string, typ domain.StateType, pos domain.PrimaryPos, spos domain.SecondaryPos) *domain.State {
	if existing, ok := b.states[name]; ok {
		b.fail(fmt.Errorf("state %q: %w", name, domain.ErrDuplicateName))
		return existing
	}
	s := domain.NewState(name, typ, pos, spos)
	b.states[name] = s
	b.stateOrder = append(b.stateOrder, s)
	return s
}

// Suffix registers a new ordinary suffix. Forms are added on the returned value.
func (b *Builder) Suffix(name string, group domain.SuffixGroup, prettyName string, allowRepetition bool) *domain.Suffix {
	return b.register(domain.NewSuffix(name, group, prettyName, allowRepetition, domain.SuffixNormal))
}

// FreeTransition registers an epsilon suffix hidden from formatted output.
func (b *Builder) FreeTransition(name string) *domain.Suffix {
	s := b.register(domain.NewSuffix(name, "", "", false, domain.SuffixFree))
	s.AddForm("", nil, nil, nil)
	return s
}

// ConditionalFreeTransition registers a free transition whose single blank
// form carries the given conditions.
func (b *Builder) ConditionalFreeTransition(name string, pre, post, postDerivative domain.Condition) *domain.Suffix {
	s := b.register(domain.NewSuffix(name, "", "", false, domain.SuffixConditionalFree))
	s.AddForm("", pre, post, postDerivative)
	return s
}

// ZeroTransition registers an epsilon suffix that shows up in formatted
// output under prettyName.
func (b *Builder) ZeroTransition(name, prettyName string) *domain.Suffix {
	s := b.register(domain.NewSuffix(name, "", prettyName, false, domain.SuffixZero))
	s.AddForm("", nil, nil, nil)
	return s
}

func (b *Builder) register(s *domain.Suffix) *domain.Suffix {
	if existing, ok := b.suffixes[s.Name]; ok {
		b.fail(fmt.Errorf("suffix %q: %w", s.Name, domain.ErrDuplicateName))
		return existing
	}
	b.suffixes[s.Name] = s
	b.suffixOrder = append(b.suffixOrder, s)
	return s
}

// Connect adds the edge from -suffix-> to.
func (b *Builder) Connect(from *domain.State, suffix *domain.Suffix, to *domain.State) {
	from.Connect(suffix, to)
}

// ExistingState returns a state registered by an earlier definition.
func (b *Builder) ExistingState(name string) *domain.State {
	s, ok := b.states[name]
	if !ok {
		b.fail(fmt.Errorf("state %q: %w", name, domain.ErrUnknownState))
		return domain.NewState(name, domain.Transfer, "", "")
	}
	return s
}

// ExistingSuffix returns a suffix registered by an earlier definition.
func (b *Builder) ExistingSuffix(name string) *domain.Suffix {
	s, ok := b.suffixes[name]
	if !ok {
		b.fail(fmt.Errorf("suffix %q: %w", name, domain.ErrUnknownSuffix))
		return domain.NewSuffix(name, "", "", false, domain.SuffixNormal)
	}
	return s
}

// RootStates registers a root-state mapping.
func (b *Builder) RootStates(fn RootStateFunc) {
	b.rootStates = append(b.rootStates, fn)
}

// DeclareRootState marks s as a start state that only specific roots reach
// ("değil"), so a category sweep over the root-state mappings misses it.
func (b *Builder) DeclareRootState(s *domain.State) {
	b.declared = append(b.declared, s)
}

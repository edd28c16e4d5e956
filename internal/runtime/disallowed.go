package runtime

import (
	"fmt"

	"github.com/aretw0/trnltk/pkg/domain"
)

// DisallowedPathProvider vetoes transitions whose history matches a negative
// pattern that the graph's edges cannot express.
type DisallowedPathProvider interface {
	// IsPathDisallowed reports whether applying suffix to c is forbidden.
	IsPathDisallowed(c *domain.Container, suffix *domain.Suffix) bool
}

// AllowEverything is the provider that never vetoes.
type AllowEverything struct{}

func (AllowEverything) IsPathDisallowed(*domain.Container, *domain.Suffix) bool { return false }

// Scope limits how far back a rule looks.
type Scope uint8

const (
	// ScopeSinceDerivation only sees the transitions from the last
	// derivation on, the derivational transition included.
	ScopeSinceDerivation Scope = iota
	// ScopeWholeHistory sees every transition.
	ScopeWholeHistory
)

func (s Scope) String() string {
	switch s {
	case ScopeSinceDerivation:
		return "since-derivation"
	case ScopeWholeHistory:
		return "whole-history"
	}
	return fmt.Sprintf("Scope(%d)", uint8(s))
}

// DisallowedPath is a rule "never pass through Suffixes in this order",
// intermediate suffixes allowed. The last suffix is the one being applied.
type DisallowedPath struct {
	Suffixes []string
	Scope    Scope
}

type pathRule struct {
	// preceding suffixes, in history order, without the path end
	preceding []*domain.Suffix
	scope     Scope
}

// RuleProvider matches rules with a right-to-left greedy scan.
type RuleProvider struct {
	rules map[*domain.Suffix][]pathRule
}

// SuffixLookup resolves suffix names.
type SuffixLookup interface {
	Suffix(name string) (*domain.Suffix, error)
}

// NewRuleProvider resolves the rules against the graph. Unknown suffix
// names are a configuration error.
func NewRuleProvider(g SuffixLookup, paths ...DisallowedPath) (*RuleProvider, error) {
	p := &RuleProvider{rules: make(map[*domain.Suffix][]pathRule)}
	for _, path := range paths {
		if len(path.Suffixes) < 2 {
			return nil, fmt.Errorf("disallowed path %v: needs at least two suffixes", path.Suffixes)
		}
		resolved := make([]*domain.Suffix, len(path.Suffixes))
		for i, name := range path.Suffixes {
			s, err := g.Suffix(name)
			if err != nil {
				return nil, fmt.Errorf("disallowed path %v: %w", path.Suffixes, err)
			}
			resolved[i] = s
		}
		end := resolved[len(resolved)-1]
		p.rules[end] = append(p.rules[end], pathRule{preceding: resolved[:len(resolved)-1], scope: path.Scope})
	}
	return p, nil
}

// DefaultDisallowedPaths removes analyses that duplicate a direct
// adjective derivation through a zero-derived noun:
//
//	kırmızılık: kırmızı+Adj+Noun+Ness, not kırmızı+Adj+Noun+Zero+A3sg+Pnon+Nom+Noun+Ness
//	kırmızılaş: kırmızı+Adj+Verb+Become, not kırmızı+Adj+Noun+Zero+...+Verb+Become
func DefaultDisallowedPaths() []DisallowedPath {
	return []DisallowedPath{
		{Suffixes: []string{"Adj_to_Noun_Zero_Transition", "Ness_Noun"}},
		{Suffixes: []string{"Adj_to_Noun_Zero_Transition", "Become_Noun"}},
	}
}

func (p *RuleProvider) IsPathDisallowed(c *domain.Container, suffix *domain.Suffix) bool {
	rules := p.rules[suffix]
	if len(rules) == 0 {
		return false
	}
	history := c.Transitions()
	for _, r := range rules {
		if r.matches(history) {
			return true
		}
	}
	return false
}

func (r pathRule) matches(history []*domain.Transition) bool {
	lower := 0
	if r.scope == ScopeSinceDerivation {
		for i := len(history) - 1; i >= 0; i-- {
			if history[i].IsDerivational() {
				lower = i
				break
			}
		}
	}
	idx := len(history) - 1
	for i := len(r.preceding) - 1; i >= 0; i-- {
		idx = search(r.preceding[i], history, idx, lower)
		if idx < 0 {
			return false
		}
		idx--
	}
	return true
}

// search walks back from index from down to lower and returns the position
// of suffix, or -1.
func search(suffix *domain.Suffix, history []*domain.Transition, from, lower int) int {
	for i := from; i >= lower; i-- {
		if history[i].Suffix() == suffix {
			return i
		}
	}
	return -1
}

package rootfinder

import (
	"fmt"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/ports"
)

// Policy decides whether the chain goes on after a finder handled the input.
type Policy int

const (
	// StopChainWhenHandled ends the lookup once the finder handles the input.
	StopChainWhenHandled Policy = iota
	// ContinueOnChain lets later finders add roots too.
	ContinueOnChain
)

func (p Policy) String() string {
	switch p {
	case StopChainWhenHandled:
		return "stop-chain-when-handled"
	case ContinueOnChain:
		return "continue-on-chain"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

type link struct {
	finder ports.RootFinder
	policy Policy
}

// Chain asks its finders in registration order.
type Chain struct {
	links []link
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	return &Chain{}
}

// Add registers finder. A stop-policy finder cannot follow a
// continue-policy one.
func (c *Chain) Add(finder ports.RootFinder, policy Policy) error {
	if finder == nil {
		return fmt.Errorf("rootfinder: nil finder")
	}
	if policy != StopChainWhenHandled && policy != ContinueOnChain {
		return fmt.Errorf("rootfinder: unknown policy %s", policy)
	}
	if n := len(c.links); policy == StopChainWhenHandled && n > 0 && c.links[n-1].policy == ContinueOnChain {
		return fmt.Errorf("rootfinder: %T with policy %s registered after a %s finder", finder, policy, ContinueOnChain)
	}
	c.links = append(c.links, link{finder: finder, policy: policy})
	return nil
}

// MustAdd is Add for static chains.
func (c *Chain) MustAdd(finder ports.RootFinder, policy Policy) *Chain {
	if err := c.Add(finder, policy); err != nil {
		panic(err)
	}
	return c
}

// Handles reports whether any finder handles partial.
func (c *Chain) Handles(partial, whole string) bool {
	for _, l := range c.links {
		if l.finder.Handles(partial, whole) {
			return true
		}
	}
	return false
}

func (c *Chain) FindRoots(partial, whole string) []*domain.Root {
	var roots []*domain.Root
	for _, l := range c.links {
		if !l.finder.Handles(partial, whole) {
			continue
		}
		roots = append(roots, l.finder.FindRoots(partial, whole)...)
		if l.policy == StopChainWhenHandled {
			break
		}
	}
	return roots
}

// Len returns the number of registered finders.
func (c *Chain) Len() int { return len(c.links) }

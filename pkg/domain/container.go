package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// SuffixFormApplication records how a suffix form was realized on a surface.
type SuffixFormApplication struct {
	Form *SuffixForm
	// Actual is the text consumed from the input.
	Actual string
	// Fitting is the text the phonetic rules produced for the form.
	Fitting string
}

// Transition is one applied step of an analysis.
type Transition struct {
	Source      *State
	Application SuffixFormApplication
	Target      *State
}

func (t *Transition) Suffix() *Suffix { return t.Application.Form.Suffix }

// IsDerivational reports whether the transition leaves a derivational state.
func (t *Transition) IsDerivational() bool { return t.Source.Type == Derivational }

func (t *Transition) String() string {
	return fmt.Sprintf("%s -%s(%s[%s])-> %s", t.Source.Name, t.Suffix().Name,
		t.Application.Form.Form, t.Application.Actual, t.Target.Name)
}

// AttributeCalculator computes the phonetic attributes of a surface.
type AttributeCalculator func(surface string, attrs LexemeAttributes) PhoneticAttributes

type link struct {
	transition *Transition
	prev       *link
}

// Container is a candidate analysis in progress: a root plus the transitions
// applied so far. Containers are persistent values. Append returns a new
// container that shares its history with the receiver, so a container is
// never changed after it has been created.
type Container struct {
	root      *Root
	rootState *State

	surfaceSoFar string
	remaining    string
	lastState    *State

	expectations PhoneticExpectations
	lexemeAttrs  LexemeAttributes
	phonAttrs    PhoneticAttributes

	tail *link
	size int

	lastDerivation         *link
	lastNonBlank           *Transition
	lastNonBlankDerivation *Transition
}

// NewContainer starts a candidate at rootState with nothing applied yet.
func NewContainer(root *Root, rootState *State, remaining string) *Container {
	return &Container{
		root:         root,
		rootState:    rootState,
		surfaceSoFar: root.Sequence,
		remaining:    remaining,
		lastState:    rootState,
		expectations: root.Expectations,
		lexemeAttrs:  root.Lexeme.Attributes,
		phonAttrs:    root.PhoneticAttributes,
	}
}

func (c *Container) Root() *Root                        { return c.root }
func (c *Container) RootState() *State                  { return c.rootState }
func (c *Container) SurfaceSoFar() string               { return c.surfaceSoFar }
func (c *Container) Remaining() string                  { return c.remaining }
func (c *Container) LastState() *State                  { return c.lastState }
func (c *Container) Expectations() PhoneticExpectations { return c.expectations }
func (c *Container) LexemeAttributes() LexemeAttributes { return c.lexemeAttrs }
func (c *Container) PhoneticAttributes() PhoneticAttributes {
	return c.phonAttrs
}
func (c *Container) HasTransitions() bool { return c.size > 0 }
func (c *Container) Len() int             { return c.size }

// IsResult reports whether the candidate is a complete analysis.
func (c *Container) IsResult() bool {
	return c.lastState.Type == Terminal && c.remaining == ""
}

// Transitions returns the applied transitions in order.
func (c *Container) Transitions() []*Transition {
	out := make([]*Transition, c.size)
	i := c.size - 1
	for l := c.tail; l != nil; l = l.prev {
		out[i] = l.transition
		i--
	}
	return out
}

func (c *Container) LastTransition() *Transition {
	if c.tail == nil {
		return nil
	}
	return c.tail.transition
}

func (c *Container) LastDerivationTransition() *Transition {
	if c.lastDerivation == nil {
		return nil
	}
	return c.lastDerivation.transition
}

// LastDerivationSuffix returns the suffix of the most recent derivational
// transition, or nil.
func (c *Container) LastDerivationSuffix() *Suffix {
	if t := c.LastDerivationTransition(); t != nil {
		return t.Suffix()
	}
	return nil
}

func (c *Container) LastNonBlankTransition() *Transition { return c.lastNonBlank }
func (c *Container) LastNonBlankDerivation() *Transition { return c.lastNonBlankDerivation }

// TransitionsSinceDerivation returns the transitions after the most recent
// derivational one.
func (c *Container) TransitionsSinceDerivation() []*Transition {
	return c.collect(false)
}

// TransitionsFromDerivation is TransitionsSinceDerivation plus the
// derivational transition that opened the window.
func (c *Container) TransitionsFromDerivation() []*Transition {
	return c.collect(true)
}

func (c *Container) collect(includeDerivation bool) []*Transition {
	var rev []*Transition
	for l := c.tail; l != nil; l = l.prev {
		if l == c.lastDerivation {
			if includeDerivation {
				rev = append(rev, l.transition)
			}
			break
		}
		rev = append(rev, l.transition)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// UsedSinceDerivation reports whether suffix was applied in the current
// derivation window.
func (c *Container) UsedSinceDerivation(suffix *Suffix) bool {
	for l := c.tail; l != nil && l != c.lastDerivation; l = l.prev {
		if l.transition.Suffix() == suffix {
			return true
		}
	}
	return false
}

// GroupUsedSinceDerivation reports whether a suffix of group was applied in
// the current derivation window. The empty group is never used.
func (c *Container) GroupUsedSinceDerivation(group SuffixGroup) bool {
	if group == "" {
		return false
	}
	for l := c.tail; l != nil && l != c.lastDerivation; l = l.prev {
		if l.transition.Suffix().Group == group {
			return true
		}
	}
	return false
}

// Append returns a new container with one more transition.
// calc recomputes the phonetic attributes of the grown surface.
func (c *Container) Append(app SuffixFormApplication, target *State, calc AttributeCalculator) *Container {
	n := *c
	t := &Transition{Source: c.lastState, Application: app, Target: target}
	n.tail = &link{transition: t, prev: c.tail}
	n.size = c.size + 1

	n.surfaceSoFar = c.surfaceSoFar + app.Actual
	if c.remaining == "" || len(app.Actual) >= len(c.remaining) {
		n.remaining = ""
	} else {
		n.remaining = c.remaining[len(app.Actual):]
	}

	nonBlank := strings.TrimSpace(app.Form.Form) != ""
	if nonBlank {
		n.expectations = 0
		n.lastNonBlank = t
	}
	n.lastState = target
	if t.IsDerivational() {
		n.lastDerivation = n.tail
		if nonBlank {
			n.lastNonBlankDerivation = t
		}
	}

	n.lexemeAttrs = n.findLexemeAttributes()
	n.phonAttrs = n.findPhoneticAttributes(calc)
	return &n
}

// Rebase returns a copy whose remaining surface is replaced.
func (c *Container) Rebase(remaining string) *Container {
	n := *c
	n.remaining = remaining
	return &n
}

// Respell returns a copy that starts from root, a respelling of c's root
// ("Ban" for "ban"). The suffixes already applied are kept.
func (c *Container) Respell(root *Root) *Container {
	n := *c
	if strings.HasPrefix(c.surfaceSoFar, c.root.Sequence) {
		n.surfaceSoFar = root.Sequence + c.surfaceSoFar[len(c.root.Sequence):]
	}
	n.root = root
	return &n
}

func (c *Container) findLexemeAttributes() LexemeAttributes {
	if c.lastNonBlank == nil {
		return c.root.Lexeme.Attributes
	}
	if c.lastState.PrimaryPos != PosVerb {
		return 0
	}
	if c.lastState.Type == Derivational || strings.TrimSpace(c.LastTransition().Application.Actual) == "" {
		return NewLexemeAttributes(NoVoicing)
	}
	return 0
}

func (c *Container) findPhoneticAttributes(calc AttributeCalculator) PhoneticAttributes {
	suffixSoFar := strings.TrimPrefix(c.surfaceSoFar, c.root.Sequence)
	if strings.TrimSpace(suffixSoFar) == "" || !isAlphanumeric(suffixSoFar) || calc == nil {
		return c.root.PhoneticAttributes
	}
	return calc(c.surfaceSoFar, c.lexemeAttrs)
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (c *Container) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Container{root=%s, state=%s, soFar=%q, remaining=%q, transitions=[", c.root, c.lastState, c.surfaceSoFar, c.remaining)
	for i, t := range c.Transitions() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteString("]}")
	return b.String()
}

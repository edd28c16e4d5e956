package runtime

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/trnltk/pkg/domain"
)

// GraphLookup is the subset of the suffix graph needed to resolve rules.
type GraphLookup interface {
	SuffixLookup
	State(name string) (*domain.State, error)
	SuffixForm(suffixName, form string) (*domain.SuffixForm, error)
	DefaultStateForRoot(root *domain.Root) (*domain.State, error)
}

// MandatoryRule forces candidates matching Condition at SourceState through
// a fixed sequence of steps.
type MandatoryRule struct {
	Name      string
	Condition domain.Condition
	Source    *domain.State
	Steps     []MandatoryStep
}

type MandatoryStep struct {
	Form   *domain.SuffixForm
	Target *domain.State
}

// MandatoryRuleBuilder resolves a rule against a graph by name.
type MandatoryRuleBuilder struct {
	g    GraphLookup
	rule MandatoryRule
	err  error
}

func NewMandatoryRule(g GraphLookup, name string) *MandatoryRuleBuilder {
	return &MandatoryRuleBuilder{g: g, rule: MandatoryRule{Name: name}}
}

func (b *MandatoryRuleBuilder) When(cond domain.Condition) *MandatoryRuleBuilder {
	b.rule.Condition = cond
	return b
}

func (b *MandatoryRuleBuilder) From(state string) *MandatoryRuleBuilder {
	s, err := b.g.State(state)
	if err != nil && b.err == nil {
		b.err = err
	}
	b.rule.Source = s
	return b
}

func (b *MandatoryRuleBuilder) Step(suffix, form, target string) *MandatoryRuleBuilder {
	f, err := b.g.SuffixForm(suffix, form)
	if err != nil && b.err == nil {
		b.err = err
	}
	t, err := b.g.State(target)
	if err != nil && b.err == nil {
		b.err = err
	}
	b.rule.Steps = append(b.rule.Steps, MandatoryStep{Form: f, Target: t})
	return b
}

func (b *MandatoryRuleBuilder) Build() (MandatoryRule, error) {
	if b.err != nil {
		return MandatoryRule{}, fmt.Errorf("failed to build mandatory rule %q: %w", b.rule.Name, b.err)
	}
	if b.rule.Source == nil || len(b.rule.Steps) == 0 {
		return MandatoryRule{}, fmt.Errorf("failed to build mandatory rule %q: source state and steps are required", b.rule.Name)
	}
	return b.rule, nil
}

// DefaultMandatoryRules returns the built-in rules: a progressive vowel drop
// verb ("ara" as "ar-ıyor") must continue with Pos and then Prog "Iyor".
func DefaultMandatoryRules(g GraphLookup) ([]MandatoryRule, error) {
	pvd, err := NewMandatoryRule(g, "progressive-vowel-drop").
		When(domain.And(domain.RootHasPrimaryPos(domain.PosVerb), domain.RootHasProgressiveVowelDrop())).
		From("VERB_ROOT").
		Step("Pos", "", "VERB_WITH_POLARITY").
		Step("Prog", "Iyor", "VERB_WITH_TENSE").
		Build()
	if err != nil {
		return nil, err
	}
	return []MandatoryRule{pvd}, nil
}

// MandatoryTransitionApplier forces rule steps onto seed candidates.
type MandatoryTransitionApplier struct {
	rules   []MandatoryRule
	applier *SuffixApplier
	logger  *slog.Logger
}

func NewMandatoryTransitionApplier(applier *SuffixApplier, logger *slog.Logger, rules ...MandatoryRule) *MandatoryTransitionApplier {
	if logger == nil {
		logger = discardLogger()
	}
	return &MandatoryTransitionApplier{rules: rules, applier: applier, logger: logger}
}

// Apply walks every matching rule for each candidate. A candidate whose
// forced step fails is dropped; the others are unaffected.
func (m *MandatoryTransitionApplier) Apply(candidates []*domain.Container, input string) ([]*domain.Container, error) {
	out := make([]*domain.Container, 0, len(candidates))
	for _, c := range candidates {
		next, err := m.applyRules(c, input)
		if err != nil {
			return nil, err
		}
		if next != nil {
			out = append(out, next)
		}
	}
	return out, nil
}

func (m *MandatoryTransitionApplier) applyRules(c *domain.Container, input string) (*domain.Container, error) {
	for _, rule := range m.rules {
		if c.LastState() != rule.Source || !rule.Condition.Holds(c) {
			continue
		}
		for _, step := range rule.Steps {
			if !m.applier.TransitionAllowed(c, step.Form.Suffix) {
				return nil, fmt.Errorf("mandatory rule %q: suffix %s cannot follow %s", rule.Name, step.Form.Suffix.Name, c)
			}
			c = m.applier.TryForm(c, step.Form, step.Target, input)
			if c == nil {
				m.logger.Debug("mandatory step does not fit, dropping candidate", "rule", rule.Name, "suffix", step.Form.Suffix.Name)
				return nil, nil
			}
		}
	}
	return c, nil
}

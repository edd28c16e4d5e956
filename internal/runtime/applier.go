package runtime

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/trnltk/pkg/domain"
)

// Phonetics is the oracle the applier consults for allomorph selection.
type Phonetics interface {
	Attributes(surface string, lexAttrs domain.LexemeAttributes) domain.PhoneticAttributes
	IsApplicable(attrs domain.PhoneticAttributes, form string) bool
	Apply(surface string, attrs domain.PhoneticAttributes, form string, lexAttrs domain.LexemeAttributes) (string, string)
	ExpectationsSatisfied(expectations domain.PhoneticExpectations, form string) bool
	ApplicationMatches(input, applied string, voicingAllowed bool) bool
}

// verbRootState is the one target where the final letter of the applied
// text must match the input literally.
const verbRootState = "VERB_ROOT"

// SuffixApplier attaches suffix forms to candidates.
type SuffixApplier struct {
	phonetics  Phonetics
	disallowed DisallowedPathProvider
	logger     *slog.Logger
}

// NewSuffixApplier creates an applier. A nil provider allows every path.
func NewSuffixApplier(phonetics Phonetics, disallowed DisallowedPathProvider, logger *slog.Logger) *SuffixApplier {
	if disallowed == nil {
		disallowed = AllowEverything{}
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &SuffixApplier{phonetics: phonetics, disallowed: disallowed, logger: logger}
}

// TransitionAllowed rejects a suffix whose group was already used since the
// last derivation, and a non-repeatable suffix that equals the last
// derivation suffix.
func (a *SuffixApplier) TransitionAllowed(c *domain.Container, suffix *domain.Suffix) bool {
	if c.GroupUsedSinceDerivation(suffix.Group) {
		return false
	}
	if !suffix.AllowRepetition && c.LastDerivationSuffix() == suffix {
		return false
	}
	return true
}

// TryAllForms tries every form of suffix and returns the candidates that
// survived. The receiver container is never modified.
func (a *SuffixApplier) TryAllForms(c *domain.Container, suffix *domain.Suffix, target *domain.State, input string) []*domain.Container {
	if !a.TransitionAllowed(c, suffix) {
		return nil
	}
	var out []*domain.Container
	for _, form := range suffix.Forms() {
		if next := a.TryForm(c, form, target, input); next != nil {
			out = append(out, next)
		}
	}
	return out
}

// TryForm applies a single form, returning nil when it does not fit.
func (a *SuffixApplier) TryForm(c *domain.Container, form *domain.SuffixForm, target *domain.State, input string) *domain.Container {
	if !a.formAllowed(c, form) {
		return nil
	}

	soFar := c.SurfaceSoFar()
	var modified, fitting string
	if form.Forced {
		modified, fitting = soFar, form.Form
	} else {
		modified, fitting = a.phonetics.Apply(soFar, c.PhoneticAttributes(), form.Form, c.LexemeAttributes())
	}
	applied := modified + fitting

	if !a.matches(input, applied, target, form.Forced) {
		a.logger.Debug("applied text does not match input", "input", input, "applied", applied, "suffix", form.Suffix.Name)
		return nil
	}

	actual := substring(input, utf8.RuneCountInString(soFar), utf8.RuneCountInString(applied))
	next := c.Append(domain.SuffixFormApplication{Form: form, Actual: actual, Fitting: fitting}, target, a.phonetics.Attributes)

	if !a.postConditionsHold(c, next) {
		return nil
	}
	if a.disallowed.IsPathDisallowed(c, form.Suffix) {
		a.logger.Debug("path disallowed", "suffix", form.Suffix.Name, "candidate", c.String())
		return nil
	}
	return next
}

func (a *SuffixApplier) formAllowed(c *domain.Container, form *domain.SuffixForm) bool {
	if !form.Precondition.Holds(c) {
		return false
	}
	if form.Forced {
		return true
	}
	if strings.TrimSpace(form.Form) != "" && !a.phonetics.ExpectationsSatisfied(c.Expectations(), form.Form) {
		return false
	}
	return a.phonetics.IsApplicable(c.PhoneticAttributes(), form.Form)
}

func (a *SuffixApplier) matches(input, applied string, target *domain.State, forced bool) bool {
	if forced {
		return strings.HasPrefix(input, applied)
	}
	return a.phonetics.ApplicationMatches(input, applied, target.Name != verbRootState)
}

// postConditionsHold re-validates the previous transition's postcondition
// and, after a derivational state, the post-derivative conditions of the
// window that derivation opened.
func (a *SuffixApplier) postConditionsHold(before, after *domain.Container) bool {
	if !before.HasTransitions() {
		return true
	}
	if !before.LastTransition().Application.Form.Postcondition.Holds(after) {
		return false
	}
	if before.LastState().Type != domain.Derivational {
		return true
	}
	for _, t := range before.TransitionsFromDerivation() {
		if !t.Application.Form.PostDerivativeCondition.Holds(after) {
			return false
		}
	}
	return true
}

// substring returns input[from:to] counted in runes.
func substring(input string, from, to int) string {
	rs := []rune(input)
	if to > len(rs) {
		to = len(rs)
	}
	if from >= to {
		return ""
	}
	return string(rs[from:to])
}

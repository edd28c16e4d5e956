package domain

import "unicode/utf8"

// Condition is a predicate over a candidate. A nil Condition always holds.
type Condition func(c *Container) bool

// Holds evaluates the condition, treating nil as satisfied.
func (cond Condition) Holds(c *Container) bool {
	return cond == nil || cond(c)
}

func And(conds ...Condition) Condition {
	return func(c *Container) bool {
		for _, cond := range conds {
			if !cond.Holds(c) {
				return false
			}
		}
		return true
	}
}

func Or(conds ...Condition) Condition {
	return func(c *Container) bool {
		for _, cond := range conds {
			if cond.Holds(c) {
				return true
			}
		}
		return false
	}
}

func Not(cond Condition) Condition {
	return func(c *Container) bool {
		return !cond.Holds(c)
	}
}

// ComesAfter holds when suffix was applied in the current derivation window.
// Evaluated as a postcondition it reads as "followed by".
func ComesAfter(suffix *Suffix) Condition {
	return func(c *Container) bool {
		return c.UsedSinceDerivation(suffix)
	}
}

// ComesAfterForm is ComesAfter restricted to one form template of suffix.
func ComesAfterForm(suffix *Suffix, form string) Condition {
	return func(c *Container) bool {
		for _, t := range c.TransitionsSinceDerivation() {
			if t.Suffix() == suffix && t.Application.Form.Form == form {
				return true
			}
		}
		return false
	}
}

func DoesntComeAfter(suffix *Suffix) Condition {
	return Not(ComesAfter(suffix))
}

// ComesAfterDerivation holds when the most recent derivational transition
// applied suffix. A non-empty form narrows the match to that template.
func ComesAfterDerivation(suffix *Suffix, form string) Condition {
	return func(c *Container) bool {
		return transitionMatches(c.LastDerivationTransition(), suffix, form)
	}
}

// ComesAfterLastNonBlankDerivation holds when the most recent derivation
// that consumed a non-blank form applied suffix.
func ComesAfterLastNonBlankDerivation(suffix *Suffix, form string) Condition {
	return func(c *Container) bool {
		return transitionMatches(c.LastNonBlankDerivation(), suffix, form)
	}
}

func transitionMatches(t *Transition, suffix *Suffix, form string) bool {
	if t == nil || t.Suffix() != suffix {
		return false
	}
	return form == "" || t.Application.Form.Form == form
}

// FollowedBySuffixGoesTo holds when the last applied transition entered a
// state of the given type.
func FollowedBySuffixGoesTo(typ StateType) Condition {
	return func(c *Container) bool {
		t := c.LastTransition()
		return t != nil && t.Target.Type == typ
	}
}

// HasLexemeAttributes holds when the root lexeme carries all attrs. Once a
// suffix has changed the surface the lexeme flags no longer apply and the
// condition holds unconditionally.
func HasLexemeAttributes(attrs ...LexemeAttribute) Condition {
	want := NewLexemeAttributes(attrs...)
	return func(c *Container) bool {
		for _, t := range c.Transitions() {
			if t.Suffix().Kind == SuffixNormal && t.Application.Actual != "" {
				return true
			}
		}
		got := c.Root().Lexeme.Attributes
		if got.IsEmpty() {
			return false
		}
		return got.HasAll(want)
	}
}

// RootHasProgressiveVowelDrop holds for the shortened root of a verb like
// "ara" -> "ar" (as in "arıyor").
func RootHasProgressiveVowelDrop() Condition {
	return func(c *Container) bool {
		r := c.Root()
		return r.Lexeme.Attributes.Has(ProgressiveVowelDrop) &&
			utf8.RuneCountInString(r.Sequence) == utf8.RuneCountInString(r.Lexeme.LemmaRoot)-1
	}
}

func AppliesToRoot(sequence string) Condition {
	return func(c *Container) bool {
		return c.Root().Sequence == sequence
	}
}

func RootHasPrimaryPos(pos PrimaryPos) Condition {
	return func(c *Container) bool {
		return c.Root().Lexeme.PrimaryPos == pos
	}
}

func RootHasSecondaryPos(spos SecondaryPos) Condition {
	return func(c *Container) bool {
		return c.Root().Lexeme.SecondaryPos == spos
	}
}

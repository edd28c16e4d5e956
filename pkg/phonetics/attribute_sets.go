package phonetics

import "github.com/aretw0/trnltk/pkg/domain"

type constraint func(s domain.PhoneticAttributes) bool

func has(a domain.PhoneticAttribute) constraint {
	return func(s domain.PhoneticAttributes) bool { return s.Has(a) }
}

func lacks(attrs ...domain.PhoneticAttribute) constraint {
	return func(s domain.PhoneticAttributes) bool {
		for _, a := range attrs {
			if s.Has(a) {
				return false
			}
		}
		return true
	}
}

// oneOf holds when exactly one of a and b is present.
func oneOf(a, b domain.PhoneticAttribute) constraint {
	return func(s domain.PhoneticAttributes) bool { return s.Has(a) != s.Has(b) }
}

func allOf(constraints ...constraint) constraint {
	return func(s domain.PhoneticAttributes) bool {
		for _, sp := range constraints {
			if !sp(s) {
				return false
			}
		}
		return true
	}
}

func anyOf(constraints ...constraint) constraint {
	return func(s domain.PhoneticAttributes) bool {
		for _, sp := range constraints {
			if sp(s) {
				return true
			}
		}
		return false
	}
}

func not(sp constraint) constraint {
	return func(s domain.PhoneticAttributes) bool { return !sp(s) }
}

var (
	hasVowelConstraint = allOf(
		lacks(domain.HasNoVowel),
		oneOf(domain.LastVowelBack, domain.LastVowelFrontal),
		oneOf(domain.LastVowelRounded, domain.LastVowelUnrounded),
	)
	hasNoVowelConstraint = allOf(has(domain.HasNoVowel), not(hasVowelConstraint))
	lastLetterConstraint = oneOf(domain.LastLetterVowel, domain.LastLetterConsonant)

	commonConstraint = allOf(
		anyOf(hasVowelConstraint, hasNoVowelConstraint),
		oneOf(domain.FirstLetterConsonant, domain.FirstLetterVowel),
		lastLetterConstraint,
	)
)

var attributeConstraints = map[domain.PhoneticAttribute]constraint{
	domain.LastLetterVowel: allOf(
		lacks(domain.LastLetterConsonant, domain.HasNoVowel, domain.LastLetterVoiceless, domain.LastLetterVoicelessStop),
		has(domain.LastLetterNotVoiceless),
		oneOf(domain.LastVowelFrontal, domain.LastVowelBack),
		oneOf(domain.LastVowelRounded, domain.LastVowelUnrounded),
	),
	domain.LastLetterConsonant: allOf(
		lacks(domain.LastLetterVowel),
		oneOf(domain.LastLetterVoiceless, domain.LastLetterNotVoiceless),
		anyOf(hasNoVowelConstraint, hasVowelConstraint),
	),
	domain.LastVowelFrontal:   allOf(lacks(domain.LastVowelBack), hasVowelConstraint, lastLetterConstraint),
	domain.LastVowelBack:      allOf(lacks(domain.LastVowelFrontal), hasVowelConstraint, lastLetterConstraint),
	domain.LastVowelRounded:   allOf(lacks(domain.LastVowelUnrounded, domain.HasNoVowel), hasVowelConstraint, lastLetterConstraint),
	domain.LastVowelUnrounded: allOf(lacks(domain.LastVowelRounded, domain.HasNoVowel), hasVowelConstraint, lastLetterConstraint),
	domain.LastLetterVoiceless: allOf(
		lacks(domain.LastLetterVowel, domain.LastLetterNotVoiceless),
		has(domain.LastLetterConsonant),
	),
	domain.LastLetterNotVoiceless: allOf(
		lacks(domain.LastLetterVoiceless, domain.LastLetterVoicelessStop),
		lastLetterConstraint,
	),
	domain.LastLetterVoicelessStop: allOf(
		lacks(domain.LastLetterVowel, domain.LastLetterNotVoiceless),
		has(domain.LastLetterConsonant),
		has(domain.LastLetterVoiceless),
	),
	domain.FirstLetterVowel: allOf(
		lacks(domain.FirstLetterConsonant, domain.HasNoVowel),
		oneOf(domain.LastVowelFrontal, domain.LastVowelBack),
		oneOf(domain.LastVowelRounded, domain.LastVowelUnrounded),
		lastLetterConstraint,
	),
	domain.FirstLetterConsonant: allOf(lacks(domain.FirstLetterVowel), lastLetterConstraint),
	domain.HasNoVowel: allOf(
		lacks(domain.FirstLetterVowel),
		hasNoVowelConstraint,
		has(domain.FirstLetterConsonant),
		has(domain.LastLetterConsonant),
		oneOf(domain.LastLetterVoiceless, domain.LastLetterNotVoiceless),
		not(hasVowelConstraint),
	),
}

// IsValid reports whether s describes a pronounceable surface. The empty
// set is invalid.
func IsValid(s domain.PhoneticAttributes) bool {
	if s.IsEmpty() || !commonConstraint(s) {
		return false
	}
	for _, a := range s.List() {
		if !attributeConstraints[a](s) {
			return false
		}
	}
	return true
}

// AttributeSets is the table of every valid attribute combination, built by
// filtering the power set once. Lookups are keyed by the packed bit field.
type AttributeSets struct {
	valid map[domain.PhoneticAttributes]struct{}
	list  []domain.PhoneticAttributes
}

func NewAttributeSets() *AttributeSets {
	t := &AttributeSets{valid: make(map[domain.PhoneticAttributes]struct{})}
	for bits := 0; bits < 1<<domain.PhoneticAttributeCount; bits++ {
		s := domain.PhoneticAttributes(bits)
		if IsValid(s) {
			t.valid[s] = struct{}{}
			t.list = append(t.list, s)
		}
	}
	return t
}

func (t *AttributeSets) Contains(s domain.PhoneticAttributes) bool {
	_, ok := t.valid[s]
	return ok
}

// All returns the valid sets in ascending key order.
func (t *AttributeSets) All() []domain.PhoneticAttributes { return t.list }

func (t *AttributeSets) Len() int { return len(t.list) }

package domain

import "fmt"

// SuffixKind distinguishes ordinary suffixes from the epsilon transitions
// the graph uses to move between states without consuming text.
type SuffixKind uint8

const (
	SuffixNormal SuffixKind = iota
	// SuffixFree is an epsilon move that is hidden from formatted output.
	SuffixFree
	// SuffixZero is an epsilon move that is shown (e.g. "Zero" derivations).
	SuffixZero
	// SuffixConditionalFree is a free move guarded by a precondition.
	SuffixConditionalFree
)

// SuffixGroup marks suffixes that are mutually exclusive between two
// derivation boundaries. The zero value means no group.
type SuffixGroup string

// Suffix is an abstract morpheme with one or more surface forms.
type Suffix struct {
	Name            string
	Group           SuffixGroup
	PrettyName      string
	AllowRepetition bool
	Kind            SuffixKind

	forms []*SuffixForm
}

// NewSuffix creates a suffix. An empty prettyName falls back to name.
func NewSuffix(name string, group SuffixGroup, prettyName string, allowRepetition bool, kind SuffixKind) *Suffix {
	if prettyName == "" {
		prettyName = name
	}
	return &Suffix{
		Name:            name,
		Group:           group,
		PrettyName:      prettyName,
		AllowRepetition: allowRepetition,
		Kind:            kind,
	}
}

// AddForm appends a form. Forms are tried in insertion order.
// Only graph construction code should call this.
func (s *Suffix) AddForm(form string, pre, post, postDerivative Condition) *SuffixForm {
	f := &SuffixForm{
		Suffix:                  s,
		Form:                    form,
		Precondition:            pre,
		Postcondition:           post,
		PostDerivativeCondition: postDerivative,
	}
	s.forms = append(s.forms, f)
	return f
}

// Forms returns the registered forms in insertion order.
func (s *Suffix) Forms() []*SuffixForm { return s.forms }

// Form returns the registered form with the given template text, or nil.
func (s *Suffix) Form(form string) *SuffixForm {
	for _, f := range s.forms {
		if f.Form == form {
			return f
		}
	}
	return nil
}

// IsFree reports whether the suffix is hidden from formatted analyses.
func (s *Suffix) IsFree() bool {
	return s.Kind == SuffixFree || s.Kind == SuffixConditionalFree
}

// IsEpsilon reports whether the suffix never consumes text.
func (s *Suffix) IsEpsilon() bool {
	return s.Kind != SuffixNormal
}

func (s *Suffix) String() string { return s.Name }

// SuffixForm is one surface template of a suffix together with the
// conditions under which it may be used.
type SuffixForm struct {
	Suffix *Suffix
	// Form is the template text, e.g. "+yA" or "lAr".
	Form string

	// Precondition is checked against the container before the form is tried.
	Precondition Condition
	// Postcondition is checked against the container after the next suffix is applied.
	Postcondition Condition
	// PostDerivativeCondition is checked when a derivation follows this form.
	PostDerivativeCondition Condition

	// Forced forms are literal texts attached by predefined paths.
	Forced bool
}

// NewForcedForm creates a condition-free form that is not registered on the
// suffix. Predefined paths use it to pin a literal surface text.
func NewForcedForm(s *Suffix, literal string) *SuffixForm {
	return &SuffixForm{Suffix: s, Form: literal, Forced: true}
}

func (f *SuffixForm) String() string {
	return fmt.Sprintf("%s(%s)", f.Suffix.Name, f.Form)
}

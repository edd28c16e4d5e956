package phonetics

import (
	"strings"
	"sync"

	"github.com/aretw0/trnltk/pkg/domain"
)

// Engine answers the phonetic questions the suffix applier asks: can a form
// follow a surface, how is it realized, and does the realization match the
// input. It is safe for concurrent use once Precache has returned.
type Engine struct {
	compiled sync.Map // form -> *FormSequence

	sets      *AttributeSets
	precached map[string]map[domain.PhoneticAttributes]string
}

// NewEngine creates an engine backed by the valid attribute-set table.
func NewEngine() *Engine {
	return &Engine{sets: NewAttributeSets()}
}

// Sets returns the table of valid attribute combinations.
func (e *Engine) Sets() *AttributeSets { return e.sets }

// Precache realizes every form against every valid attribute set so that
// Apply becomes a lookup. It must complete before the engine is shared.
func (e *Engine) Precache(forms []string) error {
	if e.precached == nil {
		e.precached = make(map[string]map[domain.PhoneticAttributes]string, len(forms))
	}
	for _, form := range forms {
		if _, done := e.precached[form]; done {
			continue
		}
		seq, err := e.compile(form)
		if err != nil {
			return err
		}
		table := make(map[domain.PhoneticAttributes]string, e.sets.Len())
		for _, attrs := range e.sets.All() {
			table[attrs] = seq.Apply(attrs)
		}
		e.precached[form] = table
	}
	return nil
}

func (e *Engine) compile(form string) (*FormSequence, error) {
	if v, ok := e.compiled.Load(form); ok {
		return v.(*FormSequence), nil
	}
	seq, err := Compile(form)
	if err != nil {
		return nil, err
	}
	v, _ := e.compiled.LoadOrStore(form, seq)
	return v.(*FormSequence), nil
}

// Attributes implements domain.AttributeCalculator.
func (e *Engine) Attributes(surface string, lexAttrs domain.LexemeAttributes) domain.PhoneticAttributes {
	return Attributes(surface, lexAttrs)
}

// IsApplicable reports whether form may follow a surface with attrs.
// Invalid templates are never applicable.
func (e *Engine) IsApplicable(attrs domain.PhoneticAttributes, form string) bool {
	seq, err := e.compile(form)
	if err != nil {
		return false
	}
	return seq.IsApplicable(attrs)
}

// Apply realizes form after surface. It returns the possibly modified
// surface (final stop voicing, as in kitap -> kitab) and the realized form.
func (e *Engine) Apply(surface string, attrs domain.PhoneticAttributes, form string, lexAttrs domain.LexemeAttributes) (string, string) {
	if strings.TrimSpace(surface) == "" || strings.TrimSpace(form) == "" {
		return surface, ""
	}
	seq, err := e.compile(form)
	if err != nil {
		return surface, ""
	}
	modified := surface
	if !lexAttrs.Has(domain.NoVoicing) && attrs.Has(domain.LastLetterVoicelessStop) && seq.FirstLetterVowel() {
		modified = VoiceLast(surface)
	}
	if table, ok := e.precached[form]; ok {
		if fitting, ok := table[attrs]; ok {
			return modified, fitting
		}
	}
	return modified, seq.Apply(attrs)
}

// ExpectationsSatisfied reports whether form meets every expectation.
// An optional leading letter ("+yA") satisfies an expectation if either
// reading of the form does.
func (e *Engine) ExpectationsSatisfied(expectations domain.PhoneticExpectations, form string) bool {
	if expectations.IsEmpty() {
		return true
	}
	form = strings.TrimSpace(form)
	if form == "" {
		return false
	}
	rs := []rune(form)
	for _, exp := range expectations.List() {
		if !expectationSatisfied(exp, rs) {
			return false
		}
	}
	return true
}

func expectationSatisfied(exp domain.PhoneticExpectation, form []rune) bool {
	if len(form) == 0 {
		return false
	}
	if form[0] == '+' {
		return expectationSatisfied(exp, form[1:]) || (len(form) > 2 && expectationSatisfied(exp, form[2:]))
	}
	if exp == domain.VowelStart {
		return IsVowel(form[0])
	}
	return !IsVowel(form[0])
}

// ApplicationMatches reports whether input starts with applied. With
// voicingAllowed the last letter of applied may appear voiced in input
// ("gelecek" matching "geleceğ-im").
func (e *Engine) ApplicationMatches(input, applied string, voicingAllowed bool) bool {
	if strings.TrimSpace(applied) == "" {
		return false
	}
	in := []rune(input)
	ap := []rune(applied)
	if len(ap) > len(in) {
		return false
	}
	if strings.HasPrefix(input, applied) {
		return true
	}
	if !voicingAllowed {
		return false
	}
	last := len(ap) - 1
	if !strings.HasPrefix(input, string(ap[:last])) {
		return false
	}
	voiced, ok := Voice(ap[last])
	return ok && in[last] == voiced
}

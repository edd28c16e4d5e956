package redis

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/phonetics"
)

// GraphLookup resolves the names stored in a record against the live graph.
type GraphLookup interface {
	State(name string) (*domain.State, error)
	Suffix(name string) (*domain.Suffix, error)
	SuffixForm(suffixName, form string) (*domain.SuffixForm, error)
}

type rootRecord struct {
	Sequence     string `msgpack:"seq"`
	Lemma        string `msgpack:"lemma"`
	LemmaRoot    string `msgpack:"lemma_root"`
	PrimaryPos   string `msgpack:"pos"`
	SecondaryPos string `msgpack:"spos,omitempty"`
	Lexeme       uint32 `msgpack:"lex_attrs"`
	Phonetic     uint16 `msgpack:"phon_attrs"`
	Expectations uint8  `msgpack:"expectations"`
}

type transitionRecord struct {
	Suffix  string `msgpack:"suffix"`
	Form    string `msgpack:"form"`
	Forced  bool   `msgpack:"forced,omitempty"`
	Actual  string `msgpack:"actual"`
	Fitting string `msgpack:"fitting"`
	Target  string `msgpack:"target"`
}

type record struct {
	Root        rootRecord         `msgpack:"root"`
	RootState   string             `msgpack:"root_state"`
	Transitions []transitionRecord `msgpack:"transitions"`
}

func encode(results []*domain.Container) ([]byte, error) {
	records := make([]record, len(results))
	for i, c := range results {
		root := c.Root()
		rec := record{
			Root: rootRecord{
				Sequence:     root.Sequence,
				Lemma:        root.Lexeme.Lemma,
				LemmaRoot:    root.Lexeme.LemmaRoot,
				PrimaryPos:   string(root.Lexeme.PrimaryPos),
				SecondaryPos: string(root.Lexeme.SecondaryPos),
				Lexeme:       uint32(root.Lexeme.Attributes),
				Phonetic:     uint16(root.PhoneticAttributes),
				Expectations: uint8(root.Expectations),
			},
			RootState: c.RootState().Name,
		}
		for _, t := range c.Transitions() {
			rec.Transitions = append(rec.Transitions, transitionRecord{
				Suffix:  t.Suffix().Name,
				Form:    t.Application.Form.Form,
				Forced:  t.Application.Form.Forced,
				Actual:  t.Application.Actual,
				Fitting: t.Application.Fitting,
				Target:  t.Target.Name,
			})
		}
		records[i] = rec
	}
	return msgpack.Marshal(records)
}

func decode(data []byte, g GraphLookup) ([]*domain.Container, error) {
	var records []record
	if err := msgpack.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analyses: %w", err)
	}
	out := make([]*domain.Container, 0, len(records))
	for _, rec := range records {
		c, err := rec.container(g)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (rec record) container(g GraphLookup) (*domain.Container, error) {
	root := &domain.Root{
		Sequence: rec.Root.Sequence,
		Lexeme: &domain.Lexeme{
			Lemma:        rec.Root.Lemma,
			LemmaRoot:    rec.Root.LemmaRoot,
			PrimaryPos:   domain.PrimaryPos(rec.Root.PrimaryPos),
			SecondaryPos: domain.SecondaryPos(rec.Root.SecondaryPos),
			Attributes:   domain.LexemeAttributes(rec.Root.Lexeme),
		},
		PhoneticAttributes: domain.PhoneticAttributes(rec.Root.Phonetic),
		Expectations:       domain.PhoneticExpectations(rec.Root.Expectations),
	}
	state, err := g.State(rec.RootState)
	if err != nil {
		return nil, err
	}

	c := domain.NewContainer(root, state, "")
	for _, t := range rec.Transitions {
		form, err := t.form(g)
		if err != nil {
			return nil, err
		}
		target, err := g.State(t.Target)
		if err != nil {
			return nil, err
		}
		c = c.Append(domain.SuffixFormApplication{Form: form, Actual: t.Actual, Fitting: t.Fitting}, target, phonetics.Attributes)
	}
	return c, nil
}

// form returns the registered form, or a forced one for predefined-path
// literals the graph does not know.
func (t transitionRecord) form(g GraphLookup) (*domain.SuffixForm, error) {
	if !t.Forced {
		form, err := g.SuffixForm(t.Suffix, t.Form)
		if err == nil {
			return form, nil
		}
		if !errors.Is(err, domain.ErrUnknownSuffixForm) {
			return nil, err
		}
	}
	suffix, err := g.Suffix(t.Suffix)
	if err != nil {
		return nil, err
	}
	return domain.NewForcedForm(suffix, t.Form), nil
}

package lexicon

import (
	"fmt"
	"strings"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/phonetics"
)

// modifiers are the lexeme attributes that give a lexeme a second surface.
var modifiers = domain.NewLexemeAttributes(
	domain.Doubling,
	domain.LastVowelDrop,
	domain.ProgressiveVowelDrop,
	domain.InverseHarmony,
	domain.Voicing,
	domain.VoicingOpt,
	domain.RootChange,
)

type rootChangeKey struct {
	lemma string
	pos   domain.PrimaryPos
}

// rootChanges lists the irregular stems. An empty pos matches any part of
// speech.
var rootChanges = map[rootChangeKey]string{
	{"ben", domain.PosPronoun}:     "ban",
	{"sen", domain.PosPronoun}:     "san",
	{"demek", domain.PosVerb}:      "di",
	{"yemek", domain.PosVerb}:      "yi",
	{"hepsi", domain.PosPronoun}:   "hep",
	{"ora", domain.PosPronoun}:     "or",
	{"bura", domain.PosPronoun}:    "bur",
	{"şura", domain.PosPronoun}:    "şur",
	{"nere", domain.PosPronoun}:    "ner",
	{"birbiri", domain.PosPronoun}: "birbir",
	{"içeri", ""}:                  "içer",
	{"dışarı", ""}:                 "dışar",
}

// RootGenerator turns lexemes into the roots the parser can start from.
type RootGenerator struct {
	circumflex bool
}

// GeneratorOption configures a RootGenerator.
type GeneratorOption func(*RootGenerator)

// WithCircumflexConversion also emits every root with â, î, û replaced by
// their plain vowels, so "hala" finds the lexeme "hâlâ".
func WithCircumflexConversion() GeneratorOption {
	return func(g *RootGenerator) {
		g.circumflex = true
	}
}

func NewRootGenerator(opts ...GeneratorOption) *RootGenerator {
	g := &RootGenerator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the roots of lex. A lexeme without surface-changing
// attributes has exactly one root.
func (g *RootGenerator) Generate(lex *domain.Lexeme) ([]*domain.Root, error) {
	roots, err := generate(lex)
	if err != nil {
		return nil, err
	}
	if g.circumflex {
		roots = withPlainVowels(roots)
	}
	return roots, nil
}

// GenerateAll generates the roots of every lexeme.
func (g *RootGenerator) GenerateAll(lexemes []*domain.Lexeme) ([]*domain.Root, error) {
	var all []*domain.Root
	for _, lex := range lexemes {
		roots, err := g.Generate(lex)
		if err != nil {
			return nil, err
		}
		all = append(all, roots...)
	}
	return all, nil
}

func generate(lex *domain.Lexeme) ([]*domain.Root, error) {
	attrs := lex.Attributes
	if attrs&modifiers == 0 {
		return []*domain.Root{{
			Sequence:           lex.LemmaRoot,
			Lexeme:             lex,
			PhoneticAttributes: phonetics.Attributes(lex.LemmaRoot, attrs),
		}}, nil
	}
	if attrs.Has(domain.RootChange) {
		return changedRoots(lex)
	}

	modified := []rune(lex.LemmaRoot)
	origAttrs := phonetics.Attributes(lex.LemmaRoot, 0)
	modAttrs := origAttrs
	var origExp, modExp domain.PhoneticExpectations

	if attrs.Has(domain.Voicing) || attrs.Has(domain.VoicingOpt) {
		last := modified[len(modified)-1]
		voiced, ok := phonetics.Voice(last)
		if strings.HasSuffix(lex.LemmaRoot, "nk") {
			voiced, ok = 'g', true
		}
		if !ok {
			return nil, fmt.Errorf("%s: final %q cannot be voiced: %w", lex, last, domain.ErrInvalidLexeme)
		}
		modified[len(modified)-1] = voiced
		modAttrs = modAttrs.Without(domain.LastLetterVoicelessStop)
		if !attrs.Has(domain.VoicingOpt) {
			origExp = origExp.With(domain.ConsonantStart)
		}
		modExp = modExp.With(domain.VowelStart)
	}

	if attrs.Has(domain.Doubling) {
		modified = append(modified, modified[len(modified)-1])
		origExp = origExp.With(domain.ConsonantStart)
		modExp = modExp.With(domain.VowelStart)
	}

	if attrs.Has(domain.LastVowelDrop) {
		if len(modified) < 2 {
			return nil, fmt.Errorf("%s: too short for a vowel drop: %w", lex, domain.ErrInvalidLexeme)
		}
		n := len(modified)
		modified = append(modified[:n-2], modified[n-1])
		if lex.PrimaryPos != domain.PosVerb {
			origExp = origExp.With(domain.ConsonantStart)
		}
		modExp = modExp.With(domain.VowelStart)
	}

	if attrs.Has(domain.InverseHarmony) {
		origAttrs = origAttrs.With(domain.LastVowelFrontal).Without(domain.LastVowelBack)
		modAttrs = modAttrs.With(domain.LastVowelFrontal).Without(domain.LastVowelBack)
	}

	if attrs.Has(domain.ProgressiveVowelDrop) {
		modified = modified[:len(modified)-1]
		if vowelCount(modified) > 0 {
			modAttrs = phonetics.Attributes(string(modified), 0)
		}
		modExp = modExp.With(domain.VowelStart)
	}

	original := &domain.Root{
		Sequence:           lex.LemmaRoot,
		Lexeme:             lex,
		PhoneticAttributes: origAttrs,
		Expectations:       origExp,
	}
	changed := &domain.Root{
		Sequence:           string(modified),
		Lexeme:             lex,
		PhoneticAttributes: modAttrs,
		Expectations:       modExp,
	}
	if original.Key() == changed.Key() {
		return []*domain.Root{original}, nil
	}
	return []*domain.Root{original, changed}, nil
}

func changedRoots(lex *domain.Lexeme) ([]*domain.Root, error) {
	changed, ok := rootChanges[rootChangeKey{lex.Lemma, lex.PrimaryPos}]
	if !ok {
		changed, ok = rootChanges[rootChangeKey{lex.Lemma, ""}]
	}
	if !ok {
		return nil, fmt.Errorf("%s: no irregular stem known: %w", lex, domain.ErrInvalidLexeme)
	}

	plain := *lex
	plain.Attributes = lex.Attributes.Without(domain.RootChange)
	return []*domain.Root{
		{
			Sequence:           plain.LemmaRoot,
			Lexeme:             &plain,
			PhoneticAttributes: phonetics.Attributes(plain.LemmaRoot, plain.Attributes),
		},
		{
			Sequence:           changed,
			Lexeme:             &plain,
			PhoneticAttributes: phonetics.Attributes(changed, plain.Attributes),
		},
	}, nil
}

var plainVowels = strings.NewReplacer("â", "a", "î", "i", "û", "u")

func withPlainVowels(roots []*domain.Root) []*domain.Root {
	out := roots
	seen := make(map[string]bool, len(roots))
	for _, r := range roots {
		seen[r.Key()] = true
	}
	for _, r := range roots {
		plain := plainVowels.Replace(r.Sequence)
		if plain == r.Sequence {
			continue
		}
		c := *r
		c.Sequence = plain
		if !seen[c.Key()] {
			seen[c.Key()] = true
			out = append(out, &c)
		}
	}
	return out
}

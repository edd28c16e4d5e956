package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders an analysis with the lemma root and pretty suffix names,
// e.g. "kitap+Noun+A3sg+Pnon+Dat". Free transitions are omitted.
func Format(c *Container) string {
	var b strings.Builder
	lexeme := c.Root().Lexeme
	b.WriteString(lexeme.LemmaRoot)
	b.WriteByte('+')
	b.WriteString(string(c.RootState().PrimaryPos))
	if lexeme.SecondaryPos != SecNone {
		b.WriteByte('+')
		b.WriteString(string(lexeme.SecondaryPos))
	}
	writeTransitions(&b, c, false)
	return b.String()
}

// FormatWithForms renders an analysis with the root surface, the lemma and
// each suffix's template and consumed text, e.g.
// "kitab(kitap)+Noun+A3sg+Pnon+Dat(+yA[a])".
func FormatWithForms(c *Container) string {
	var b strings.Builder
	root := c.Root()
	fmt.Fprintf(&b, "%s(%s)+%s", root.Sequence, root.Lexeme.Lemma, c.RootState().PrimaryPos)
	if root.Lexeme.SecondaryPos != SecNone {
		b.WriteByte('+')
		b.WriteString(string(root.Lexeme.SecondaryPos))
	}
	writeTransitions(&b, c, true)
	return b.String()
}

func writeTransitions(b *strings.Builder, c *Container, withForms bool) {
	for _, t := range c.Transitions() {
		if t.Suffix().IsFree() {
			continue
		}
		b.WriteByte('+')
		if t.IsDerivational() {
			b.WriteString(string(t.Target.PrimaryPos))
			b.WriteByte('+')
			if t.Target.SecondaryPos != SecNone {
				b.WriteString(string(t.Target.SecondaryPos))
				b.WriteByte('+')
			}
		}
		actual := t.Application.Actual
		if withForms && strings.TrimSpace(actual) != "" && isAlphanumeric(actual) {
			fmt.Fprintf(b, "%s(%s[%s])", t.Suffix().PrettyName, t.Application.Form.Form, actual)
		} else {
			b.WriteString(t.Suffix().PrettyName)
		}
	}
}

// Secondary categories that are dropped from derivation-grouped output.
var groupingSkips = map[PrimaryPos]map[SecondaryPos]bool{
	PosAdverb:    {SecQuestion: true, SecTime: true},
	PosAdjective: {SecQuestion: true},
}

// FormatDerivations renders one quoted group per derivation window,
// e.g. `(1,"kitap+Noun+A3sg+Pnon+Nom")(2,"Adj+With")`.
func FormatDerivations(c *Container) string {
	groups := derivationGroups(c)
	var b strings.Builder
	for i, g := range groups {
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(",\"")
		b.WriteString(strings.Join(g, "+"))
		b.WriteString("\")")
	}
	return b.String()
}

func derivationGroups(c *Container) [][]string {
	lexeme := c.Root().Lexeme
	head := []string{lexeme.LemmaRoot, string(lexeme.PrimaryPos)}
	if lexeme.SecondaryPos != SecNone && !groupingSkips[lexeme.PrimaryPos][lexeme.SecondaryPos] {
		head = append(head, string(lexeme.SecondaryPos))
	}

	var groups [][]string
	current := head
	for _, t := range c.Transitions() {
		if t.IsDerivational() {
			groups = append(groups, current)
			current = []string{string(t.Target.PrimaryPos)}
		}
		if t.Suffix().IsFree() {
			continue
		}
		current = append(current, t.Suffix().PrettyName)
	}
	return append(groups, current)
}

// Analysis is a structured rendering of a result, suitable for JSON output.
type Analysis struct {
	Surface   string         `json:"surface"`
	Root      string         `json:"root"`
	LemmaRoot string         `json:"lemma_root"`
	RootPos   PrimaryPos     `json:"root_pos"`
	RootSpos  SecondaryPos   `json:"root_spos,omitempty"`
	Formatted string         `json:"formatted"`
	Parts     []AnalysisPart `json:"parts,omitempty"`
}

// AnalysisPart groups the suffixes of one derivation window.
type AnalysisPart struct {
	Pos      PrimaryPos   `json:"pos"`
	Spos     SecondaryPos `json:"spos,omitempty"`
	Suffixes []string     `json:"suffixes,omitempty"`
}

// Detailed builds the structured form of c.
func Detailed(c *Container) Analysis {
	root := c.Root()
	a := Analysis{
		Surface:   c.SurfaceSoFar(),
		Root:      root.Sequence,
		LemmaRoot: root.Lexeme.LemmaRoot,
		RootPos:   root.Lexeme.PrimaryPos,
		RootSpos:  root.Lexeme.SecondaryPos,
		Formatted: FormatWithForms(c),
	}
	var part *AnalysisPart
	for i, t := range c.Transitions() {
		if i == 0 || t.IsDerivational() {
			if part != nil {
				a.Parts = append(a.Parts, *part)
			}
			part = &AnalysisPart{Pos: t.Target.PrimaryPos, Spos: t.Target.SecondaryPos}
		}
		if t.Suffix().IsFree() {
			continue
		}
		part.Suffixes = append(part.Suffixes, t.Suffix().PrettyName)
	}
	if part != nil {
		a.Parts = append(a.Parts, *part)
	}
	return a
}

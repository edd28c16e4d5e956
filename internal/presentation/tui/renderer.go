package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/trnltk/pkg/domain"
)

// Renderer prints analyses for humans. Colors are dropped automatically
// when the writer is not a terminal.
type Renderer struct {
	out       *termenv.Output
	withForms bool
}

// NewRenderer writes to w. withForms prints suffix templates and the text
// each suffix consumed.
func NewRenderer(w io.Writer, withForms bool, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...), withForms: withForms}
}

// Render prints every analysis of word, numbered.
func (r *Renderer) Render(word string, results []*domain.Container) {
	fmt.Fprintln(r.out, r.out.String(word).Bold())
	if len(results) == 0 {
		fmt.Fprintln(r.out, "  "+r.out.String("no analysis").Faint().String())
		return
	}
	for i, c := range results {
		fmt.Fprintf(r.out, "  %d. %s\n", i+1, r.analysis(c))
	}
}

func (r *Renderer) analysis(c *domain.Container) string {
	text := domain.Format(c)
	if r.withForms {
		text = domain.FormatWithForms(c)
	}
	root, rest, _ := strings.Cut(text, "+")

	var b strings.Builder
	b.WriteString(r.out.String(root).Foreground(r.out.Color("#818cf8")).Bold().String())
	for _, tag := range strings.Split(rest, "+") {
		b.WriteString(r.out.String("+").Faint().String())
		b.WriteString(r.out.String(tag).Foreground(r.out.Color("#f472b6")).String())
	}
	return b.String()
}

package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/trnltk/pkg/domain"
)

// Graph is the read-only view of a suffix graph the validator walks.
type Graph interface {
	Name() string
	States() []*domain.State
	Suffixes() []*domain.Suffix
	DefaultStateForRoot(root *domain.Root) (*domain.State, error)
}

// PredefinedOnly lists the suffixes of the built-in graphs that have no
// forms of their own and are only reached through predefined paths.
var PredefinedOnly = []string{"A1Sg_Pron", "A2Sg_Pron", "A1Pl_Pron", "A2Pl_Pron"}

// Report is the outcome of a graph validation.
type Report struct {
	Graph      string
	States     int
	Suffixes   int
	RootStates []string
	Errors     []string
}

// Err folds the report into a single error, or nil when the graph is sound.
func (r Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("graph %q: found %d errors:\n- %s", r.Graph, len(r.Errors), strings.Join(r.Errors, "\n- "))
}

// ValidateGraph checks that every state is reachable from a root state and
// can still end in a terminal state, and that every suffix is both used and
// realizable. Suffixes in allowFormless may have no forms.
func ValidateGraph(g Graph, allowFormless ...string) Report {
	report := Report{Graph: g.Name(), States: len(g.States()), Suffixes: len(g.Suffixes())}

	incoming := make(map[*domain.State][]*domain.State)
	used := make(map[*domain.Suffix]bool)
	for _, s := range g.States() {
		for _, e := range s.Edges() {
			incoming[e.Target] = append(incoming[e.Target], s)
			used[e.Suffix] = true
		}
	}

	roots := rootStates(g)
	for _, s := range roots {
		report.RootStates = append(report.RootStates, s.Name)
	}
	if len(roots) == 0 {
		report.Errors = append(report.Errors, "no root state: no category maps to a state")
	}

	reached := make(map[*domain.State]bool)
	queue := append([]*domain.State(nil), roots...)
	for _, s := range roots {
		reached[s] = true
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, e := range current.Edges() {
			if !reached[e.Target] {
				reached[e.Target] = true
				queue = append(queue, e.Target)
			}
		}
	}
	for _, s := range g.States() {
		if !reached[s] {
			report.Errors = append(report.Errors, fmt.Sprintf("unreachable: state '%s' is not reached from any root state", s.Name))
		}
	}

	// Walk backwards from the terminal states; whatever is not reached can
	// never finish an analysis.
	finishing := make(map[*domain.State]bool)
	for _, s := range g.States() {
		if s.Type == domain.Terminal {
			finishing[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, prev := range incoming[current] {
			if !finishing[prev] {
				finishing[prev] = true
				queue = append(queue, prev)
			}
		}
	}
	for _, s := range g.States() {
		if !finishing[s] {
			report.Errors = append(report.Errors, fmt.Sprintf("dead end: state '%s' cannot reach a terminal state", s.Name))
		}
	}

	allowed := make(map[string]bool, len(allowFormless))
	for _, name := range allowFormless {
		allowed[name] = true
	}
	for _, suffix := range g.Suffixes() {
		if !used[suffix] {
			report.Errors = append(report.Errors, fmt.Sprintf("unused suffix: '%s' labels no edge", suffix.Name))
		}
		if len(suffix.Forms()) == 0 && !allowed[suffix.Name] {
			report.Errors = append(report.Errors, fmt.Sprintf("formless suffix: '%s' has no forms", suffix.Name))
		}
	}
	return report
}

// declaringGraph is implemented by graphs with start states that belong to
// single roots instead of whole categories.
type declaringGraph interface {
	DeclaredRootStates() []*domain.State
}

// rootStates asks the graph for the start state of a sample root of every
// category, then adds the declared ones.
func rootStates(g Graph) []*domain.State {
	seen := make(map[*domain.State]bool)
	var out []*domain.State
	add := func(s *domain.State) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, pos := range domain.PrimaryPosValues() {
		for _, spos := range domain.SecondaryPosValues() {
			sample := &domain.Root{Lexeme: &domain.Lexeme{PrimaryPos: pos, SecondaryPos: spos}}
			if s, err := g.DefaultStateForRoot(sample); err == nil {
				add(s)
			}
		}
	}
	if dg, ok := g.(declaringGraph); ok {
		for _, s := range dg.DeclaredRootStates() {
			add(s)
		}
	}
	return out
}

package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/trnltk/pkg/domain"
)

// GraphOverlay highlights an analysis on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
}

// OverlayFor marks the states an analysis went through.
func OverlayFor(c *domain.Container) *GraphOverlay {
	overlay := &GraphOverlay{VisitedStates: []string{c.RootState().Name}}
	for _, t := range c.Transitions() {
		overlay.VisitedStates = append(overlay.VisitedStates, t.Target.Name)
	}
	overlay.CurrentState = c.LastState().Name
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart of the suffix graph.
// Shapes follow the state type:
// - Terminal: ((Circle))
// - Derivational: [[Subroutine]]
// - Transfer: [Rectangle]
// Free transitions are drawn dotted and unlabelled.
func GenerateMermaid(states []*domain.State, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, state := range states {
		safeID := sanitizeMermaidID(state.Name)

		opener, closer := "[", "]"
		switch state.Type {
		case domain.Terminal:
			opener, closer = "((", "))"
		case domain.Derivational:
			opener, closer = "[[", "]]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, state.Name, closer)

		for _, e := range state.Edges() {
			safeTo := sanitizeMermaidID(e.Target.Name)
			if e.Suffix.IsFree() {
				fmt.Fprintf(&sb, "    %s -.-> %s\n", safeID, safeTo)
				continue
			}
			label := strings.ReplaceAll(e.Suffix.PrettyName, "\"", "'")
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, label, safeTo)
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visited := make(map[string]bool)
		for _, name := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(name)
			if !visited[safeID] && safeID != "" {
				visited[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}
		if overlay.CurrentState != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentState))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "+", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

package domain

// StateType decides how a graph state takes part in the traversal.
type StateType uint8

const (
	// Transfer states are intermediate.
	Transfer StateType = iota
	// Derivational states start a new derivation window when left.
	Derivational
	// Terminal states may end an analysis.
	Terminal
)

func (t StateType) String() string {
	switch t {
	case Derivational:
		return "DERIVATIONAL"
	case Terminal:
		return "TERMINAL"
	default:
		return "TRANSFER"
	}
}

// State is a node of the suffix graph.
type State struct {
	Name         string
	Type         StateType
	PrimaryPos   PrimaryPos
	SecondaryPos SecondaryPos

	edges []Edge
}

// Edge is an outgoing suffix-labelled arc of a state.
type Edge struct {
	Suffix *Suffix
	Target *State
}

func NewState(name string, typ StateType, pos PrimaryPos, spos SecondaryPos) *State {
	return &State{Name: name, Type: typ, PrimaryPos: pos, SecondaryPos: spos}
}

// Connect adds an outgoing edge. Duplicate edges are ignored.
// Only graph construction code should call this.
func (s *State) Connect(suffix *Suffix, target *State) {
	for _, e := range s.edges {
		if e.Suffix == suffix && e.Target == target {
			return
		}
	}
	s.edges = append(s.edges, Edge{Suffix: suffix, Target: target})
}

// Edges returns the outgoing edges in registration order.
func (s *State) Edges() []Edge { return s.edges }

// HasEdge reports whether suffix leads from s to target.
func (s *State) HasEdge(suffix *Suffix, target *State) bool {
	for _, e := range s.edges {
		if e.Suffix == suffix && e.Target == target {
			return true
		}
	}
	return false
}

func (s *State) String() string { return s.Name }

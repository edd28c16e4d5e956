package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/ports"
)

// DefaultMaxCandidates bounds the number of containers a single parse may create.
const DefaultMaxCandidates = 10000

// StateLookup resolves the start state of a root.
type StateLookup interface {
	DefaultStateForRoot(root *domain.Root) (*domain.State, error)
}

// Parser walks the suffix graph from every root of every prefix of a word.
// A Parser holds no per-call state and is safe for concurrent use.
type Parser struct {
	graph     StateLookup
	finder    ports.RootFinder
	applier   *SuffixApplier
	mandatory *MandatoryTransitionApplier
	paths     ports.PathProvider
	logger    *slog.Logger

	maxCandidates int
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithLogger sets the logger used for rejected candidates and results.
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithPathProvider enables predefined paths for irregular roots.
func WithPathProvider(paths ports.PathProvider) ParserOption {
	return func(p *Parser) {
		p.paths = paths
	}
}

// WithMandatory sets the mandatory transition applier.
func WithMandatory(m *MandatoryTransitionApplier) ParserOption {
	return func(p *Parser) {
		p.mandatory = m
	}
}

// WithMaxCandidates sets the candidate budget of a single parse.
// Zero or less disables the limit.
func WithMaxCandidates(n int) ParserOption {
	return func(p *Parser) {
		p.maxCandidates = n
	}
}

// NewParser creates a parser over the given graph and root finder.
func NewParser(graph StateLookup, finder ports.RootFinder, applier *SuffixApplier, opts ...ParserOption) *Parser {
	p := &Parser{
		graph:         graph,
		finder:        finder,
		applier:       applier,
		logger:        discardLogger(),
		maxCandidates: DefaultMaxCandidates,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.mandatory == nil {
		p.mandatory = NewMandatoryTransitionApplier(applier, p.logger)
	}
	return p
}

// Parse returns every complete analysis of input. A word the graph cannot
// analyse yields an empty slice and no error. Errors are configuration
// problems (a root without start state, paths used before initialization),
// cancellation, or ErrParseAborted when the candidate budget runs out.
func (p *Parser) Parse(ctx context.Context, input string) ([]*domain.Container, error) {
	candidates, err := p.seed(input)
	if err != nil {
		return nil, err
	}

	candidates, err = p.mandatory.Apply(candidates, input)
	if err != nil {
		return nil, err
	}

	results, err := p.traverse(ctx, candidates, input)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("parsed", "surface", input, "results", len(results))
	return results, nil
}

func (p *Parser) seed(input string) ([]*domain.Container, error) {
	var candidates []*domain.Container
	rs := []rune(input)
	for i := 0; i <= len(rs); i++ {
		partial := string(rs[:i])
		for _, root := range p.finder.FindRoots(partial, input) {
			seeded, err := p.seedRoot(root, input)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, seeded...)
		}
	}
	return candidates, nil
}

func (p *Parser) seedRoot(root *domain.Root, input string) ([]*domain.Container, error) {
	if !strings.HasPrefix(input, root.Sequence) {
		p.logger.Debug("root does not start the input, dropping it", "root", root, "surface", input)
		return nil, nil
	}

	if p.paths != nil {
		lexRoot := root.Canonical()
		has, err := p.paths.HasPaths(lexRoot)
		if err != nil {
			return nil, err
		}
		if has {
			paths, err := p.paths.Paths(lexRoot)
			if err != nil {
				return nil, err
			}
			var out []*domain.Container
			for _, path := range paths {
				if lexRoot != root {
					path = path.Respell(root)
				}
				soFar := path.SurfaceSoFar()
				if strings.HasPrefix(input, soFar) {
					out = append(out, path.Rebase(input[len(soFar):]))
				}
			}
			return out, nil
		}
	}

	state, err := p.graph.DefaultStateForRoot(root)
	if err != nil {
		return nil, fmt.Errorf("failed to seed root %s: %w", root, err)
	}
	return []*domain.Container{domain.NewContainer(root, state, input[len(root.Sequence):])}, nil
}

func (p *Parser) traverse(ctx context.Context, candidates []*domain.Container, input string) ([]*domain.Container, error) {
	results := make([]*domain.Container, 0)
	created := len(candidates)

	for len(candidates) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var next []*domain.Container
		for _, c := range candidates {
			if c.LastState().Type == domain.Terminal {
				if c.Remaining() == "" {
					results = append(results, c)
				}
				continue
			}
			for _, edge := range p.eligibleEdges(c) {
				for _, n := range p.applier.TryAllForms(c, edge.Suffix, edge.Target, input) {
					created++
					switch {
					case n.LastState().Type != domain.Terminal:
						next = append(next, n)
					case n.Remaining() == "":
						results = append(results, n)
					}
				}
			}
			if p.maxCandidates > 0 && created > p.maxCandidates {
				return nil, fmt.Errorf("%w: %q created more than %d candidates", domain.ErrParseAborted, input, p.maxCandidates)
			}
		}
		candidates = next
	}

	for _, r := range results {
		if !r.IsResult() {
			panic(fmt.Sprintf("runtime: incomplete candidate left after traversal: %s", r))
		}
	}
	return results, nil
}

func (p *Parser) eligibleEdges(c *domain.Container) []domain.Edge {
	edges := c.LastState().Edges()
	out := make([]domain.Edge, 0, len(edges))
	for _, e := range edges {
		if c.UsedSinceDerivation(e.Suffix) || c.GroupUsedSinceDerivation(e.Suffix.Group) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

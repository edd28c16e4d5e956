package trnltk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	core "github.com/aretw0/trnltk/internal/runtime"
	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/dsl"
	"github.com/aretw0/trnltk/pkg/graph"
	"github.com/aretw0/trnltk/pkg/lexicon"
	"github.com/aretw0/trnltk/pkg/phonetics"
	"github.com/aretw0/trnltk/pkg/rootfinder"
)

// Analyzer is the high-level entry point of the library. It wires the
// suffix graph, the lexicon, the root finders and the predefined paths into
// a parser and implements ports.MorphologicParser.
type Analyzer struct {
	graph   *graph.Graph
	lexicon *lexicon.Lexicon
	paths   *dsl.PredefinedPaths
	parser  *core.Parser
	hooks   domain.LifecycleHooks
	logger  *slog.Logger

	graphName     string
	dictionaries  []string
	noEmbedded    bool
	circumflex    bool
	guessProper   bool
	bruteForce    bool
	maxCandidates int
	workers       int
	disallowed    []core.DisallowedPath
	disallowedSet bool
}

// Option defines a functional option for configuring the Analyzer.
type Option func(*Analyzer)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithGraph uses an already built suffix graph.
func WithGraph(g *graph.Graph) Option {
	return func(a *Analyzer) {
		a.graph = g
	}
}

// WithGraphName selects one of the built-in graphs (see graph.ByName).
func WithGraphName(name string) Option {
	return func(a *Analyzer) {
		a.graphName = name
	}
}

// WithLexicon uses an already loaded lexicon instead of the embedded one.
func WithLexicon(lx *lexicon.Lexicon) Option {
	return func(a *Analyzer) {
		a.lexicon = lx
	}
}

// WithDictionaryFile adds the lexemes of a dictionary file to the lexicon.
func WithDictionaryFile(path string) Option {
	return func(a *Analyzer) {
		a.dictionaries = append(a.dictionaries, path)
	}
}

// WithoutEmbeddedLexicon builds the lexicon from the dictionary files
// alone. The irregular root paths are skipped since their roots may be
// missing.
func WithoutEmbeddedLexicon() Option {
	return func(a *Analyzer) {
		a.noEmbedded = true
	}
}

// WithCircumflexConversion lets plain vowels match circumflexed lexemes
// ("hala" finds "hâlâ").
func WithCircumflexConversion() Option {
	return func(a *Analyzer) {
		a.circumflex = true
	}
}

// WithProperNounGuessing treats every prefix of a capitalised word without
// an apostrophe as a possible proper noun.
func WithProperNounGuessing() Option {
	return func(a *Analyzer) {
		a.guessProper = true
	}
}

// WithBruteForceNouns reads every prefix of a word as a possible noun
// root, so words missing from the lexicon still get noun analyses.
func WithBruteForceNouns() Option {
	return func(a *Analyzer) {
		a.bruteForce = true
	}
}

// WithMaxCandidates bounds the candidates a single parse may create
// (default runtime.DefaultMaxCandidates). Zero disables the bound.
func WithMaxCandidates(n int) Option {
	return func(a *Analyzer) {
		a.maxCandidates = n
	}
}

// WithConcurrency sets how many words ParseAll analyses at once
// (default GOMAXPROCS).
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		a.workers = n
	}
}

// WithDisallowedPaths replaces the default disallowed suffix sequences.
func WithDisallowedPaths(paths ...core.DisallowedPath) Option {
	return func(a *Analyzer) {
		a.disallowed = paths
		a.disallowedSet = true
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Analyzer) {
		a.hooks = hooks
	}
}

// New builds an Analyzer. Configuration problems (unknown graph, broken
// dictionary, predefined paths that do not fit the graph) are returned here
// rather than at parse time.
func New(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{maxCandidates: core.DefaultMaxCandidates}
	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if a.workers <= 0 {
		a.workers = runtime.GOMAXPROCS(0)
	}

	if a.graph == nil {
		g, err := graph.ByName(a.graphName)
		if err != nil {
			return nil, err
		}
		a.graph = g
	}
	a.logger = a.logger.With("graph", a.graph.Name())

	if a.lexicon == nil {
		var genOpts []lexicon.GeneratorOption
		if a.circumflex {
			genOpts = append(genOpts, lexicon.WithCircumflexConversion())
		}
		lx, err := a.loadLexicon(genOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to load lexicon: %w", err)
		}
		a.lexicon = lx
	}

	engine := phonetics.NewEngine()
	if err := engine.Precache(a.graph.Forms()); err != nil {
		return nil, fmt.Errorf("failed to compile suffix forms: %w", err)
	}

	if !a.disallowedSet {
		a.disallowed = core.DefaultDisallowedPaths()
	}
	disallowed, err := core.NewRuleProvider(a.graph, a.disallowed...)
	if err != nil {
		return nil, err
	}
	applier := core.NewSuffixApplier(engine, disallowed, a.logger)

	rules, err := core.DefaultMandatoryRules(a.graph)
	if err != nil {
		return nil, err
	}
	mandatory := core.NewMandatoryTransitionApplier(applier, a.logger, rules...)

	var tables []dsl.Table
	if !a.noEmbedded {
		tables = append(tables, dsl.Irregulars)
	}
	a.paths = dsl.NewPredefinedPaths(a.graph, applier, a.lexicon, tables...)
	if err := a.paths.Initialize(); err != nil {
		return nil, err
	}

	a.parser = core.NewParser(a.graph, a.rootFinders(), applier,
		core.WithLogger(a.logger),
		core.WithPathProvider(a.paths),
		core.WithMandatory(mandatory),
		core.WithMaxCandidates(a.maxCandidates),
	)

	a.logger.Debug("analyzer ready",
		"lexemes", len(a.lexicon.Lexemes),
		"roots", a.lexicon.Len(),
		"predefined_roots", a.paths.Len(),
	)
	return a, nil
}

// rootFinders builds the finder chain. Digit finders are only added when
// the graph models numerals.
func (a *Analyzer) rootFinders() *rootfinder.Chain {
	chain := rootfinder.NewChain().
		MustAdd(rootfinder.NewPunctuation(), rootfinder.StopChainWhenHandled)
	if a.seeds(domain.PosNumeral, domain.SecDigitsCardinal) {
		chain.MustAdd(rootfinder.NewCardinalDigits(), rootfinder.StopChainWhenHandled).
			MustAdd(rootfinder.NewOrdinalDigits(), rootfinder.StopChainWhenHandled).
			MustAdd(rootfinder.NewRangeDigits(), rootfinder.StopChainWhenHandled)
	}
	chain.MustAdd(rootfinder.NewProperNounFromApostrophe(a.lexicon), rootfinder.StopChainWhenHandled).
		MustAdd(rootfinder.NewDictionary(rootfinder.Seedable(a.lexicon, a.graph)), rootfinder.ContinueOnChain)
	if a.guessProper {
		chain.MustAdd(rootfinder.NewProperNounWithoutApostrophe(), rootfinder.ContinueOnChain)
	}
	if a.bruteForce {
		chain.MustAdd(rootfinder.NewBruteForceNoun(), rootfinder.ContinueOnChain)
	}
	return chain
}

func (a *Analyzer) seeds(pos domain.PrimaryPos, spos domain.SecondaryPos) bool {
	sample := &domain.Root{Lexeme: &domain.Lexeme{PrimaryPos: pos, SecondaryPos: spos}}
	_, err := a.graph.DefaultStateForRoot(sample)
	return err == nil
}

func (a *Analyzer) loadLexicon(opts []lexicon.GeneratorOption) (*lexicon.Lexicon, error) {
	if a.noEmbedded {
		if len(a.dictionaries) == 0 {
			return nil, errors.New("no dictionary file given")
		}
		lx, err := lexicon.LoadFile(a.dictionaries[0], opts...)
		if err != nil {
			return nil, err
		}
		for _, path := range a.dictionaries[1:] {
			if err := lx.ExtendFile(path, opts...); err != nil {
				return nil, err
			}
		}
		return lx, nil
	}

	lx, err := lexicon.Embedded(opts...)
	if err != nil {
		return nil, err
	}
	for _, path := range a.dictionaries {
		if err := lx.ExtendFile(path, opts...); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return lx, nil
}

// Parse returns every analysis of seq. An unknown word yields an empty,
// non-nil slice.
func (a *Analyzer) Parse(ctx context.Context, seq domain.Sequence) ([]*domain.Container, error) {
	if seq.IsBlank() {
		return []*domain.Container{}, nil
	}
	start := time.Now()
	results, err := a.parser.Parse(ctx, seq.String())
	a.hooks.EmitParse(ctx, &domain.ParseEvent{
		EventBase: domain.EventBase{Timestamp: start},
		Word:      seq.String(),
		Results:   len(results),
		Duration:  time.Since(start),
		Err:       err,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", seq, err)
	}
	return results, nil
}

// ParseStr normalizes word and parses it.
func (a *Analyzer) ParseStr(ctx context.Context, word string) ([]*domain.Container, error) {
	return a.Parse(ctx, domain.NewSequence(word))
}

// ParseAll parses seqs concurrently. The first error cancels the batch.
func (a *Analyzer) ParseAll(ctx context.Context, seqs []domain.Sequence) ([][]*domain.Container, error) {
	out := make([][]*domain.Container, len(seqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, seq := range seqs {
		i, seq := i, seq
		g.Go(func() error {
			results, err := a.Parse(ctx, seq)
			if err != nil {
				return err
			}
			out[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseAllStr is ParseAll for raw words.
func (a *Analyzer) ParseAllStr(ctx context.Context, words []string) ([][]*domain.Container, error) {
	return a.ParseAll(ctx, domain.Sequences(words))
}

// Graph returns the suffix graph in use.
func (a *Analyzer) Graph() *graph.Graph { return a.graph }

// Lexicon returns the loaded lexicon.
func (a *Analyzer) Lexicon() *lexicon.Lexicon { return a.lexicon }

// Paths returns the predefined path table.
func (a *Analyzer) Paths() *dsl.PredefinedPaths { return a.paths }

package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/aretw0/trnltk/internal/dto"
	"github.com/aretw0/trnltk/internal/presentation/tui"
	"github.com/aretw0/trnltk/pkg/domain"
)

// Parser is what a session needs from the runtime.
type Parser interface {
	ParseAllStr(ctx context.Context, words []string) ([][]*domain.Container, error)
}

// SessionOptions controls how analyses are printed.
type SessionOptions struct {
	// JSON writes one JSON object per word (NDJSON) instead of text.
	JSON bool
	// Forms shows suffix templates in text mode.
	Forms bool
	// Prompt is printed before every line read from the input.
	Prompt string
}

// Result is the NDJSON record written for a word.
type Result = dto.WordAnalyses

// Session prints analyses of the words it is given.
type Session struct {
	parser   Parser
	out      io.Writer
	opts     SessionOptions
	renderer *tui.Renderer
	encoder  *json.Encoder
}

// NewSession writes to out.
func NewSession(p Parser, out io.Writer, opts SessionOptions) *Session {
	s := &Session{parser: p, out: out, opts: opts}
	if opts.JSON {
		s.encoder = json.NewEncoder(out)
	} else {
		s.renderer = tui.NewRenderer(out, opts.Forms)
	}
	return s
}

// ParseWords analyses words as one batch and prints them in order.
func (s *Session) ParseWords(ctx context.Context, words []string) error {
	if len(words) == 0 {
		return nil
	}
	batch, err := s.parser.ParseAllStr(ctx, words)
	if err != nil {
		return err
	}
	for i, results := range batch {
		if err := s.print(words[i], results); err != nil {
			return err
		}
	}
	return nil
}

// Run reads in line by line and analyses every whitespace separated word
// until the input ends or ctx is cancelled. "quit" and "exit" end an
// interactive session.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	errs := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errs <- scanner.Err()
	}()

	for {
		if s.opts.Prompt != "" {
			fmt.Fprint(s.out, s.opts.Prompt)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errs:
					return err
				default:
					return nil
				}
			}
			line = strings.TrimSpace(line)
			if s.opts.Prompt != "" && (line == "quit" || line == "exit") {
				return nil
			}
			if err := s.ParseWords(ctx, strings.Fields(line)); err != nil {
				return err
			}
		}
	}
}

func (s *Session) print(word string, results []*domain.Container) error {
	if s.encoder == nil {
		s.renderer.Render(word, results)
		return nil
	}
	return s.encoder.Encode(dto.NewWordAnalyses(word, results))
}

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// Unlike signal.NotifyContext it remembers the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
		}
		sc.stop.Do(func() {
			signal.Stop(sc.sigCh)
		})
	}()
	return sc
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

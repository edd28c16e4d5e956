package memory

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aretw0/trnltk/pkg/domain"
	"github.com/aretw0/trnltk/pkg/ports"
)

// Offline is a read-only cache of a fixed word list, filled by Build.
// Put and PutAll are no-ops.
type Offline struct {
	words []string

	mu   sync.RWMutex
	data map[string][]*domain.Container
}

// NewOffline creates a cache for words. Duplicates are parsed once.
func NewOffline(words []string) *Offline {
	return &Offline{words: words, data: make(map[string][]*domain.Container)}
}

// Build parses every word with delegate.
func (o *Offline) Build(ctx context.Context, delegate ports.MorphologicParser) error {
	unique := make([]string, 0, len(o.words))
	seen := make(map[string]bool, len(o.words))
	for _, w := range o.words {
		if !seen[w] {
			seen[w] = true
			unique = append(unique, w)
		}
	}

	results, err := delegate.ParseAllStr(ctx, unique)
	if err != nil {
		return fmt.Errorf("failed to build offline cache: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	for i, w := range unique {
		o.data[w] = results[i]
	}
	return nil
}

func (o *Offline) Get(ctx context.Context, word string) ([]*domain.Container, bool, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	results, ok := o.data[word]
	if !ok {
		return nil, false, nil
	}
	return copyResults(results), true, nil
}

func (o *Offline) Put(ctx context.Context, word string, results []*domain.Container) error {
	return nil
}

func (o *Offline) PutAll(ctx context.Context, entries map[string][]*domain.Container) error {
	return nil
}

// Len returns the number of built words.
func (o *Offline) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.data)
}

// ReadWords reads one word per line, skipping blank lines and # comments.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

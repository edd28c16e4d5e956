package lexicon

import (
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/aretw0/trnltk/pkg/domain"
)

// Index maps root sequences to roots. Once built it is only read, so
// concurrent lookups are safe.
type Index struct {
	trie  *patricia.Trie
	roots int
}

// NewIndex indexes roots by their sequence.
func NewIndex(roots []*domain.Root) *Index {
	idx := &Index{trie: patricia.NewTrie()}
	for _, r := range roots {
		idx.add(r)
	}
	return idx
}

func (i *Index) add(r *domain.Root) {
	key := patricia.Prefix(r.Sequence)
	if item := i.trie.Get(key); item != nil {
		existing := item.([]*domain.Root)
		for _, e := range existing {
			if e.Key() == r.Key() {
				return
			}
		}
		i.trie.Set(key, append(existing, r))
	} else {
		i.trie.Insert(key, []*domain.Root{r})
	}
	i.roots++
}

// Roots returns the roots whose sequence is exactly sequence.
func (i *Index) Roots(sequence string) []*domain.Root {
	item := i.trie.Get(patricia.Prefix(sequence))
	if item == nil {
		return nil
	}
	return item.([]*domain.Root)
}

// Prefixes returns the roots of every indexed sequence that is a prefix of
// s, shortest first.
func (i *Index) Prefixes(s string) []*domain.Root {
	var out []*domain.Root
	_ = i.trie.VisitPrefixes(patricia.Prefix(s), func(_ patricia.Prefix, item patricia.Item) error {
		out = append(out, item.([]*domain.Root)...)
		return nil
	})
	return out
}

// Len returns the number of distinct roots.
func (i *Index) Len() int { return i.roots }

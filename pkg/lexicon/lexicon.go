package lexicon

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/trnltk/pkg/domain"
)

//go:embed data/master.dict
var masterDict []byte

// Lexicon is a loaded dictionary together with the index of its roots.
type Lexicon struct {
	Lexemes []*domain.Lexeme
	*Index
}

// Embedded builds the lexicon shipped with the module.
func Embedded(opts ...GeneratorOption) (*Lexicon, error) {
	return Build(bytes.NewReader(masterDict), opts...)
}

// LoadFile builds a lexicon from a dictionary file on disk.
func LoadFile(path string, opts ...GeneratorOption) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()
	return Build(f, opts...)
}

// Build loads every lexeme of r and generates its roots.
func Build(r io.Reader, opts ...GeneratorOption) (*Lexicon, error) {
	lexemes, err := Load(r)
	if err != nil {
		return nil, err
	}
	roots, err := NewRootGenerator(opts...).GenerateAll(lexemes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate roots: %w", err)
	}
	return &Lexicon{Lexemes: lexemes, Index: NewIndex(roots)}, nil
}

// Extend adds the lexemes of r and their roots. It must not run
// concurrently with lookups.
func (lx *Lexicon) Extend(r io.Reader, opts ...GeneratorOption) error {
	lexemes, err := Load(r)
	if err != nil {
		return err
	}
	roots, err := NewRootGenerator(opts...).GenerateAll(lexemes)
	if err != nil {
		return fmt.Errorf("failed to generate roots: %w", err)
	}
	lx.Lexemes = append(lx.Lexemes, lexemes...)
	for _, root := range roots {
		lx.add(root)
	}
	return nil
}

// ExtendFile is Extend for a dictionary file on disk.
func (lx *Lexicon) ExtendFile(path string, opts ...GeneratorOption) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()
	return lx.Extend(f, opts...)
}

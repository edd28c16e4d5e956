// Package dto defines the JSON records shared by the command line and the
// HTTP server.
package dto

import "github.com/aretw0/trnltk/pkg/domain"

// WordAnalyses is every analysis of one word. Analyses is never null in
// JSON: an unknown word encodes as an empty list.
type WordAnalyses struct {
	Word     string            `json:"word"`
	Analyses []domain.Analysis `json:"analyses"`
}

// NewWordAnalyses renders results with domain.Detailed.
func NewWordAnalyses(word string, results []*domain.Container) WordAnalyses {
	out := WordAnalyses{Word: word, Analyses: make([]domain.Analysis, len(results))}
	for i, c := range results {
		out.Analyses[i] = domain.Detailed(c)
	}
	return out
}

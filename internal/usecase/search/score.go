package search

import (
	"strings"

	"github.com/calcportal/searchd/internal/domain"
)

// Weights is the scoring table for field matches. Contributions are additive
// and independent; a document scoring zero is excluded from results entirely.
type Weights struct {
	// Whole-query matches against single fields.
	TitleExact       int
	TitleSubstring   int
	DescriptionQuery int
	// Per expanded token, each field contributes at most once.
	TokenTitle       int
	TokenDescription int
	TokenCategory    int
	TokenBody        int
	TokenTag         int
	TokenKeyword     int
}

// DefaultWeights returns the portal ranking heuristic.
func DefaultWeights() Weights {
	return Weights{
		TitleExact:       60,
		TitleSubstring:   35,
		DescriptionQuery: 15,
		TokenTitle:       12,
		TokenDescription: 6,
		TokenCategory:    5,
		TokenBody:        3,
		TokenTag:         4,
		TokenKeyword:     2,
	}
}

// score rates doc against the normalized query and its expanded token set.
// Pure: it reads only the document's precomputed normalized fields.
func score(doc *domain.SearchDocument, query string, tokens []string, w Weights) int {
	n := &doc.Normalized
	total := 0

	if n.Title == query {
		total += w.TitleExact
	}
	if strings.Contains(n.Title, query) {
		total += w.TitleSubstring
	}
	if n.Description != "" && strings.Contains(n.Description, query) {
		total += w.DescriptionQuery
	}

	for _, tok := range tokens {
		if strings.Contains(n.Title, tok) {
			total += w.TokenTitle
		}
		if n.Description != "" && strings.Contains(n.Description, tok) {
			total += w.TokenDescription
		}
		if n.Category != "" && strings.Contains(n.Category, tok) {
			total += w.TokenCategory
		}
		if n.Body != "" && strings.Contains(n.Body, tok) {
			total += w.TokenBody
		}
		if anyContains(n.Tags, tok) {
			total += w.TokenTag
		}
		if anyContains(n.Keywords, tok) {
			total += w.TokenKeyword
		}
	}
	return total
}

// anyContains reports whether any normalized value contains tok.
func anyContains(values []string, tok string) bool {
	for _, v := range values {
		if strings.Contains(v, tok) {
			return true
		}
	}
	return false
}

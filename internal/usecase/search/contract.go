package search

import (
	"context"

	"github.com/calcportal/searchd/internal/domain"
)

// DocumentSource serves the cached per-locale document sets.
type DocumentSource interface {
	Documents(ctx context.Context, locale domain.Locale) ([]domain.SearchDocument, error)
}

// Expander augments query tokens with locale synonyms.
type Expander interface {
	Expand(locale domain.Locale, tokens []string) []string
}

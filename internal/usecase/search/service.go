// Package search ranks portal content against free-text queries, federated
// across the three content types with a whole-query locale fallback.
package search

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/calcportal/searchd/internal/domain"
	"github.com/calcportal/searchd/internal/metrics"
	"github.com/calcportal/searchd/internal/textnorm"
)

const (
	defaultLimitPerType = 20
	defaultMaxLimit     = 100

	// Queries shorter than this after normalization short-circuit to an
	// empty response without touching the document source.
	minQueryRunes = 2
)

// Options tunes a single search call.
type Options struct {
	// LimitPerType caps the hits returned per content group. Zero or
	// negative means the service default.
	LimitPerType int
}

// Service is the federated search orchestrator.
type Service struct {
	source        DocumentSource
	synonyms      Expander
	weights       Weights
	defaultLocale domain.Locale
	defaultLimit  int
	maxLimit      int
}

// New creates a search service with the default weights and limits.
func New(source DocumentSource, synonyms Expander) *Service {
	return &Service{
		source:        source,
		synonyms:      synonyms,
		weights:       DefaultWeights(),
		defaultLocale: domain.DefaultLocale,
		defaultLimit:  defaultLimitPerType,
		maxLimit:      defaultMaxLimit,
	}
}

// WithLimits overrides the default and maximum per-group limits.
func (s *Service) WithLimits(def, maxLimit int) *Service {
	if def > 0 {
		s.defaultLimit = def
	}
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	return s
}

// WithDefaultLocale overrides the fallback locale.
func (s *Service) WithDefaultLocale(locale domain.Locale) *Service {
	if locale != "" {
		s.defaultLocale = locale
	}
	return s
}

// WithWeights overrides the scoring table.
func (s *Service) WithWeights(w Weights) *Service {
	s.weights = w
	return s
}

// Search runs the federated query for locale. Queries that normalize to
// fewer than two runes return an empty response without touching the
// document source. When the locale yields nothing at all and is not the
// default, the whole query is rerun once against the default locale.
func (s *Service) Search(
	ctx context.Context, query string, locale domain.Locale, opts Options,
) (domain.SearchResponse, error) {
	start := time.Now()

	normalized := textnorm.Normalize(query)
	if utf8.RuneCountInString(normalized) < minQueryRunes {
		return emptyResponse(locale), nil
	}

	limit := s.defaultLimit
	if opts.LimitPerType > 0 {
		limit = opts.LimitPerType
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	resp, err := s.searchLocale(ctx, normalized, query, locale, limit)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	if resp.TotalHits() == 0 && locale != s.defaultLocale {
		fallback, err := s.searchLocale(ctx, normalized, query, s.defaultLocale, limit)
		if err != nil {
			return domain.SearchResponse{}, err
		}
		fallback.FallbackLocaleUsed = true
		resp = fallback
	}

	metrics.SearchDuration.WithLabelValues(string(resp.UsedLocale)).Observe(time.Since(start).Seconds())
	metrics.SearchRequestsTotal.WithLabelValues(
		string(resp.UsedLocale), strconv.FormatBool(resp.FallbackLocaleUsed),
	).Inc()
	return resp, nil
}

// searchLocale evaluates one full pass: expand, fetch, score, rank.
func (s *Service) searchLocale(
	ctx context.Context, normalized, raw string, locale domain.Locale, limit int,
) (domain.SearchResponse, error) {
	tokens := s.synonyms.Expand(locale, textnorm.Tokenize(raw))

	docs, err := s.source.Documents(ctx, locale)
	if err != nil {
		return domain.SearchResponse{}, fmt.Errorf("documents for %s: %w", locale, err)
	}

	return domain.SearchResponse{
		Calculators: s.rank(docs, domain.TypeCalculator, normalized, tokens, limit),
		Articles:    s.rank(docs, domain.TypeArticle, normalized, tokens, limit),
		Standards:   s.rank(docs, domain.TypeStandard, normalized, tokens, limit),
		UsedLocale:  locale,
	}, nil
}

// rank scores every document of one type, drops zero scores, and keeps the
// best limit hits. The sort is stable so equal scores keep the content
// store's original order.
func (s *Service) rank(
	docs []domain.SearchDocument, contentType domain.ContentType,
	query string, tokens []string, limit int,
) domain.SearchGroup {
	type scoredDoc struct {
		doc   *domain.SearchDocument
		score int
	}

	var matched []scoredDoc
	for i := range docs {
		if docs[i].Type != contentType {
			continue
		}
		if sc := score(&docs[i], query, tokens, s.weights); sc > 0 {
			matched = append(matched, scoredDoc{doc: &docs[i], score: sc})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	group := domain.SearchGroup{Total: len(matched), Items: []domain.SearchHit{}}
	for i := 0; i < len(matched) && i < limit; i++ {
		d := matched[i].doc
		group.Items = append(group.Items, domain.SearchHit{
			ID:              d.ID,
			Type:            d.Type,
			Title:           d.Title,
			Description:     d.Description,
			URL:             d.URL,
			Category:        d.Category,
			IsForeignLocale: d.IsForeignLocale(),
		})
	}
	return group
}

func emptyResponse(locale domain.Locale) domain.SearchResponse {
	empty := domain.SearchGroup{Items: []domain.SearchHit{}}
	return domain.SearchResponse{
		Calculators: empty,
		Articles:    empty,
		Standards:   empty,
		UsedLocale:  locale,
	}
}

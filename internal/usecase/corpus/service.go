// Package corpus builds and caches the per-locale search document sets from
// the three portal content providers.
package corpus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/calcportal/searchd/internal/domain"
	"github.com/calcportal/searchd/internal/metrics"
)

// Service serves immutable per-locale document sets. A set is built lazily on
// first request and cached for the lifetime of the process; a failed build is
// never cached and the next request retries from scratch.
type Service struct {
	calculators CalculatorProvider
	articles    ArticleProvider
	standards   StandardProvider
	logger      *zap.Logger

	group singleflight.Group
	mu    sync.RWMutex
	sets  map[domain.Locale][]domain.SearchDocument
}

// New creates a corpus service. logger may be nil.
func New(
	calculators CalculatorProvider,
	articles ArticleProvider,
	standards StandardProvider,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		calculators: calculators,
		articles:    articles,
		standards:   standards,
		logger:      logger,
		sets:        make(map[domain.Locale][]domain.SearchDocument),
	}
}

// Documents returns the locale's document set, building it on first use.
// Concurrent callers for the same uncached locale collapse into one build and
// all observe its result. The returned slice is shared and must not be
// mutated.
func (s *Service) Documents(ctx context.Context, locale domain.Locale) ([]domain.SearchDocument, error) {
	s.mu.RLock()
	docs, ok := s.sets[locale]
	s.mu.RUnlock()
	if ok {
		metrics.CorpusCacheTotal.WithLabelValues("hit").Inc()
		return docs, nil
	}
	metrics.CorpusCacheTotal.WithLabelValues("miss").Inc()

	v, err, _ := s.group.Do(string(locale), func() (any, error) {
		// A previous flight may have published while this caller waited on
		// the flight lock.
		s.mu.RLock()
		cached, ok := s.sets[locale]
		s.mu.RUnlock()
		if ok {
			return cached, nil
		}

		// Detached from the caller: an in-flight build runs to completion
		// even if the triggering request goes away, so every waiter still
		// receives a consistent result.
		built, err := s.build(context.WithoutCancel(ctx), locale)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.sets[locale] = built
		s.mu.Unlock()
		metrics.CorpusDocuments.WithLabelValues(string(locale)).Set(float64(len(built)))
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.SearchDocument), nil
}

// Invalidate drops a cached document set so the next request rebuilds it.
func (s *Service) Invalidate(locale domain.Locale) {
	s.mu.Lock()
	delete(s.sets, locale)
	s.mu.Unlock()
}

// build fetches the three content types concurrently and maps every raw item
// to a normalized search document. Any provider failure fails the whole
// build; no partial set is ever returned.
func (s *Service) build(ctx context.Context, locale domain.Locale) ([]domain.SearchDocument, error) {
	start := time.Now()

	var (
		calcs []domain.Calculator
		arts  []domain.Article
		stds  []domain.Standard
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if calcs, err = s.calculators.Calculators(gctx, locale); err != nil {
			return fmt.Errorf("%w: calculators: %w", domain.ErrProviderFailure, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if arts, err = s.articles.Articles(gctx, locale); err != nil {
			return fmt.Errorf("%w: articles: %w", domain.ErrProviderFailure, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if stds, err = s.standards.Standards(gctx, locale); err != nil {
			return fmt.Errorf("%w: standards: %w", domain.ErrProviderFailure, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		metrics.CorpusBuildDuration.WithLabelValues(string(locale), "error").Observe(time.Since(start).Seconds())
		s.logger.Warn("corpus build failed",
			zap.String("locale", string(locale)),
			zap.Error(err),
		)
		return nil, err
	}

	docs := make([]domain.SearchDocument, 0, len(calcs)+len(arts)+len(stds))
	for i := range calcs {
		docs = append(docs, calculatorDocument(&calcs[i], locale))
	}
	for i := range arts {
		docs = append(docs, articleDocument(&arts[i], locale))
	}
	for i := range stds {
		docs = append(docs, standardDocument(&stds[i], locale))
	}

	metrics.CorpusBuildDuration.WithLabelValues(string(locale), "ok").Observe(time.Since(start).Seconds())
	s.logger.Info("corpus built",
		zap.String("locale", string(locale)),
		zap.Int("calculators", len(calcs)),
		zap.Int("articles", len(arts)),
		zap.Int("standards", len(stds)),
		zap.Duration("took", time.Since(start)),
	)
	return docs, nil
}

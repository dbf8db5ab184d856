package corpus

import (
	"context"
	"sync/atomic"

	"github.com/calcportal/searchd/internal/domain"
)

// mockProviders implements all three provider contracts and counts calls.
type mockProviders struct {
	calculators []domain.Calculator
	articles    []domain.Article
	standards   []domain.Standard

	calcErr error
	artErr  error
	stdErr  error

	calcCalls atomic.Int64
	artCalls  atomic.Int64
	stdCalls  atomic.Int64

	// gate, when non-nil, blocks every provider call until closed. Used to
	// hold a build open while concurrent callers pile up.
	gate chan struct{}
}

func (m *mockProviders) wait() {
	if m.gate != nil {
		<-m.gate
	}
}

func (m *mockProviders) Calculators(_ context.Context, _ domain.Locale) ([]domain.Calculator, error) {
	m.calcCalls.Add(1)
	m.wait()
	return m.calculators, m.calcErr
}

func (m *mockProviders) Articles(_ context.Context, _ domain.Locale) ([]domain.Article, error) {
	m.artCalls.Add(1)
	m.wait()
	return m.articles, m.artErr
}

func (m *mockProviders) Standards(_ context.Context, _ domain.Locale) ([]domain.Standard, error) {
	m.stdCalls.Add(1)
	m.wait()
	return m.standards, m.stdErr
}

func newTestService(m *mockProviders) *Service {
	return New(m, m, m, nil)
}

func sampleCalculator(id, title string) domain.Calculator {
	return domain.Calculator{
		ID:               id,
		Title:            title,
		ShortDescription: "short",
		Category:         "finance",
		Slug:             id,
	}
}

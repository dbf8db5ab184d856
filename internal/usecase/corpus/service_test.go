package corpus

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/calcportal/searchd/internal/domain"
)

func TestDocuments_BuildsAndCaches(t *testing.T) {
	m := &mockProviders{
		calculators: []domain.Calculator{sampleCalculator("mortgage", "Mortgage Calculator")},
		articles:    []domain.Article{{ID: "rebar", Title: "Choosing rebar", Slug: "rebar"}},
		standards:   []domain.Standard{{ID: "ec2", Title: "Eurocode 2", Slug: "ec2", Country: "EU"}},
	}
	svc := newTestService(m)

	docs, err := svc.Documents(context.Background(), "en")
	if err != nil {
		t.Fatalf("Documents: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}

	// Second call must serve the cached set without touching providers.
	again, err := svc.Documents(context.Background(), "en")
	if err != nil {
		t.Fatalf("Documents (cached): %v", err)
	}
	if len(again) != 3 {
		t.Fatalf("cached set has %d documents, want 3", len(again))
	}
	if got := m.calcCalls.Load(); got != 1 {
		t.Errorf("calculators fetched %d times, want 1", got)
	}
	if got := m.artCalls.Load(); got != 1 {
		t.Errorf("articles fetched %d times, want 1", got)
	}
	if got := m.stdCalls.Load(); got != 1 {
		t.Errorf("standards fetched %d times, want 1", got)
	}
}

func TestDocuments_SingleFlight(t *testing.T) {
	m := &mockProviders{
		calculators: []domain.Calculator{sampleCalculator("mortgage", "Mortgage Calculator")},
		gate:        make(chan struct{}),
	}
	svc := newTestService(m)

	const callers = 16
	var wg sync.WaitGroup
	results := make([]int, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			docs, err := svc.Documents(context.Background(), "en")
			results[i], errs[i] = len(docs), err
		}(i)
	}

	close(m.gate)
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if results[i] != 1 {
			t.Fatalf("caller %d saw %d documents, want 1", i, results[i])
		}
	}
	// All concurrent callers must collapse into one provider fetch each.
	if got := m.calcCalls.Load(); got != 1 {
		t.Errorf("calculators fetched %d times under concurrency, want 1", got)
	}
}

func TestDocuments_PerLocaleSets(t *testing.T) {
	m := &mockProviders{
		calculators: []domain.Calculator{sampleCalculator("mortgage", "Mortgage Calculator")},
	}
	svc := newTestService(m)

	if _, err := svc.Documents(context.Background(), "en"); err != nil {
		t.Fatalf("Documents(en): %v", err)
	}
	if _, err := svc.Documents(context.Background(), "ru"); err != nil {
		t.Fatalf("Documents(ru): %v", err)
	}
	if got := m.calcCalls.Load(); got != 2 {
		t.Errorf("expected one fetch per locale, got %d", got)
	}
}

func TestDocuments_FailureNotCached(t *testing.T) {
	m := &mockProviders{
		calculators: []domain.Calculator{sampleCalculator("mortgage", "Mortgage Calculator")},
		artErr:      errors.New("content service down"),
	}
	svc := newTestService(m)

	_, err := svc.Documents(context.Background(), "en")
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("expected ErrProviderFailure, got %v", err)
	}

	// The failed build must not poison the cache: clear the fault and the
	// next call rebuilds from scratch.
	m.artErr = nil
	docs, err := svc.Documents(context.Background(), "en")
	if err != nil {
		t.Fatalf("Documents after recovery: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document after recovery, got %d", len(docs))
	}
	if got := m.artCalls.Load(); got != 2 {
		t.Errorf("articles fetched %d times, want 2 (failed + retry)", got)
	}
}

func TestDocuments_BuildSurvivesCallerCancel(t *testing.T) {
	m := &mockProviders{
		calculators: []domain.Calculator{sampleCalculator("mortgage", "Mortgage Calculator")},
	}
	svc := newTestService(m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The build detaches from the caller's context, so even a cancelled
	// caller gets the completed set.
	docs, err := svc.Documents(ctx, "en")
	if err != nil {
		t.Fatalf("Documents with cancelled ctx: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
}

func TestInvalidate(t *testing.T) {
	m := &mockProviders{
		calculators: []domain.Calculator{sampleCalculator("mortgage", "Mortgage Calculator")},
	}
	svc := newTestService(m)

	if _, err := svc.Documents(context.Background(), "en"); err != nil {
		t.Fatalf("Documents: %v", err)
	}
	svc.Invalidate("en")
	if _, err := svc.Documents(context.Background(), "en"); err != nil {
		t.Fatalf("Documents after Invalidate: %v", err)
	}
	if got := m.calcCalls.Load(); got != 2 {
		t.Errorf("expected a rebuild after Invalidate, got %d fetches", got)
	}
}

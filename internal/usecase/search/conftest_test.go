package search

import (
	"context"
	"errors"
	"testing"

	"github.com/calcportal/searchd/internal/domain"
	"github.com/calcportal/searchd/internal/synonym"
	"github.com/calcportal/searchd/internal/textnorm"
)

var errStoreDown = errors.New("content store down")

// mockSource serves fixed per-locale document sets and counts calls.
type mockSource struct {
	byLocale map[domain.Locale][]domain.SearchDocument
	err      error
	calls    int
}

func (m *mockSource) Documents(_ context.Context, locale domain.Locale) ([]domain.SearchDocument, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.byLocale[locale], nil
}

// makeDoc builds a search document with its normalized fields precomputed,
// the way the corpus builder publishes them.
func makeDoc(id string, contentType domain.ContentType, locale domain.Locale, title, description, body, category string, tags, keywords []string) domain.SearchDocument {
	doc := domain.SearchDocument{
		ID:            id + ":" + string(locale),
		Type:          contentType,
		Title:         title,
		Description:   description,
		Body:          body,
		Category:      category,
		URL:           "/" + string(locale) + "/x/" + id,
		Tags:          tags,
		Keywords:      keywords,
		Locale:        locale,
		ContentLocale: locale,
	}
	doc.Normalized = domain.NormalizedFields{
		Title:       textnorm.Normalize(title),
		Description: textnorm.Normalize(description),
		Body:        textnorm.Normalize(body),
		Category:    textnorm.Normalize(category),
	}
	for _, t := range tags {
		doc.Normalized.Tags = append(doc.Normalized.Tags, textnorm.Normalize(t))
	}
	for _, k := range keywords {
		doc.Normalized.Keywords = append(doc.Normalized.Keywords, textnorm.Normalize(k))
	}
	return doc
}

func calcDoc(id, title, category string) domain.SearchDocument {
	return makeDoc(id, domain.TypeCalculator, "en", title, "", "", category, nil, nil)
}

func noSynonyms() *synonym.Table {
	return synonym.New(nil)
}

func loanSynonyms() *synonym.Table {
	return synonym.New(map[domain.Locale]map[string][]string{
		"en": {"loan": {"mortgage"}},
	})
}

func newTestService(t *testing.T, source DocumentSource, expander Expander) *Service {
	t.Helper()
	return New(source, expander)
}

package corpus

import (
	"strings"

	"github.com/calcportal/searchd/internal/domain"
	"github.com/calcportal/searchd/internal/textnorm"
)

// calculatorDocument maps a raw calculator to a search document. FAQ
// question text joins the long description as body so question-phrased
// queries can match.
func calculatorDocument(c *domain.Calculator, locale domain.Locale) domain.SearchDocument {
	var body strings.Builder
	body.WriteString(c.LongDescription)
	for _, f := range c.FAQ {
		if f.Question != "" {
			body.WriteByte('\n')
			body.WriteString(f.Question)
		}
	}

	doc := domain.SearchDocument{
		ID:            documentID(c.ID, locale),
		Type:          domain.TypeCalculator,
		Title:         c.Title,
		Description:   c.ShortDescription,
		Body:          body.String(),
		Category:      c.Category,
		URL:           localePath(locale, "calculators", c.Slug),
		Tags:          c.Tags,
		Keywords:      c.Keywords,
		Locale:        locale,
		ContentLocale: contentLocaleOr(c.ContentLocale, locale),
	}
	doc.Normalized = normalizedFields(&doc)
	return doc
}

// articleDocument maps a raw article to a search document. The HTML body is
// stripped to visible text before normalization.
func articleDocument(a *domain.Article, locale domain.Locale) domain.SearchDocument {
	doc := domain.SearchDocument{
		ID:            documentID(a.ID, locale),
		Type:          domain.TypeArticle,
		Title:         a.Title,
		Description:   a.ShortDescription,
		Body:          stripHTML(a.ContentHTML),
		URL:           localePath(locale, "articles", a.Slug),
		Keywords:      a.Keywords,
		Locale:        locale,
		ContentLocale: contentLocaleOr(a.ContentLocale, locale),
	}
	doc.Normalized = normalizedFields(&doc)
	return doc
}

// standardDocument maps a raw standard to a search document, deriving the
// category badge from the issuing body.
func standardDocument(st *domain.Standard, locale domain.Locale) domain.SearchDocument {
	doc := domain.SearchDocument{
		ID:            documentID(st.ID, locale),
		Type:          domain.TypeStandard,
		Title:         st.Title,
		Description:   st.ShortDescription,
		Body:          st.LongDescription,
		Category:      standardCategory(st.Country),
		URL:           localePath(locale, "standards", st.Slug),
		Keywords:      st.Keywords,
		Locale:        locale,
		ContentLocale: contentLocaleOr(st.ContentLocale, locale),
	}
	doc.Normalized = normalizedFields(&doc)
	return doc
}

// standardCategory derives the badge shown next to a standard from its
// issuing body country code.
func standardCategory(country string) string {
	switch strings.ToUpper(country) {
	case "EU":
		return "Eurocode"
	case "ISO":
		return "ISO"
	default:
		return "National"
	}
}

func documentID(itemID string, locale domain.Locale) string {
	return itemID + ":" + string(locale)
}

func localePath(locale domain.Locale, section, slug string) string {
	return "/" + string(locale) + "/" + section + "/" + slug
}

// contentLocaleOr defaults to the requested locale when the store did not
// record an explicit authoring language.
func contentLocaleOr(contentLocale, locale domain.Locale) domain.Locale {
	if contentLocale == "" {
		return locale
	}
	return contentLocale
}

// normalizedFields precomputes the canonical form of every matchable field.
// This is the only place raw document text is normalized.
func normalizedFields(d *domain.SearchDocument) domain.NormalizedFields {
	n := domain.NormalizedFields{
		Title:       textnorm.Normalize(d.Title),
		Description: textnorm.Normalize(d.Description),
		Body:        textnorm.Normalize(d.Body),
		Category:    textnorm.Normalize(d.Category),
	}
	for _, tag := range d.Tags {
		if t := textnorm.Normalize(tag); t != "" {
			n.Tags = append(n.Tags, t)
		}
	}
	for _, kw := range d.Keywords {
		if k := textnorm.Normalize(kw); k != "" {
			n.Keywords = append(n.Keywords, k)
		}
	}
	return n
}

// stripHTML drops tags from article markup, keeping the visible text
// separated by spaces. Entities fold to spaces during normalization.
func stripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
			b.WriteByte(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

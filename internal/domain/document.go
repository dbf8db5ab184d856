// Package domain holds the portal search value types and sentinel errors.
package domain

// NormalizedFields holds the canonical matching form of every searchable
// field, computed exactly once when the document set is built. Scoring reads
// these and never re-normalizes raw text.
type NormalizedFields struct {
	Title       string
	Description string
	Body        string
	Category    string
	Tags        []string
	Keywords    []string
}

// SearchDocument is one content item prepared for matching in one locale.
// Immutable once the corpus build publishes it.
type SearchDocument struct {
	// ID is unique within a locale's document set (item id + locale).
	ID          string
	Type        ContentType
	Title       string
	Description string
	Body        string
	Category    string
	// URL is the locale-aware navigable path of the item.
	URL      string
	Tags     []string
	Keywords []string
	// Locale is the locale this document set was built for.
	Locale Locale
	// ContentLocale is the language the underlying content is actually
	// authored in; it differs from Locale when the content store fell back
	// to a default language.
	ContentLocale Locale
	Normalized    NormalizedFields
}

// IsForeignLocale reports whether the underlying content is authored in a
// different language than the locale the document was built for.
func (d *SearchDocument) IsForeignLocale() bool { return d.ContentLocale != d.Locale }

package domain

// SearchHit is the display-ready projection of a matched document.
type SearchHit struct {
	ID              string
	Type            ContentType
	Title           string
	Description     string
	URL             string
	Category        string
	IsForeignLocale bool
}

// SearchGroup holds the ranked hits for one content type. Total counts every
// matching document; Items is capped by the per-type limit.
type SearchGroup struct {
	Total int
	Items []SearchHit
}

// SearchResponse is the result of one federated search call.
type SearchResponse struct {
	Calculators SearchGroup
	Articles    SearchGroup
	Standards   SearchGroup
	// FallbackLocaleUsed is set when the requested locale yielded nothing
	// and the whole query was rerun against the default locale.
	FallbackLocaleUsed bool
	UsedLocale         Locale
}

// TotalHits returns the matching document count across all three groups.
func (r *SearchResponse) TotalHits() int {
	return r.Calculators.Total + r.Articles.Total + r.Standards.Total
}

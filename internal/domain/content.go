package domain

// ContentType tags the three federated content categories.
type ContentType string

const (
	// TypeCalculator is an interactive calculator page.
	TypeCalculator ContentType = "calculator"
	// TypeArticle is a reference article.
	TypeArticle ContentType = "article"
	// TypeStandard is a regulatory-standard explainer.
	TypeStandard ContentType = "standard"
)

// FAQEntry is a question/answer pair attached to a calculator page.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Calculator is a raw calculator item as served by a content store.
type Calculator struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	ShortDescription string     `json:"shortDescription"`
	LongDescription  string     `json:"longDescription,omitempty"`
	Locale           Locale     `json:"locale"`
	ContentLocale    Locale     `json:"contentLocale,omitempty"`
	Category         string     `json:"category"`
	Slug             string     `json:"slug"`
	Tags             []string   `json:"tags,omitempty"`
	Keywords         []string   `json:"keywords,omitempty"`
	FAQ              []FAQEntry `json:"faq,omitempty"`
}

// Article is a raw reference article as served by a content store.
type Article struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	Slug             string   `json:"slug"`
	Locale           Locale   `json:"locale"`
	ContentLocale    Locale   `json:"contentLocale,omitempty"`
	ContentHTML      string   `json:"contentHtml,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
}

// Standard is a raw regulatory-standard explainer as served by a content
// store. Country identifies the issuing body ("EU", "ISO", or a national
// country code).
type Standard struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription,omitempty"`
	Slug             string   `json:"slug"`
	Locale           Locale   `json:"locale"`
	ContentLocale    Locale   `json:"contentLocale,omitempty"`
	Country          string   `json:"country"`
	Keywords         []string `json:"keywords,omitempty"`
}

package domain

// Locale is a supported portal language code ("en", "ru", ...).
type Locale string

// DefaultLocale is the locale a search falls back to when the requested one
// yields no results at all.
const DefaultLocale Locale = "en"

func (l Locale) String() string { return string(l) }

// IsDefault reports whether l is the portal default locale.
func (l Locale) IsDefault() bool { return l == DefaultLocale }

package corpus

import (
	"context"

	"github.com/calcportal/searchd/internal/domain"
)

// CalculatorProvider serves raw calculator items for a locale.
type CalculatorProvider interface {
	Calculators(ctx context.Context, locale domain.Locale) ([]domain.Calculator, error)
}

// ArticleProvider serves raw article items for a locale.
type ArticleProvider interface {
	Articles(ctx context.Context, locale domain.Locale) ([]domain.Article, error)
}

// StandardProvider serves raw standard items for a locale.
type StandardProvider interface {
	Standards(ctx context.Context, locale domain.Locale) ([]domain.Standard, error)
}

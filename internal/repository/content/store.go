// Package content implements the portal content stores. Two interchangeable
// backends serve the same raw items: per-locale JSON dumps on disk, or JSON
// blobs in Redis.
package content

import (
	"context"

	"github.com/calcportal/searchd/internal/domain"
)

// Store is the content source contract shared by the file and redis
// backends. A locale with no content of a type yields an empty list, not an
// error.
type Store interface {
	Calculators(ctx context.Context, locale domain.Locale) ([]domain.Calculator, error)
	Articles(ctx context.Context, locale domain.Locale) ([]domain.Article, error)
	Standards(ctx context.Context, locale domain.Locale) ([]domain.Standard, error)
	Ping(ctx context.Context) error
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*RedisStore)(nil)
)

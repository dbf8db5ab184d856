package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/calcportal/searchd/internal/domain"
)

// RedisConfig holds connection parameters for a Redis content store.
type RedisConfig struct {
	Addrs     []string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisStore serves portal content from JSON blobs in Redis, one key per
// locale and content type: <prefix><locale>:<type>.
type RedisStore struct {
	client    rueidis.Client
	keyPrefix string
}

// NewRedisStore creates a Redis content store via rueidis.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "portal:content:"
	}
	return &RedisStore{client: client, keyPrefix: prefix}, nil
}

// Calculators returns the locale's raw calculator items.
func (s *RedisStore) Calculators(ctx context.Context, locale domain.Locale) ([]domain.Calculator, error) {
	var items []domain.Calculator
	if err := s.read(ctx, locale, "calculators", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Articles returns the locale's raw article items.
func (s *RedisStore) Articles(ctx context.Context, locale domain.Locale) ([]domain.Article, error) {
	var items []domain.Article
	if err := s.read(ctx, locale, "articles", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Standards returns the locale's raw standard items.
func (s *RedisStore) Standards(ctx context.Context, locale domain.Locale) ([]domain.Standard, error) {
	var items []domain.Standard
	if err := s.read(ctx, locale, "standards", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close shuts down the client.
func (s *RedisStore) Close() {
	s.client.Close()
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *RedisStore) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for content store: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// read unmarshals the JSON blob at <prefix><locale>:<kind> into v. A missing
// key means the locale has no content of that kind, which is not an error.
func (s *RedisStore) read(ctx context.Context, locale domain.Locale, kind string, v any) error {
	key := fmt.Sprintf("%s%s:%s", s.keyPrefix, locale, kind)
	cmd := s.client.B().Get().Key(key).Build()
	data, err := s.client.Do(ctx, cmd).AsBytes()
	if rueidis.IsRedisNil(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

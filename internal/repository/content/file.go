package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/calcportal/searchd/internal/domain"
)

// FileStore serves portal content from per-locale JSON dumps on disk:
// <dir>/<locale>/{calculators,articles,standards}.json.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed content store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Calculators returns the locale's raw calculator items.
func (s *FileStore) Calculators(_ context.Context, locale domain.Locale) ([]domain.Calculator, error) {
	var items []domain.Calculator
	if err := s.read(locale, "calculators.json", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Articles returns the locale's raw article items.
func (s *FileStore) Articles(_ context.Context, locale domain.Locale) ([]domain.Article, error) {
	var items []domain.Article
	if err := s.read(locale, "articles.json", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Standards returns the locale's raw standard items.
func (s *FileStore) Standards(_ context.Context, locale domain.Locale) ([]domain.Standard, error) {
	var items []domain.Standard
	if err := s.read(locale, "standards.json", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Ping verifies the content directory exists.
func (s *FileStore) Ping(_ context.Context) error {
	if _, err := os.Stat(s.dir); err != nil {
		return fmt.Errorf("content dir: %w", err)
	}
	return nil
}

// read unmarshals <dir>/<locale>/<name> into v. A missing file means the
// locale has no content of that type, which is not an error.
func (s *FileStore) read(locale domain.Locale, name string, v any) error {
	path := filepath.Join(s.dir, string(locale), name)
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Package synonym provides the static per-locale query expansion table.
// The table is plain data, loaded once at startup and read-only afterwards.
package synonym

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/calcportal/searchd/internal/domain"
)

//go:embed synonyms.yaml
var defaultTable []byte

// Table maps, per locale, a term to its related terms. A locale without an
// entry is an empty mapping, never an error.
type Table struct {
	forward map[domain.Locale]map[string][]string
	// reverse lists, per locale, the terms whose mapping contains a given
	// term. Precomputed so Expand stays deterministic and O(tokens).
	reverse map[domain.Locale]map[string][]string
}

// New builds a table from an in-memory mapping.
func New(mapping map[domain.Locale]map[string][]string) *Table {
	t := &Table{
		forward: mapping,
		reverse: make(map[domain.Locale]map[string][]string, len(mapping)),
	}
	if t.forward == nil {
		t.forward = map[domain.Locale]map[string][]string{}
	}
	for locale, terms := range mapping {
		rev := make(map[string][]string)
		for term, related := range terms {
			for _, rel := range related {
				rev[rel] = append(rev[rel], term)
			}
		}
		for _, sources := range rev {
			sort.Strings(sources)
		}
		t.reverse[locale] = rev
	}
	return t
}

// Default returns the table shipped with the binary.
func Default() (*Table, error) {
	return parse(defaultTable)
}

// LoadFile reads a synonym table from a YAML file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read synonyms %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Table, error) {
	var mapping map[domain.Locale]map[string][]string
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("parse synonyms: %w", err)
	}
	return New(mapping), nil
}

// Expand augments tokens with their synonyms for locale, looked up in both
// directions: a token pulls in every term it maps to and every term whose
// mapping contains it. The result is de-duplicated and keeps first-seen
// order.
func (t *Table) Expand(locale domain.Locale, tokens []string) []string {
	forward := t.forward[locale]
	reverse := t.reverse[locale]

	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	add := func(term string) {
		if term == "" {
			return
		}
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}

	for _, tok := range tokens {
		add(tok)
		for _, rel := range forward[tok] {
			add(rel)
		}
		for _, src := range reverse[tok] {
			add(src)
		}
	}
	return out
}

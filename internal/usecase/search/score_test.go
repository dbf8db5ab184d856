package search

import (
	"testing"

	"github.com/calcportal/searchd/internal/domain"
)

func TestScore_WeightTable(t *testing.T) {
	w := DefaultWeights()
	doc := makeDoc("mortgage", domain.TypeCalculator, "en",
		"Mortgage Calculator", "Estimate your mortgage payments", "amortization schedule",
		"finance", []string{"loan"}, []string{"annuity"})

	cases := []struct {
		name   string
		query  string
		tokens []string
		want   int
	}{
		{
			name:   "title substring plus token hits",
			query:  "mortgage",
			tokens: []string{"mortgage"},
			// title substring 35 + description query 15 + token title 12 +
			// token description 6
			want: 35 + 15 + 12 + 6,
		},
		{
			name:   "exact title stacks with substring",
			query:  "mortgage calculator",
			tokens: []string{"mortgage", "calculator"},
			// exact 60 + substring 35 + token title 12*2 + token
			// description 6 (only "mortgage" appears there)
			want: 60 + 35 + 24 + 6,
		},
		{
			name:   "tag and keyword tokens",
			query:  "annuity loan",
			tokens: []string{"annuity", "loan"},
			// token tag 4 (loan) + token keyword 2 (annuity)
			want: 4 + 2,
		},
		{
			name:   "category and body tokens",
			query:  "finance amortization",
			tokens: []string{"finance", "amortization"},
			want:   5 + 3,
		},
		{
			name:   "no match",
			query:  "bearing capacity",
			tokens: []string{"bearing", "capacity"},
			want:   0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := score(&doc, tc.query, tc.tokens, w); got != tc.want {
				t.Errorf("score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScore_MonotonicInTokens(t *testing.T) {
	w := DefaultWeights()
	doc := makeDoc("mortgage", domain.TypeCalculator, "en",
		"Mortgage Calculator", "Estimate payments", "", "finance", nil, nil)

	tokens := []string{"mortgage"}
	base := score(&doc, "mortgage", tokens, w)

	// Adding a token that matches another field never decreases the score.
	extended := append(append([]string(nil), tokens...), "finance")
	if got := score(&doc, "mortgage", extended, w); got < base {
		t.Errorf("score decreased after adding a matching token: %d < %d", got, base)
	}

	// Nor does adding a token that matches nothing.
	noise := append(append([]string(nil), tokens...), "zzz")
	if got := score(&doc, "mortgage", noise, w); got != base {
		t.Errorf("non-matching token changed the score: %d != %d", got, base)
	}
}

func TestScore_Deterministic(t *testing.T) {
	w := DefaultWeights()
	doc := makeDoc("mortgage", domain.TypeCalculator, "en",
		"Mortgage Calculator", "Estimate payments", "", "finance", nil, nil)

	first := score(&doc, "mortgage", []string{"mortgage", "finance"}, w)
	for i := 0; i < 10; i++ {
		if got := score(&doc, "mortgage", []string{"mortgage", "finance"}, w); got != first {
			t.Fatalf("score not deterministic: %d != %d", got, first)
		}
	}
}

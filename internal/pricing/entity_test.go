package pricing

import (
	"testing"

	"tripwatch/internal/domain/entities"
)

func TestExtractLabel_Matches(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "single airline",
			text: "Nonstop on JetBlue from JFK",
			want: "JetBlue",
		},
		{
			name: "case insensitive",
			text: "cheap seats on SOUTHWEST this fall",
			want: "Southwest",
		},
		{
			name: "first listed entry wins over earlier text position",
			// Southwest appears first in the text, Delta first in the vocabulary.
			text: "Southwest at $290 or Delta at $312",
			want: "Delta",
		},
		{
			name: "multi word entry",
			text: "Book with American Airlines today",
			want: "American Airlines",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, fromText := newTestExtractor(1).ExtractLabel(tc.text, Vocabulary(entities.CategoryFlight))
			if !fromText {
				t.Fatalf("expected a text match, got random pick %q", got)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestExtractLabel_FallbackStaysInVocabulary(t *testing.T) {
	for _, cat := range []entities.Category{entities.CategoryFlight, entities.CategoryHotel, entities.CategoryCar} {
		vocab := Vocabulary(cat)
		for seed := int64(0); seed < 25; seed++ {
			got, fromText := newTestExtractor(seed).ExtractLabel("no known names here", vocab)
			if fromText {
				t.Fatalf("category %s: expected random pick", cat)
			}
			if !contains(vocab, got) {
				t.Fatalf("category %s seed %d: %q not in vocabulary", cat, seed, got)
			}
		}
	}
}

func TestExtractLabel_EmptyVocabulary(t *testing.T) {
	got, fromText := newTestExtractor(1).ExtractLabel("anything", nil)
	if got != "" || fromText {
		t.Fatalf("expected empty result, got %q (fromText=%v)", got, fromText)
	}
}

func TestVocabulary_UnknownCategory(t *testing.T) {
	if v := Vocabulary(entities.Category("cruise")); v != nil {
		t.Fatalf("expected nil vocabulary, got %v", v)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

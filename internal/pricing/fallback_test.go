package pricing

import (
	"strings"
	"testing"

	"tripwatch/internal/domain/entities"
)

func TestSimulateQuote(t *testing.T) {
	band := Band{Low: 300, High: 900}
	// Jitter can push the price 10% of the band width past either edge.
	jitterLow, jitterHigh := 240, 960

	for seed := int64(0); seed < 50; seed++ {
		q := newTestExtractor(seed).SimulateQuote(entities.CategoryFlight, "LAX", band)

		if q.Provenance != entities.ProvenanceFallback {
			t.Fatalf("seed %d: expected fallback provenance, got %s", seed, q.Provenance)
		}
		if q.Price < jitterLow || q.Price > jitterHigh {
			t.Fatalf("seed %d: price %d outside jittered band [%d, %d]", seed, q.Price, jitterLow, jitterHigh)
		}
		if !contains(Vocabulary(entities.CategoryFlight), q.Label) {
			t.Fatalf("seed %d: label %q not in flight vocabulary", seed, q.Label)
		}
		if len(q.BookingURLs) != 3 {
			t.Fatalf("seed %d: expected 3 booking URLs, got %d", seed, len(q.BookingURLs))
		}
		for _, u := range q.BookingURLs {
			if !strings.Contains(u, "LAX") {
				t.Fatalf("seed %d: booking URL %q missing destination", seed, u)
			}
		}
		if q.WithinBudget {
			t.Fatalf("seed %d: WithinBudget must be left for the aggregator", seed)
		}
	}
}

func TestSimulateQuote_EscapesDestination(t *testing.T) {
	q := newTestExtractor(1).SimulateQuote(entities.CategoryHotel, "San Francisco", Band{Low: 100, High: 300})
	for _, u := range q.BookingURLs {
		if strings.Contains(u, " ") {
			t.Fatalf("booking URL %q contains unescaped space", u)
		}
	}
}

func TestSimulateQuote_PerCategoryTemplates(t *testing.T) {
	for _, cat := range []entities.Category{entities.CategoryFlight, entities.CategoryHotel, entities.CategoryCar} {
		urls := SyntheticBookingURLs(cat, "LAX")
		if len(urls) != 3 {
			t.Fatalf("category %s: expected 3 URLs, got %d", cat, len(urls))
		}
		for _, u := range urls {
			if !strings.HasPrefix(u, "https://") {
				t.Fatalf("category %s: malformed URL %q", cat, u)
			}
		}
	}
}

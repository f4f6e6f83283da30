package pricing

import (
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// Extractor pulls structured price/label facts out of free-text search
// results. All randomness (fallback paths only) flows through the injected
// source, so simulated values are reproducible under a fixed seed.

type Extractor struct {
	rng *rand.Rand
}

func NewExtractor(rng *rand.Rand) *Extractor {
	return &Extractor{rng: rng}
}

// Ordered currency patterns. Each captures the numeric amount (group 1),
// allowing thousands separators and optional cents.
// amountPattern needs the comma-separated alternative first with a mandatory
// separator group: a bare (?:,\d{3})* would let leftmost-first matching stop
// after three digits of an unseparated amount like 5000.
const amountPattern = `(\d{1,3}(?:,\d{3})+(?:\.\d{1,2})?|\d+(?:\.\d{1,2})?)`

var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s?` + amountPattern),
	regexp.MustCompile(`(?i)` + amountPattern + `\s*(?:USD|dollars)`),
	regexp.MustCompile(`(?i)price:?\s*\$?` + amountPattern),
	regexp.MustCompile(`(?i)(?:from|starting at)\s+\$?` + amountPattern),
}

// Outlier rejection band relative to [low, high].
const (
	outlierLowFactor  = 0.3
	outlierHighFactor = 3.0
)

// ExtractPrice scans text for dollar amounts, drops values outside
// [low*0.3, high*3], and returns the cheapest survivor rounded to whole
// currency units. When nothing usable matches it returns a uniform random
// value in [low, high] and fromText=false; callers must tag the quote's
// provenance as fallback in that case.
func (e *Extractor) ExtractPrice(text string, low, high int) (price int, fromText bool) {
	minBand := float64(low) * outlierLowFactor
	maxBand := float64(high) * outlierHighFactor

	best := math.MaxFloat64
	found := false
	for _, pat := range pricePatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
			if err != nil {
				continue
			}
			if v < minBand || v > maxBand {
				continue
			}
			found = true
			if v < best {
				best = v
			}
		}
	}
	if found {
		return int(math.Round(best)), true
	}
	return e.randomInBand(Band{Low: low, High: high}), false
}

// randomInBand returns a uniform value in [Low, High] inclusive.
func (e *Extractor) randomInBand(b Band) int {
	if b.High <= b.Low {
		return b.Low
	}
	return b.Low + e.rng.Intn(b.High-b.Low+1)
}

package pricing

import (
	"fmt"
	"math"
	"net/url"

	"tripwatch/internal/domain/entities"
)

// Simulation fallback: when the search gateway yields nothing usable, the
// pipeline still has to hand back a structurally complete quote. Prices are
// drawn from the category band and jittered; labels come from the category
// vocabulary; booking URLs are synthesized from known site templates.

// Jitter amplitude as a fraction of the band width.
const jitterFactor = 0.1

var bookingURLTemplates = map[entities.Category][]string{
	entities.CategoryFlight: {
		"https://www.kayak.com/flights?destination=%s",
		"https://www.expedia.com/Flights-Search?leg1=to:%s",
		"https://www.skyscanner.com/transport/flights-to/%s",
	},
	entities.CategoryHotel: {
		"https://www.booking.com/searchresults.html?ss=%s",
		"https://www.hotels.com/search.do?destination=%s",
		"https://www.expedia.com/Hotel-Search?destination=%s",
	},
	entities.CategoryCar: {
		"https://www.kayak.com/cars/%s",
		"https://www.rentalcars.com/search?location=%s",
		"https://www.expedia.com/Cars-Search?locn=%s",
	},
}

// SimulateQuote builds a fallback-provenance quote for a category: a jittered
// uniform price from the band, a random vocabulary label, and three synthetic
// booking URLs for the destination. WithinBudget is left for the aggregator.
func (e *Extractor) SimulateQuote(cat entities.Category, destination string, band Band) entities.CategoryQuote {
	width := band.High - band.Low
	base := float64(e.randomInBand(band))
	jitter := 0.0
	if width > 0 {
		amp := float64(width) * jitterFactor
		jitter = (e.rng.Float64()*2 - 1) * amp
	}
	price := int(math.Round(base + jitter))
	if price < 1 {
		price = 1
	}

	vocab := Vocabulary(cat)
	label := ""
	if len(vocab) > 0 {
		label = vocab[e.rng.Intn(len(vocab))]
	}

	return entities.CategoryQuote{
		Category:    cat,
		Price:       price,
		Label:       label,
		Provenance:  entities.ProvenanceFallback,
		BookingURLs: SyntheticBookingURLs(cat, destination),
	}
}

// SyntheticBookingURLs fills the category's URL templates with the
// destination. Always returns three entries.
func SyntheticBookingURLs(cat entities.Category, destination string) []string {
	templates := bookingURLTemplates[cat]
	urls := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		urls = append(urls, fmt.Sprintf(tmpl, url.QueryEscape(destination)))
	}
	return urls
}

package entities

import "time"

// Category identifies one independent price lookup.

type Category string

const (
	CategoryFlight Category = "flight"
	CategoryHotel  Category = "hotel"
	CategoryCar    Category = "car"
)

// Provenance tags where a quote's price and label came from.

type Provenance string

const (
	// ProvenanceSearch marks a quote extracted from real search-gateway text.
	ProvenanceSearch Provenance = "search"
	// ProvenanceFallback marks a simulated quote produced when the gateway
	// yielded nothing usable.
	ProvenanceFallback Provenance = "fallback"
)

// CategoryQuote is the result of one category lookup.
//
// Price is in whole currency units: absolute for flight, per-night for hotel,
// per-day for car. WithinBudget is computed by the aggregator only; lookup
// code must leave it false.
type CategoryQuote struct {
	Category     Category   `json:"category"`
	Price        int        `json:"price"`
	Label        string     `json:"label"` // carrier, hotel chain, or vehicle class
	Provenance   Provenance `json:"provenance"`
	BookingURLs  []string   `json:"booking_urls"` // at most 3
	WithinBudget bool       `json:"within_budget"`
}

// PriceReport is the unit returned to callers and optionally persisted.
//
// Invariant: TotalCost == Flight.Price + Hotel.Price*Days + Car.Price*Days,
// with the same Days value for both per-unit categories.
type PriceReport struct {
	ID                string        `json:"id"`
	UserID            string        `json:"user_id,omitempty"`
	Flight            CategoryQuote `json:"flight"`
	Hotel             CategoryQuote `json:"hotel"`
	Car               CategoryQuote `json:"car"`
	Days              int           `json:"days"`
	TotalCost         int           `json:"total_cost"`
	WithinTotalBudget bool          `json:"within_total_budget"`
	CreatedAt         time.Time     `json:"created_at"`
}

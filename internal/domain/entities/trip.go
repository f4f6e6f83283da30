package entities

import (
	"math"
	"time"
)

// TripRequest describes one monitoring cycle: where, when, and how much the
// traveler is willing to spend per category. Immutable once submitted.
//
// Monetary representation:
//   - FlightBudget is the total round-trip budget.
//   - HotelBudgetPerNight and CarBudgetPerDay are per-unit budgets; the
//     aggregator multiplies them by trip length.

type TripRequest struct {
	UserID              string
	Origin              string
	Destination         string
	StartDate           time.Time
	EndDate             time.Time
	TotalBudget         float64
	FlightBudget        float64
	HotelBudgetPerNight float64
	CarBudgetPerDay     float64

	// Optional preference sets. Nil means no preference clauses are added to
	// the generated search queries.
	FlightPrefs *FlightPreferences
	HotelPrefs  *HotelPreferences
	CarPrefs    *CarPreferences
}

// Days returns the trip length in whole days, rounding partial days up.
// A value below 1 means the date range is invalid for pricing.
func (r TripRequest) Days() int {
	return int(math.Ceil(r.EndDate.Sub(r.StartDate).Hours() / 24))
}

// FlightPreferences refines the flight search query.
type FlightPreferences struct {
	Stops             string   `json:"stops,omitempty"` // direct, one_stop, any
	PreferredAirlines []string `json:"preferred_airlines,omitempty"`
	TimeOfDay         string   `json:"time_of_day,omitempty"` // morning, afternoon, evening
	ExtraLegroom      bool     `json:"extra_legroom,omitempty"`
	CheckedBags       int      `json:"checked_bags,omitempty"`
}

// HotelPreferences refines the hotel search query.
type HotelPreferences struct {
	MinStars         int      `json:"min_stars,omitempty"`
	RoomType         string   `json:"room_type,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
	FreeCancellation bool     `json:"free_cancellation,omitempty"`
}

// CarPreferences refines the car-rental search query.
type CarPreferences struct {
	VehicleClass     string   `json:"vehicle_class,omitempty"`
	Transmission     string   `json:"transmission,omitempty"`
	UnlimitedMileage bool     `json:"unlimited_mileage,omitempty"`
	Features         []string `json:"features,omitempty"`
}

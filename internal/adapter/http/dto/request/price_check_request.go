package request

import (
	"errors"
	"strings"
	"time"

	"tripwatch/internal/domain/entities"
)

var (
	ErrInvalidDate = errors.New("dates must use the YYYY-MM-DD format")
)

const dateLayout = "2006-01-02"

// FlightPreferencesRequest mirrors entities.FlightPreferences on the wire.
type FlightPreferencesRequest struct {
	Stops             string   `json:"stops"`
	PreferredAirlines []string `json:"preferred_airlines"`
	TimeOfDay         string   `json:"time_of_day"`
	ExtraLegroom      bool     `json:"extra_legroom"`
	CheckedBags       int      `json:"checked_bags"`
}

type HotelPreferencesRequest struct {
	MinStars         int      `json:"min_stars"`
	RoomType         string   `json:"room_type"`
	Amenities        []string `json:"amenities"`
	FreeCancellation bool     `json:"free_cancellation"`
}

type CarPreferencesRequest struct {
	VehicleClass     string   `json:"vehicle_class"`
	Transmission     string   `json:"transmission"`
	UnlimitedMileage bool     `json:"unlimited_mileage"`
	Features         []string `json:"features"`
}

// PriceCheckRequest is the POST /v1/price-checks payload. Budgets are whole
// currency amounts; dates are calendar dates. The preference blocks are
// optional and refine the generated search queries.
type PriceCheckRequest struct {
	UserID              string  `json:"user_id"`
	Origin              string  `json:"origin" binding:"required"`
	Destination         string  `json:"destination" binding:"required"`
	StartDate           string  `json:"start_date" binding:"required"`
	EndDate             string  `json:"end_date" binding:"required"`
	TotalBudget         float64 `json:"total_budget" binding:"required"`
	FlightBudget        float64 `json:"flight_budget" binding:"required"`
	HotelBudgetPerNight float64 `json:"hotel_budget_per_night" binding:"required"`
	CarBudgetPerDay     float64 `json:"car_budget_per_day" binding:"required"`

	FlightPreferences *FlightPreferencesRequest `json:"flight_preferences"`
	HotelPreferences  *HotelPreferencesRequest  `json:"hotel_preferences"`
	CarPreferences    *CarPreferencesRequest    `json:"car_preferences"`
}

// ToTripRequest parses the wire payload into the domain record. Range checks
// (positive budgets, days >= 1) are the use case's responsibility; only the
// date format is validated here.
func (r PriceCheckRequest) ToTripRequest() (entities.TripRequest, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(r.StartDate))
	if err != nil {
		return entities.TripRequest{}, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(r.EndDate))
	if err != nil {
		return entities.TripRequest{}, ErrInvalidDate
	}

	req := entities.TripRequest{
		UserID:              strings.TrimSpace(r.UserID),
		Origin:              strings.TrimSpace(r.Origin),
		Destination:         strings.TrimSpace(r.Destination),
		StartDate:           start,
		EndDate:             end,
		TotalBudget:         r.TotalBudget,
		FlightBudget:        r.FlightBudget,
		HotelBudgetPerNight: r.HotelBudgetPerNight,
		CarBudgetPerDay:     r.CarBudgetPerDay,
	}

	if p := r.FlightPreferences; p != nil {
		req.FlightPrefs = &entities.FlightPreferences{
			Stops:             strings.TrimSpace(p.Stops),
			PreferredAirlines: p.PreferredAirlines,
			TimeOfDay:         strings.TrimSpace(p.TimeOfDay),
			ExtraLegroom:      p.ExtraLegroom,
			CheckedBags:       p.CheckedBags,
		}
	}
	if p := r.HotelPreferences; p != nil {
		req.HotelPrefs = &entities.HotelPreferences{
			MinStars:         p.MinStars,
			RoomType:         strings.TrimSpace(p.RoomType),
			Amenities:        p.Amenities,
			FreeCancellation: p.FreeCancellation,
		}
	}
	if p := r.CarPreferences; p != nil {
		req.CarPrefs = &entities.CarPreferences{
			VehicleClass:     strings.TrimSpace(p.VehicleClass),
			Transmission:     strings.TrimSpace(p.Transmission),
			UnlimitedMileage: p.UnlimitedMileage,
			Features:         p.Features,
		}
	}
	return req, nil
}

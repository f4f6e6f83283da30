package pricing

import (
	"fmt"
	"strings"
	"time"

	"tripwatch/internal/domain/entities"
)

// Query building is pure string assembly: same inputs, same
// (query, allow-list) out, no I/O. The allow-lists bias the search gateway
// toward booking sites that publish concrete prices.

var flightDomains = []string{
	"kayak.com",
	"expedia.com",
	"skyscanner.com",
	"priceline.com",
	"momondo.com",
	"orbitz.com",
	"travelocity.com",
	"cheapflights.com",
	"hopper.com",
	"google.com",
	"delta.com",
	"united.com",
	"aa.com",
	"southwest.com",
	"jetblue.com",
	"alaskaair.com",
}

var hotelDomains = []string{
	"booking.com",
	"hotels.com",
	"expedia.com",
	"agoda.com",
	"trivago.com",
	"kayak.com",
	"priceline.com",
	"orbitz.com",
	"travelocity.com",
	"marriott.com",
	"hilton.com",
	"hyatt.com",
	"ihg.com",
	"choicehotels.com",
	"bestwestern.com",
}

var carDomains = []string{
	"kayak.com",
	"expedia.com",
	"rentalcars.com",
	"carrentals.com",
	"priceline.com",
	"costcotravel.com",
	"hertz.com",
	"enterprise.com",
	"avis.com",
	"budget.com",
	"alamo.com",
	"nationalcar.com",
	"thrifty.com",
	"dollar.com",
	"turo.com",
}

const dateLayout = "2006-01-02"

// FlightQuery builds the flight search query and its domain allow-list.
func FlightQuery(origin, destination string, date time.Time, p *entities.FlightPreferences) (string, []string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Cheapest round trip flights from %s to %s departing %s.",
		origin, destination, date.Format(dateLayout))
	b.WriteString(" Only use flight booking sites. Return concrete dollar prices, airline names and direct booking links.")

	if p != nil {
		switch p.Stops {
		case "direct":
			b.WriteString(" Direct flights only.")
		case "one_stop":
			b.WriteString(" At most one stop.")
		}
		if len(p.PreferredAirlines) > 0 {
			fmt.Fprintf(&b, " Prefer %s.", joinList(p.PreferredAirlines))
		}
		if p.TimeOfDay != "" {
			fmt.Fprintf(&b, " %s departure preferred.", titleCase(p.TimeOfDay))
		}
		if p.ExtraLegroom {
			b.WriteString(" Extra legroom seating.")
		}
		if p.CheckedBags > 0 {
			fmt.Fprintf(&b, " Include %d checked bag(s).", p.CheckedBags)
		}
	}
	return b.String(), flightDomains
}

// HotelQuery builds the hotel search query and its domain allow-list.
func HotelQuery(destination string, checkIn, checkOut time.Time, p *entities.HotelPreferences) (string, []string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Best hotel deals in %s from %s to %s.",
		destination, checkIn.Format(dateLayout), checkOut.Format(dateLayout))
	b.WriteString(" Only use hotel booking sites. Return concrete nightly dollar rates, hotel names and direct booking links.")

	if p != nil {
		if p.MinStars > 0 {
			fmt.Fprintf(&b, " %d-star rating or better.", p.MinStars)
		}
		if p.RoomType != "" {
			fmt.Fprintf(&b, " %s room.", titleCase(p.RoomType))
		}
		if len(p.Amenities) > 0 {
			fmt.Fprintf(&b, " With %s.", joinList(p.Amenities))
		}
		if p.FreeCancellation {
			b.WriteString(" Free cancellation.")
		}
	}
	return b.String(), hotelDomains
}

// CarQuery builds the car-rental search query and its domain allow-list.
func CarQuery(destination string, pickUp, dropOff time.Time, p *entities.CarPreferences) (string, []string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Cheapest car rental in %s from %s to %s.",
		destination, pickUp.Format(dateLayout), dropOff.Format(dateLayout))
	b.WriteString(" Only use car rental booking sites. Return concrete daily dollar rates, vehicle types and direct booking links.")

	if p != nil {
		if p.VehicleClass != "" {
			fmt.Fprintf(&b, " %s class vehicle.", titleCase(p.VehicleClass))
		}
		if p.Transmission != "" {
			fmt.Fprintf(&b, " %s transmission.", titleCase(p.Transmission))
		}
		if p.UnlimitedMileage {
			b.WriteString(" Unlimited mileage.")
		}
		if len(p.Features) > 0 {
			fmt.Fprintf(&b, " With %s.", joinList(p.Features))
		}
	}
	return b.String(), carDomains
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}

package pricing

import "tripwatch/internal/domain/entities"

// Closed label vocabularies per category. Order matters: the matcher walks
// the list in declared order and the first entry whose literal form occurs in
// the text wins.

var airlines = []string{
	"Delta",
	"United",
	"American Airlines",
	"Southwest",
	"JetBlue",
	"Alaska Airlines",
	"Spirit",
	"Frontier",
	"Hawaiian Airlines",
}

var hotelChains = []string{
	"Marriott",
	"Hilton",
	"Hyatt",
	"Sheraton",
	"Holiday Inn",
	"Best Western",
	"Courtyard",
	"Hampton Inn",
	"Comfort Inn",
	"DoubleTree",
}

var carClasses = []string{
	"Economy",
	"Compact",
	"Midsize",
	"Full-size",
	"SUV",
	"Minivan",
	"Convertible",
}

// Vocabulary returns the label vocabulary for a category. The returned slice
// must not be mutated.
func Vocabulary(cat entities.Category) []string {
	switch cat {
	case entities.CategoryFlight:
		return airlines
	case entities.CategoryHotel:
		return hotelChains
	case entities.CategoryCar:
		return carClasses
	}
	return nil
}

// Band is the plausible price range for one category lookup, in whole
// currency units. Extraction rejects values outside [Low*0.3, High*3];
// fallback simulation draws from inside the band.
type Band struct {
	Low  int
	High int
}

// Band spread relative to the category budget. The historical handlers
// hard-coded bands next to default budgets at the same ratios.
const (
	bandLowFactor  = 0.5
	bandHighFactor = 1.5
)

// BandFromBudget derives a category band from its budget.
func BandFromBudget(budget float64) Band {
	return Band{
		Low:  int(budget * bandLowFactor),
		High: int(budget * bandHighFactor),
	}
}

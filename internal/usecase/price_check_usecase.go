package usecase

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"tripwatch/internal/domain/entities"
	"tripwatch/internal/pricing"
	"tripwatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoute     = errors.New("origin and destination are required")
	ErrInvalidDateRange = errors.New("trip must span at least one full day")
	ErrInvalidBudget    = errors.New("all budgets must be positive")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrReportsNotFound  = errors.New("no price reports found")
	ErrPersistenceOff   = errors.New("report persistence is not enabled")
)

const (
	defaultSearchTimeout = 8 * time.Second
	persistTimeout       = 5 * time.Second
	maxBookingURLs       = 3
)

// IPriceCheckUseCase exposes the price-check pipeline.
//
//   - CheckPrices runs one monitoring cycle: validate, three concurrent
//     category lookups (search or simulation fallback), aggregate, optionally
//     persist.
//   - ListReports reads back persisted reports for a user, newest first.

type IPriceCheckUseCase interface {
	CheckPrices(ctx context.Context, req entities.TripRequest) (entities.PriceReport, error)
	ListReports(ctx context.Context, userID string) ([]entities.PriceReport, error)
}

type PriceCheckUseCase struct {
	gateway interfaces.ISearchGateway         // nil means every lookup uses the simulation fallback
	repo    interfaces.IPriceReportRepository // nil means persistence is disabled

	searchTimeout time.Duration
	newRand       func() *rand.Rand // one independent source per lookup leg
}

var _ IPriceCheckUseCase = (*PriceCheckUseCase)(nil)

func NewPriceCheckUseCase(gateway interfaces.ISearchGateway, repo interfaces.IPriceReportRepository) *PriceCheckUseCase {
	return &PriceCheckUseCase{
		gateway:       gateway,
		repo:          repo,
		searchTimeout: defaultSearchTimeout,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

func (u *PriceCheckUseCase) CheckPrices(ctx context.Context, req entities.TripRequest) (entities.PriceReport, error) {
	if err := validateTripRequest(req); err != nil {
		return entities.PriceReport{}, err
	}
	days := req.Days()

	flightQuery, flightSites := pricing.FlightQuery(req.Origin, req.Destination, req.StartDate, req.FlightPrefs)
	hotelQuery, hotelSites := pricing.HotelQuery(req.Destination, req.StartDate, req.EndDate, req.HotelPrefs)
	carQuery, carSites := pricing.CarQuery(req.Destination, req.StartDate, req.EndDate, req.CarPrefs)

	var (
		wg     sync.WaitGroup
		flight entities.CategoryQuote
		hotel  entities.CategoryQuote
		car    entities.CategoryQuote
	)

	// Three independent legs: no shared mutable state, each owns its random
	// source. The report is assembled only after all three complete.
	wg.Add(3)
	go func() {
		defer wg.Done()
		flight = u.lookup(ctx, entities.CategoryFlight, req.Destination, flightQuery, flightSites, pricing.BandFromBudget(req.FlightBudget))
	}()
	go func() {
		defer wg.Done()
		hotel = u.lookup(ctx, entities.CategoryHotel, req.Destination, hotelQuery, hotelSites, pricing.BandFromBudget(req.HotelBudgetPerNight))
	}()
	go func() {
		defer wg.Done()
		car = u.lookup(ctx, entities.CategoryCar, req.Destination, carQuery, carSites, pricing.BandFromBudget(req.CarBudgetPerDay))
	}()
	wg.Wait()

	flight.WithinBudget = float64(flight.Price) <= req.FlightBudget
	hotel.WithinBudget = float64(hotel.Price) <= req.HotelBudgetPerNight
	car.WithinBudget = float64(car.Price) <= req.CarBudgetPerDay

	totalCost := flight.Price + hotel.Price*days + car.Price*days

	report := entities.PriceReport{
		ID:                uuid.NewString(),
		UserID:            strings.TrimSpace(req.UserID),
		Flight:            flight,
		Hotel:             hotel,
		Car:               car,
		Days:              days,
		TotalCost:         totalCost,
		WithinTotalBudget: float64(totalCost) <= req.TotalBudget,
		CreatedAt:         time.Now().UTC(),
	}

	u.persistAsync(report)
	return report, nil
}

func (u *PriceCheckUseCase) ListReports(ctx context.Context, userID string) ([]entities.PriceReport, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if u.repo == nil {
		return nil, ErrPersistenceOff
	}

	reports, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, ErrReportsNotFound
	}
	return reports, nil
}

// lookup runs one category leg: query the gateway, extract a price and label
// from the combined answer+snippet text, or fall through to a fully simulated
// quote. It never returns an error; every failure mode ends in a fallback.
func (u *PriceCheckUseCase) lookup(ctx context.Context, cat entities.Category, destination, query string, sites []string, band pricing.Band) entities.CategoryQuote {
	ex := pricing.NewExtractor(u.newRand())

	if u.gateway == nil {
		return ex.SimulateQuote(cat, destination, band)
	}

	searchCtx, cancel := context.WithTimeout(ctx, u.searchTimeout)
	defer cancel()

	result, err := u.gateway.Search(searchCtx, query, sites)
	if err != nil {
		log.Printf("[pricecheck][%s] search failed, using simulated quote: %v", cat, err)
		return ex.SimulateQuote(cat, destination, band)
	}
	if !result.Usable() {
		log.Printf("[pricecheck][%s] search returned no usable results, using simulated quote", cat)
		return ex.SimulateQuote(cat, destination, band)
	}

	text := combineText(result)
	price, fromText := ex.ExtractPrice(text, band.Low, band.High)
	if !fromText {
		// The gateway answered but published no in-band dollar figure; the
		// price is the primary fact, so the whole quote is simulated.
		return ex.SimulateQuote(cat, destination, band)
	}

	label, _ := ex.ExtractLabel(text, pricing.Vocabulary(cat))

	urls := resultURLs(result)
	if len(urls) == 0 {
		urls = pricing.SyntheticBookingURLs(cat, destination)
	}

	return entities.CategoryQuote{
		Category:    cat,
		Price:       price,
		Label:       label,
		Provenance:  entities.ProvenanceSearch,
		BookingURLs: urls,
	}
}

// persistAsync hands the report to the repository without blocking or failing
// the response. No-op when persistence is disabled or the report is anonymous.
func (u *PriceCheckUseCase) persistAsync(report entities.PriceReport) {
	if u.repo == nil || report.UserID == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := u.repo.Save(ctx, report); err != nil {
			log.Printf("[pricecheck][persist] failed to save report %s for user %s: %v", report.ID, report.UserID, err)
		}
	}()
}

func validateTripRequest(req entities.TripRequest) error {
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return ErrInvalidRoute
	}
	if req.TotalBudget <= 0 || req.FlightBudget <= 0 || req.HotelBudgetPerNight <= 0 || req.CarBudgetPerDay <= 0 {
		return ErrInvalidBudget
	}
	if req.Days() < 1 {
		return ErrInvalidDateRange
	}
	return nil
}

// combineText flattens a gateway result into one extraction input: the
// synthesized answer followed by every snippet.
func combineText(r entities.SearchResult) string {
	var b strings.Builder
	b.WriteString(r.Answer)
	for _, item := range r.Results {
		if item.Snippet == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(item.Snippet)
	}
	return b.String()
}

func resultURLs(r entities.SearchResult) []string {
	urls := make([]string, 0, maxBookingURLs)
	for _, item := range r.Results {
		if item.URL == "" {
			continue
		}
		urls = append(urls, item.URL)
		if len(urls) == maxBookingURLs {
			break
		}
	}
	return urls
}

package usecase

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"tripwatch/internal/domain/entities"
	mock_interfaces "tripwatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func seededUseCase(uc *PriceCheckUseCase, seed int64) *PriceCheckUseCase {
	uc.newRand = func() *rand.Rand {
		return rand.New(rand.NewSource(seed))
	}
	return uc
}

func testTrip() entities.TripRequest {
	return entities.TripRequest{
		Origin:              "NYC",
		Destination:         "LAX",
		StartDate:           time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:             time.Date(2024, 12, 4, 0, 0, 0, 0, time.UTC),
		TotalBudget:         2000,
		FlightBudget:        600,
		HotelBudgetPerNight: 200,
		CarBudgetPerDay:     60,
	}
}

func TestCheckPrices_Validation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*entities.TripRequest)
		wantErr error
	}{
		{name: "missing origin", mutate: func(r *entities.TripRequest) { r.Origin = "  " }, wantErr: ErrInvalidRoute},
		{name: "missing destination", mutate: func(r *entities.TripRequest) { r.Destination = "" }, wantErr: ErrInvalidRoute},
		{name: "zero total budget", mutate: func(r *entities.TripRequest) { r.TotalBudget = 0 }, wantErr: ErrInvalidBudget},
		{name: "negative car budget", mutate: func(r *entities.TripRequest) { r.CarBudgetPerDay = -5 }, wantErr: ErrInvalidBudget},
		{name: "same day trip", mutate: func(r *entities.TripRequest) { r.EndDate = r.StartDate }, wantErr: ErrInvalidDateRange},
		{name: "inverted dates", mutate: func(r *entities.TripRequest) {
			r.StartDate, r.EndDate = r.EndDate, r.StartDate
		}, wantErr: ErrInvalidDateRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockISearchGateway(ctrl)
			// No lookup may happen before validation passes.
			uc := NewPriceCheckUseCase(gateway, nil)

			req := testTrip()
			tc.mutate(&req)

			_, err := uc.CheckPrices(context.Background(), req)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCheckPrices_AllLookupsFallBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockISearchGateway(ctrl)
	gateway.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entities.SearchResult{}, errors.New("gateway down")).Times(3)

	uc := seededUseCase(NewPriceCheckUseCase(gateway, nil), 11)

	report, err := uc.CheckPrices(context.Background(), testTrip())
	if err != nil {
		t.Fatalf("gateway failure must not surface: %v", err)
	}

	if report.Days != 3 {
		t.Fatalf("expected 3 days, got %d", report.Days)
	}
	for _, q := range []entities.CategoryQuote{report.Flight, report.Hotel, report.Car} {
		if q.Provenance != entities.ProvenanceFallback {
			t.Fatalf("category %s: expected fallback provenance, got %s", q.Category, q.Provenance)
		}
		if len(q.BookingURLs) != 3 {
			t.Fatalf("category %s: expected 3 synthetic URLs, got %d", q.Category, len(q.BookingURLs))
		}
	}

	// Simulated prices stay within the jittered budget-derived bands.
	checkRange := func(name string, price, low, high int) {
		if price < low || price > high {
			t.Fatalf("%s price %d outside [%d, %d]", name, price, low, high)
		}
	}
	checkRange("flight", report.Flight.Price, 240, 960)
	checkRange("hotel", report.Hotel.Price, 80, 320)
	checkRange("car", report.Car.Price, 24, 96)

	wantTotal := report.Flight.Price + report.Hotel.Price*3 + report.Car.Price*3
	if report.TotalCost != wantTotal {
		t.Fatalf("total %d does not match formula value %d", report.TotalCost, wantTotal)
	}
	if report.WithinTotalBudget != (float64(report.TotalCost) <= 2000) {
		t.Fatal("WithinTotalBudget must be computed, not asserted")
	}
	if report.ID == "" || report.CreatedAt.IsZero() {
		t.Fatal("expected report id and timestamp")
	}
}

func TestCheckPrices_SearchExtraction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockISearchGateway(ctrl)
	gateway.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, query string, _ []string) (entities.SearchResult, error) {
			if strings.Contains(query, "flights") {
				return entities.SearchResult{
					Answer: "Flights from $312 on Delta via kayak.com, or $290 on Southwest",
					Results: []entities.SearchItem{
						{Title: "NYC to LAX", URL: "https://www.kayak.com/flights/NYC-LAX", Snippet: "Deals from $305"},
					},
				}, nil
			}
			return entities.SearchResult{}, errors.New("no results")
		},
	).Times(3)

	uc := seededUseCase(NewPriceCheckUseCase(gateway, nil), 5)

	report, err := uc.CheckPrices(context.Background(), testTrip())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Flight budget 600 gives band [300, 900] and rejection band [90, 2700]:
	// 290 survives and is the minimum.
	if report.Flight.Provenance != entities.ProvenanceSearch {
		t.Fatalf("expected search provenance, got %s", report.Flight.Provenance)
	}
	if report.Flight.Price != 290 {
		t.Fatalf("expected extracted price 290, got %d", report.Flight.Price)
	}
	if report.Flight.Label != "Delta" {
		t.Fatalf("expected first-listed carrier Delta, got %q", report.Flight.Label)
	}
	if !report.Flight.WithinBudget {
		t.Fatal("290 <= 600, flag must be true")
	}
	if len(report.Flight.BookingURLs) != 1 || report.Flight.BookingURLs[0] != "https://www.kayak.com/flights/NYC-LAX" {
		t.Fatalf("expected gateway result URL, got %v", report.Flight.BookingURLs)
	}

	if report.Hotel.Provenance != entities.ProvenanceFallback {
		t.Fatalf("hotel leg failed, expected fallback, got %s", report.Hotel.Provenance)
	}
	if report.Car.Provenance != entities.ProvenanceFallback {
		t.Fatalf("car leg failed, expected fallback, got %s", report.Car.Provenance)
	}

	wantTotal := report.Flight.Price + report.Hotel.Price*3 + report.Car.Price*3
	if report.TotalCost != wantTotal {
		t.Fatalf("total %d does not match formula value %d", report.TotalCost, wantTotal)
	}
}

func TestCheckPrices_OutOfBandAnswerFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockISearchGateway(ctrl)
	// An answer with no in-band price is unusable; the whole quote is simulated.
	gateway.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entities.SearchResult{Answer: "Prices start at $5 for a shuttle"}, nil).Times(3)

	uc := seededUseCase(NewPriceCheckUseCase(gateway, nil), 9)

	report, err := uc.CheckPrices(context.Background(), testTrip())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range []entities.CategoryQuote{report.Flight, report.Hotel, report.Car} {
		if q.Provenance != entities.ProvenanceFallback {
			t.Fatalf("category %s: expected fallback provenance, got %s", q.Category, q.Provenance)
		}
	}
}

func TestCheckPrices_NilGateway(t *testing.T) {
	uc := seededUseCase(NewPriceCheckUseCase(nil, nil), 3)

	report, err := uc.CheckPrices(context.Background(), testTrip())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range []entities.CategoryQuote{report.Flight, report.Hotel, report.Car} {
		if q.Provenance != entities.ProvenanceFallback {
			t.Fatalf("category %s: expected fallback provenance, got %s", q.Category, q.Provenance)
		}
	}
}

func TestCheckPrices_PersistsForIdentifiedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPriceReportRepository(ctrl)

	saved := make(chan entities.PriceReport, 1)
	repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.PriceReport{})).DoAndReturn(
		func(_ context.Context, r entities.PriceReport) error {
			saved <- r
			return nil
		},
	)

	uc := seededUseCase(NewPriceCheckUseCase(nil, repo), 13)

	req := testTrip()
	req.UserID = "user-1"
	report, err := uc.CheckPrices(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case r := <-saved:
		if r.ID != report.ID || r.UserID != "user-1" {
			t.Fatalf("persisted the wrong report: %+v", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("report was never handed to the repository")
	}
}

func TestCheckPrices_PersistFailureDoesNotSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPriceReportRepository(ctrl)

	done := make(chan struct{})
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, entities.PriceReport) error {
			close(done)
			return errors.New("dynamo unavailable")
		},
	)

	uc := seededUseCase(NewPriceCheckUseCase(nil, repo), 13)

	req := testTrip()
	req.UserID = "user-1"
	if _, err := uc.CheckPrices(context.Background(), req); err != nil {
		t.Fatalf("persistence failure must not surface: %v", err)
	}
	<-done
}

func TestCheckPrices_SkipsPersistenceWithoutUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPriceReportRepository(ctrl)
	// No Save expectation: anonymous reports are not stored.

	uc := seededUseCase(NewPriceCheckUseCase(nil, repo), 13)

	if _, err := uc.CheckPrices(context.Background(), testTrip()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListReports(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewPriceCheckUseCase(nil, nil)
		_, err := uc.ListReports(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("persistence disabled", func(t *testing.T) {
		uc := NewPriceCheckUseCase(nil, nil)
		_, err := uc.ListReports(context.Background(), "user-1")
		if !errors.Is(err, ErrPersistenceOff) {
			t.Fatalf("expected ErrPersistenceOff, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceReportRepository(ctrl)
		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return(nil, errors.New("db"))

		uc := NewPriceCheckUseCase(nil, repo)
		_, err := uc.ListReports(context.Background(), "user-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("no reports", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceReportRepository(ctrl)
		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.PriceReport{}, nil)

		uc := NewPriceCheckUseCase(nil, repo)
		_, err := uc.ListReports(context.Background(), "user-1")
		if !errors.Is(err, ErrReportsNotFound) {
			t.Fatalf("expected ErrReportsNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceReportRepository(ctrl)
		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").
			Return([]entities.PriceReport{{ID: "r1", UserID: "user-1"}}, nil)

		uc := NewPriceCheckUseCase(nil, repo)
		reports, err := uc.ListReports(context.Background(), " user-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != 1 || reports[0].ID != "r1" {
			t.Fatalf("unexpected reports: %+v", reports)
		}
	})
}

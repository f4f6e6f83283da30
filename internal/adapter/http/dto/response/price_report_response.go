package response

import (
	"time"

	"tripwatch/internal/domain/entities"
)

type CategoryQuoteResponse struct {
	Category     string   `json:"category"`
	Price        int      `json:"price"`
	Label        string   `json:"label"`
	Provenance   string   `json:"provenance"`
	BookingURLs  []string `json:"booking_urls"`
	WithinBudget bool     `json:"within_budget"`
}

type PriceReportResponse struct {
	ReportID          string                `json:"report_id"`
	UserID            string                `json:"user_id,omitempty"`
	Flight            CategoryQuoteResponse `json:"flight"`
	Hotel             CategoryQuoteResponse `json:"hotel"`
	Car               CategoryQuoteResponse `json:"car"`
	Days              int                   `json:"days"`
	TotalCost         int                   `json:"total_cost"`
	WithinTotalBudget bool                  `json:"within_total_budget"`
	CreatedAt         time.Time             `json:"created_at"`
}

func FromPriceReport(r entities.PriceReport) PriceReportResponse {
	return PriceReportResponse{
		ReportID:          r.ID,
		UserID:            r.UserID,
		Flight:            fromQuote(r.Flight),
		Hotel:             fromQuote(r.Hotel),
		Car:               fromQuote(r.Car),
		Days:              r.Days,
		TotalCost:         r.TotalCost,
		WithinTotalBudget: r.WithinTotalBudget,
		CreatedAt:         r.CreatedAt,
	}
}

func FromPriceReports(reports []entities.PriceReport) []PriceReportResponse {
	out := make([]PriceReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, FromPriceReport(r))
	}
	return out
}

func fromQuote(q entities.CategoryQuote) CategoryQuoteResponse {
	return CategoryQuoteResponse{
		Category:     string(q.Category),
		Price:        q.Price,
		Label:        q.Label,
		Provenance:   string(q.Provenance),
		BookingURLs:  q.BookingURLs,
		WithinBudget: q.WithinBudget,
	}
}

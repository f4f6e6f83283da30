package interfaces

import (
	"context"

	"tripwatch/internal/domain/entities"
)

// IPriceReportRepository abstracts DynamoDB persistence for PriceReport.
//
// Save is fire-and-forget from the pipeline's perspective: a failed write is
// logged, never surfaced to the price-check caller.

type IPriceReportRepository interface {
	Save(ctx context.Context, r entities.PriceReport) error
	ListByUserID(ctx context.Context, userID string) ([]entities.PriceReport, error)
}

package handlers

import (
	"errors"
	"net/http"
	request "tripwatch/internal/adapter/http/dto/request"
	response "tripwatch/internal/adapter/http/dto/response"
	"tripwatch/internal/usecase"
	"tripwatch/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPriceCheckPayload = pkg.NewDomainErrorSimple("INVALID_TRIP_REQUEST", "Invalid price check payload", http.StatusBadRequest)
)

// PriceCheckHandler handles HTTP requests for the price-check pipeline.

type PriceCheckHandler struct {
	usecase usecase.IPriceCheckUseCase
}

func NewPriceCheckHandler(uc usecase.IPriceCheckUseCase) *PriceCheckHandler {
	return &PriceCheckHandler{usecase: uc}
}

// CreatePriceCheck runs one monitoring cycle and returns the report.
//
// Gateway failures never surface here: the use case converts them into
// fallback-provenance quotes, so a well-formed request always gets a complete
// report.
func (h *PriceCheckHandler) CreatePriceCheck(c *gin.Context) {
	var payload request.PriceCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPriceCheckPayload.HTTPStatus, errInvalidPriceCheckPayload.ToHTTPError())
		return
	}

	trip, err := payload.ToTripRequest()
	if err != nil {
		appErr := mapPriceCheckError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	report, err := h.usecase.CheckPrices(c.Request.Context(), trip)
	if err != nil {
		appErr := mapPriceCheckError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceReport(report))
}

// ListPriceChecks returns a user's persisted reports, newest first.
func (h *PriceCheckHandler) ListPriceChecks(c *gin.Context) {
	userID := c.Param("user_id")

	reports, err := h.usecase.ListReports(c.Request.Context(), userID)
	if err != nil {
		appErr := mapPriceCheckError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceReports(reports))
}

func mapPriceCheckError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidRoute),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidBudget),
		errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainError("INVALID_TRIP_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReportsNotFound), errors.Is(err, usecase.ErrPersistenceOff):
		return pkg.NewDomainErrorSimple("REPORTS_NOT_FOUND", "No price reports found for this user", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

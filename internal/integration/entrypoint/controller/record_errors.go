// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/dto"
)

// wireDateLayout is the date format used on the wire for all record dates.
const wireDateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD wire date.
func parseDate(value string) (time.Time, error) {
	return time.Parse(wireDateLayout, value)
}

// parseOptionalDate parses an optional YYYY-MM-DD wire date.
func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(wireDateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// optionalDecimal converts an optional wire amount to a decimal.
func optionalDecimal(value *float64) *decimal.Decimal {
	if value == nil {
		return nil
	}
	d := decimal.NewFromFloat(*value)
	return &d
}

// badDateResponse writes the error response for a malformed wire date.
func badDateResponse(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid " + field + " format, expected YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeInvalidDate),
	})
}

// handleRecordError handles record errors and returns appropriate HTTP responses.
// All record controllers share one error taxonomy.
func handleRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(getStatusCodeForRecordError(recordErr.Code), dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecordError maps record error codes to HTTP status codes.
func getStatusCodeForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeInvalidDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

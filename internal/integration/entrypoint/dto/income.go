// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// IncomeRequest represents the request body for income creation and update.
type IncomeRequest struct {
	IncomeDate   string  `json:"incomeDate" binding:"required"`
	IncomeSource string  `json:"incomeSource" binding:"required"`
	IncomeType   string  `json:"incomeType"`
	Amount       float64 `json:"amount" binding:"required"`
	Currency     string  `json:"currency"`
	Notes        string  `json:"notes"`
}

// IncomeResponse represents a single income record in API responses.
type IncomeResponse struct {
	ID           string    `json:"id"`
	IncomeDate   string    `json:"incomeDate"`
	IncomeSource string    `json:"incomeSource"`
	IncomeType   string    `json:"incomeType"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IncomeEnvelope wraps a single income record. The income endpoints keep
// the legacy envelope shape: every body is nested under responseData.
type IncomeEnvelope struct {
	ResponseData IncomeResponse `json:"responseData"`
}

// IncomeListEnvelope wraps a list of income records.
type IncomeListEnvelope struct {
	ResponseData []IncomeResponse `json:"responseData"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:           income.ID.String(),
		IncomeDate:   income.IncomeDate.Format("2006-01-02"),
		IncomeSource: income.IncomeSource,
		IncomeType:   income.IncomeType,
		Amount:       income.Amount.InexactFloat64(),
		Currency:     income.Currency,
		Notes:        income.Notes,
		CreatedAt:    income.CreatedAt,
		UpdatedAt:    income.UpdatedAt,
	}
}

// ToIncomeListEnvelope converts a list of Income entities to the enveloped list shape.
func ToIncomeListEnvelope(incomes []*entity.Income) IncomeListEnvelope {
	records := make([]IncomeResponse, len(incomes))
	for i, income := range incomes {
		records[i] = ToIncomeResponse(income)
	}
	return IncomeListEnvelope{
		ResponseData: records,
	}
}

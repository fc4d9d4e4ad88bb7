// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// BudgetPeriodRequest represents the request body for budget period creation and update.
type BudgetPeriodRequest struct {
	FromDate     string  `json:"fromDate" binding:"required"`
	ToDate       string  `json:"toDate" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	Notes        string  `json:"notes"`
	DurationType string  `json:"durationType" binding:"omitempty,oneof=monthly quarterly custom"`
}

// BudgetPeriodResponse represents a single budget period in API responses.
type BudgetPeriodResponse struct {
	ID           string    `json:"id"`
	FromDate     string    `json:"fromDate"`
	ToDate       string    `json:"toDate"`
	Category     string    `json:"category"`
	Amount       float64   `json:"amount"`
	Notes        string    `json:"notes"`
	DurationType string    `json:"durationType"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToBudgetPeriodResponse converts a domain BudgetPeriod entity to a response DTO.
func ToBudgetPeriodResponse(budget *entity.BudgetPeriod) BudgetPeriodResponse {
	return BudgetPeriodResponse{
		ID:           budget.ID.String(),
		FromDate:     budget.FromDate.Format("2006-01-02"),
		ToDate:       budget.ToDate.Format("2006-01-02"),
		Category:     budget.Category,
		Amount:       budget.Amount.InexactFloat64(),
		Notes:        budget.Notes,
		DurationType: string(budget.DurationType),
		CreatedAt:    budget.CreatedAt,
		UpdatedAt:    budget.UpdatedAt,
	}
}

// ToBudgetPeriodListResponse converts a list of BudgetPeriod entities to response DTOs.
func ToBudgetPeriodListResponse(budgets []*entity.BudgetPeriod) []BudgetPeriodResponse {
	records := make([]BudgetPeriodResponse, len(budgets))
	for i, budget := range budgets {
		records[i] = ToBudgetPeriodResponse(budget)
	}
	return records
}

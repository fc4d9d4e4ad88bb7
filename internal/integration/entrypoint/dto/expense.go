// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// ExpenseRequest represents the request body for expense creation and update.
type ExpenseRequest struct {
	Date        string  `json:"date" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Subcategory string  `json:"subcategory"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required"`
	Currency    string  `json:"currency"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		Date:        expense.Date.Format("2006-01-02"),
		Category:    expense.Category,
		Subcategory: expense.Subcategory,
		Description: expense.Description,
		Amount:      expense.Amount.InexactFloat64(),
		Currency:    expense.Currency,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

// ToExpenseListResponse converts a list of Expense entities to response DTOs.
func ToExpenseListResponse(expenses []*entity.Expense) []ExpenseResponse {
	records := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		records[i] = ToExpenseResponse(expense)
	}
	return records
}

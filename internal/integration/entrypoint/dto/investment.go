// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// InvestmentRequest represents the request body for investment creation and update.
type InvestmentRequest struct {
	Date           string  `json:"date" binding:"required"`
	InvestmentType string  `json:"investmentType" binding:"required"`
	Platform       string  `json:"platform"`
	Amount         float64 `json:"amount" binding:"required"`
	Description    string  `json:"description"`
	Status         string  `json:"status" binding:"omitempty,oneof=Active Exited"`
}

// InvestmentResponse represents a single investment in API responses.
type InvestmentResponse struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`
	InvestmentType string    `json:"investmentType"`
	Platform       string    `json:"platform"`
	Amount         float64   `json:"amount"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToInvestmentResponse converts a domain Investment entity to an InvestmentResponse DTO.
func ToInvestmentResponse(investment *entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:             investment.ID.String(),
		Date:           investment.Date.Format("2006-01-02"),
		InvestmentType: investment.InvestmentType,
		Platform:       investment.Platform,
		Amount:         investment.Amount.InexactFloat64(),
		Description:    investment.Description,
		Status:         string(investment.Status),
		CreatedAt:      investment.CreatedAt,
		UpdatedAt:      investment.UpdatedAt,
	}
}

// ToInvestmentListResponse converts a list of Investment entities to response DTOs.
func ToInvestmentListResponse(investments []*entity.Investment) []InvestmentResponse {
	records := make([]InvestmentResponse, len(investments))
	for i, investment := range investments {
		records[i] = ToInvestmentResponse(investment)
	}
	return records
}

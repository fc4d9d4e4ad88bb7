// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// SavingRequest represents the request body for saving creation and update.
type SavingRequest struct {
	Date            string   `json:"date" binding:"required"`
	Title           string   `json:"title" binding:"required"`
	Amount          float64  `json:"amount" binding:"required"`
	Currency        string   `json:"currency"`
	SavingType      string   `json:"savingType" binding:"required,oneof=Recurring One-time"`
	Category        string   `json:"category"`
	Account         string   `json:"account"`
	GoalName        string   `json:"goalName"`
	TargetAmount    *float64 `json:"targetAmount,omitempty"`
	TargetDate      *string  `json:"targetDate,omitempty"`
	IsGoalCompleted bool     `json:"isGoalCompleted"`
	InterestRate    *float64 `json:"interestRate,omitempty"`
	InterestAmount  *float64 `json:"interestAmount,omitempty"`
	MaturityDate    *string  `json:"maturityDate,omitempty"`
	NumberOfMonths  int      `json:"numberOfMonths"`
	VendorName      string   `json:"vendorName"`
	Notes           string   `json:"notes"`
}

// SavingResponse represents a single saving in API responses.
type SavingResponse struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	Title           string    `json:"title"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	SavingType      string    `json:"savingType"`
	Category        string    `json:"category"`
	Account         string    `json:"account"`
	GoalName        string    `json:"goalName"`
	TargetAmount    *float64  `json:"targetAmount,omitempty"`
	TargetDate      *string   `json:"targetDate,omitempty"`
	IsGoalCompleted bool      `json:"isGoalCompleted"`
	InterestRate    *float64  `json:"interestRate,omitempty"`
	InterestAmount  *float64  `json:"interestAmount,omitempty"`
	MaturityDate    *string   `json:"maturityDate,omitempty"`
	NumberOfMonths  int       `json:"numberOfMonths"`
	VendorName      string    `json:"vendorName"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToSavingResponse converts a domain Saving entity to a SavingResponse DTO.
func ToSavingResponse(saving *entity.Saving) SavingResponse {
	response := SavingResponse{
		ID:              saving.ID.String(),
		Date:            saving.Date.Format("2006-01-02"),
		Title:           saving.Title,
		Amount:          saving.Amount.InexactFloat64(),
		Currency:        saving.Currency,
		SavingType:      string(saving.SavingType),
		Category:        saving.Category,
		Account:         saving.Account,
		GoalName:        saving.GoalName,
		IsGoalCompleted: saving.IsGoalCompleted,
		NumberOfMonths:  saving.NumberOfMonths,
		VendorName:      saving.VendorName,
		Notes:           saving.Notes,
		CreatedAt:       saving.CreatedAt,
		UpdatedAt:       saving.UpdatedAt,
	}

	response.TargetAmount = decimalToFloat(saving.TargetAmount)
	response.InterestRate = decimalToFloat(saving.InterestRate)
	response.InterestAmount = decimalToFloat(saving.InterestAmount)

	if saving.TargetDate != nil {
		dateStr := saving.TargetDate.Format("2006-01-02")
		response.TargetDate = &dateStr
	}
	if saving.MaturityDate != nil {
		dateStr := saving.MaturityDate.Format("2006-01-02")
		response.MaturityDate = &dateStr
	}

	return response
}

// ToSavingListResponse converts a list of Saving entities to response DTOs.
func ToSavingListResponse(savings []*entity.Saving) []SavingResponse {
	records := make([]SavingResponse, len(savings))
	for i, saving := range savings {
		records[i] = ToSavingResponse(saving)
	}
	return records
}

func decimalToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}

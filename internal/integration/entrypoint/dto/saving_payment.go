// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// SavingPaymentRequest represents the request body for saving payment creation and update.
type SavingPaymentRequest struct {
	SavingID      string  `json:"savingId" binding:"required,uuid"`
	Date          string  `json:"date" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Status        string  `json:"status" binding:"omitempty,oneof=Pending Completed Failed"`
	PaymentMethod string  `json:"paymentMethod"`
	Notes         string  `json:"notes"`
}

// SavingPaymentResponse represents a single saving payment in API responses.
type SavingPaymentResponse struct {
	ID            string    `json:"id"`
	SavingID      string    `json:"savingId"`
	Date          string    `json:"date"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToSavingPaymentResponse converts a domain SavingPayment entity to a response DTO.
func ToSavingPaymentResponse(payment *entity.SavingPayment) SavingPaymentResponse {
	return SavingPaymentResponse{
		ID:            payment.ID.String(),
		SavingID:      payment.SavingID.String(),
		Date:          payment.Date.Format("2006-01-02"),
		Amount:        payment.Amount.InexactFloat64(),
		Status:        string(payment.Status),
		PaymentMethod: payment.PaymentMethod,
		Notes:         payment.Notes,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}

// ToSavingPaymentListResponse converts a list of SavingPayment entities to response DTOs.
func ToSavingPaymentListResponse(payments []*entity.SavingPayment) []SavingPaymentResponse {
	records := make([]SavingPaymentResponse, len(payments))
	for i, payment := range payments {
		records[i] = ToSavingPaymentResponse(payment)
	}
	return records
}

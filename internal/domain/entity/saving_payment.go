// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the state of a scheduled saving payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// SavingPayment represents one monthly instalment belonging to a Saving.
type SavingPayment struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SavingID      uuid.UUID
	Date          time.Time
	Amount        decimal.Decimal
	Status        PaymentStatus
	PaymentMethod string // e.g. "Bank Transfer", "UPI", "Credit Card"
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewSavingPayment creates a new SavingPayment entity.
func NewSavingPayment(
	userID, savingID uuid.UUID,
	date time.Time,
	amount decimal.Decimal,
	status PaymentStatus,
	paymentMethod, notes string,
) *SavingPayment {
	now := time.Now().UTC()

	return &SavingPayment{
		ID:            uuid.New(),
		UserID:        userID,
		SavingID:      savingID,
		Date:          date,
		Amount:        amount,
		Status:        status,
		PaymentMethod: paymentMethod,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income represents one earned-income record.
type Income struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	IncomeDate   time.Time
	IncomeSource string
	IncomeType   string // e.g. "Primary", "Secondary", "Freelance", "Bonus"
	Amount       decimal.Decimal
	Currency     string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewIncome creates a new Income entity.
func NewIncome(
	userID uuid.UUID,
	incomeDate time.Time,
	incomeSource, incomeType string,
	amount decimal.Decimal,
	currency, notes string,
) *Income {
	now := time.Now().UTC()

	if currency == "" {
		currency = DefaultCurrency
	}

	return &Income{
		ID:           uuid.New(),
		UserID:       userID,
		IncomeDate:   incomeDate,
		IncomeSource: incomeSource,
		IncomeType:   incomeType,
		Amount:       amount,
		Currency:     currency,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents one spending record.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Category    string // main category, e.g. "Housing"
	Subcategory string // e.g. "Rent", "Electricity"
	Description string
	Amount      decimal.Decimal
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	date time.Time,
	category, subcategory, description string,
	amount decimal.Decimal,
	currency string,
) *Expense {
	now := time.Now().UTC()

	if currency == "" {
		currency = DefaultCurrency
	}

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Category:    category,
		Subcategory: subcategory,
		Description: description,
		Amount:      amount,
		Currency:    currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

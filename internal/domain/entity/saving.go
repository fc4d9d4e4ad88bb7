// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingType represents how a saving is contributed to.
type SavingType string

const (
	SavingTypeRecurring SavingType = "Recurring"
	SavingTypeOneTime   SavingType = "One-time"
)

// Saving represents one saving plan or deposit.
type Saving struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Date            time.Time // start date; anchor for recurring payments
	Title           string
	Amount          decimal.Decimal
	Currency        string
	SavingType      SavingType
	Category        string // e.g. "SIP", "FD", "Cash"
	Account         string
	GoalName        string
	TargetAmount    *decimal.Decimal
	TargetDate      *time.Time
	IsGoalCompleted bool
	InterestRate    *decimal.Decimal // in %
	InterestAmount  *decimal.Decimal
	MaturityDate    *time.Time
	NumberOfMonths  int // payment count for recurring savings
	VendorName      string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time // Soft-delete support
}

// NewSaving creates a new Saving entity.
func NewSaving(
	userID uuid.UUID,
	date time.Time,
	title string,
	amount decimal.Decimal,
	currency string,
	savingType SavingType,
	category string,
) *Saving {
	now := time.Now().UTC()

	if currency == "" {
		currency = DefaultCurrency
	}

	return &Saving{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       date,
		Title:      title,
		Amount:     amount,
		Currency:   currency,
		SavingType: savingType,
		Category:   category,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsRecurring reports whether payments should be generated for this saving.
func (s *Saving) IsRecurring() bool {
	return s.SavingType == SavingTypeRecurring && s.NumberOfMonths > 0
}

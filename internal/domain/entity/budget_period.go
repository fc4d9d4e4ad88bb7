// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DurationType represents the span kind of a budget period.
type DurationType string

const (
	DurationTypeMonthly   DurationType = "monthly"
	DurationTypeQuarterly DurationType = "quarterly"
	DurationTypeCustom    DurationType = "custom"
)

// BudgetPeriod represents a budgeted amount for one category over a date span.
type BudgetPeriod struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	FromDate     time.Time
	ToDate       time.Time
	Category     string
	Amount       decimal.Decimal
	Notes        string
	DurationType DurationType
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewBudgetPeriod creates a new BudgetPeriod entity.
func NewBudgetPeriod(
	userID uuid.UUID,
	fromDate, toDate time.Time,
	category string,
	amount decimal.Decimal,
	notes string,
	durationType DurationType,
) *BudgetPeriod {
	now := time.Now().UTC()

	if durationType == "" {
		durationType = DurationTypeMonthly
	}

	return &BudgetPeriod{
		ID:           uuid.New(),
		UserID:       userID,
		FromDate:     fromDate,
		ToDate:       toDate,
		Category:     category,
		Amount:       amount,
		Notes:        notes,
		DurationType: durationType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// BudgetPeriodModel represents the budget_periods table in the database.
type BudgetPeriodModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	FromDate     time.Time       `gorm:"type:date;not null"`
	ToDate       time.Time       `gorm:"type:date;not null"`
	Category     string          `gorm:"type:varchar(100);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Notes        string          `gorm:"type:text"`
	DurationType string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the BudgetPeriodModel.
func (BudgetPeriodModel) TableName() string {
	return "budget_periods"
}

// ToEntity converts a BudgetPeriodModel to a domain BudgetPeriod entity.
func (m *BudgetPeriodModel) ToEntity() *entity.BudgetPeriod {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.BudgetPeriod{
		ID:           m.ID,
		UserID:       m.UserID,
		FromDate:     m.FromDate,
		ToDate:       m.ToDate,
		Category:     m.Category,
		Amount:       m.Amount,
		Notes:        m.Notes,
		DurationType: entity.DurationType(m.DurationType),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// BudgetPeriodFromEntity creates a BudgetPeriodModel from a domain BudgetPeriod entity.
func BudgetPeriodFromEntity(period *entity.BudgetPeriod) *BudgetPeriodModel {
	var deletedAt gorm.DeletedAt
	if period.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *period.DeletedAt, Valid: true}
	}

	return &BudgetPeriodModel{
		ID:           period.ID,
		UserID:       period.UserID,
		FromDate:     period.FromDate,
		ToDate:       period.ToDate,
		Category:     period.Category,
		Amount:       period.Amount,
		Notes:        period.Notes,
		DurationType: string(period.DurationType),
		CreatedAt:    period.CreatedAt,
		UpdatedAt:    period.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

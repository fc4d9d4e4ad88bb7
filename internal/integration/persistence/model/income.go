// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// IncomeModel represents the income_records table in the database.
type IncomeModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	IncomeDate   time.Time       `gorm:"type:date;not null"`
	IncomeSource string          `gorm:"type:varchar(255);not null"`
	IncomeType   string          `gorm:"type:varchar(50);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency     string          `gorm:"type:varchar(10);not null;default:'INR'"`
	Notes        string          `gorm:"type:text"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "income_records"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Income{
		ID:           m.ID,
		UserID:       m.UserID,
		IncomeDate:   m.IncomeDate,
		IncomeSource: m.IncomeSource,
		IncomeType:   m.IncomeType,
		Amount:       m.Amount,
		Currency:     m.Currency,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	var deletedAt gorm.DeletedAt
	if income.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *income.DeletedAt, Valid: true}
	}

	return &IncomeModel{
		ID:           income.ID,
		UserID:       income.UserID,
		IncomeDate:   income.IncomeDate,
		IncomeSource: income.IncomeSource,
		IncomeType:   income.IncomeType,
		Amount:       income.Amount,
		Currency:     income.Currency,
		Notes:        income.Notes,
		CreatedAt:    income.CreatedAt,
		UpdatedAt:    income.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

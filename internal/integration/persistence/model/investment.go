// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date           time.Time       `gorm:"type:date;not null"`
	InvestmentType string          `gorm:"type:varchar(100);not null"`
	Platform       string          `gorm:"type:varchar(100)"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description    string          `gorm:"type:text"`
	Status         string          `gorm:"type:varchar(20);not null;default:'Active'"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Investment{
		ID:             m.ID,
		UserID:         m.UserID,
		Date:           m.Date,
		InvestmentType: m.InvestmentType,
		Platform:       m.Platform,
		Amount:         m.Amount,
		Description:    m.Description,
		Status:         entity.InvestmentStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	var deletedAt gorm.DeletedAt
	if investment.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *investment.DeletedAt, Valid: true}
	}

	return &InvestmentModel{
		ID:             investment.ID,
		UserID:         investment.UserID,
		Date:           investment.Date,
		InvestmentType: investment.InvestmentType,
		Platform:       investment.Platform,
		Amount:         investment.Amount,
		Description:    investment.Description,
		Status:         string(investment.Status),
		CreatedAt:      investment.CreatedAt,
		UpdatedAt:      investment.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

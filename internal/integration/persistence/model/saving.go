// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// SavingModel represents the savings table in the database.
type SavingModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	Date            time.Time        `gorm:"type:date;not null"`
	Title           string           `gorm:"type:varchar(255);not null"`
	Amount          decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Currency        string           `gorm:"type:varchar(10);not null;default:'INR'"`
	SavingType      string           `gorm:"type:varchar(20);not null"`
	Category        string           `gorm:"type:varchar(100)"`
	Account         string           `gorm:"type:varchar(100)"`
	GoalName        string           `gorm:"type:varchar(255)"`
	TargetAmount    *decimal.Decimal `gorm:"type:decimal(15,2)"`
	TargetDate      *time.Time       `gorm:"type:date"`
	IsGoalCompleted bool             `gorm:"default:false"`
	InterestRate    *decimal.Decimal `gorm:"type:decimal(6,3)"`
	InterestAmount  *decimal.Decimal `gorm:"type:decimal(15,2)"`
	MaturityDate    *time.Time       `gorm:"type:date"`
	NumberOfMonths  int              `gorm:"not null;default:0"`
	VendorName      string           `gorm:"type:varchar(255)"`
	Notes           string           `gorm:"type:text"`
	CreatedAt       time.Time        `gorm:"not null"`
	UpdatedAt       time.Time        `gorm:"not null"`
	DeletedAt       gorm.DeletedAt   `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the SavingModel.
func (SavingModel) TableName() string {
	return "savings"
}

// ToEntity converts a SavingModel to a domain Saving entity.
func (m *SavingModel) ToEntity() *entity.Saving {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Saving{
		ID:              m.ID,
		UserID:          m.UserID,
		Date:            m.Date,
		Title:           m.Title,
		Amount:          m.Amount,
		Currency:        m.Currency,
		SavingType:      entity.SavingType(m.SavingType),
		Category:        m.Category,
		Account:         m.Account,
		GoalName:        m.GoalName,
		TargetAmount:    m.TargetAmount,
		TargetDate:      m.TargetDate,
		IsGoalCompleted: m.IsGoalCompleted,
		InterestRate:    m.InterestRate,
		InterestAmount:  m.InterestAmount,
		MaturityDate:    m.MaturityDate,
		NumberOfMonths:  m.NumberOfMonths,
		VendorName:      m.VendorName,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		DeletedAt:       deletedAt,
	}
}

// SavingFromEntity creates a SavingModel from a domain Saving entity.
func SavingFromEntity(saving *entity.Saving) *SavingModel {
	var deletedAt gorm.DeletedAt
	if saving.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *saving.DeletedAt, Valid: true}
	}

	return &SavingModel{
		ID:              saving.ID,
		UserID:          saving.UserID,
		Date:            saving.Date,
		Title:           saving.Title,
		Amount:          saving.Amount,
		Currency:        saving.Currency,
		SavingType:      string(saving.SavingType),
		Category:        saving.Category,
		Account:         saving.Account,
		GoalName:        saving.GoalName,
		TargetAmount:    saving.TargetAmount,
		TargetDate:      saving.TargetDate,
		IsGoalCompleted: saving.IsGoalCompleted,
		InterestRate:    saving.InterestRate,
		InterestAmount:  saving.InterestAmount,
		MaturityDate:    saving.MaturityDate,
		NumberOfMonths:  saving.NumberOfMonths,
		VendorName:      saving.VendorName,
		Notes:           saving.Notes,
		CreatedAt:       saving.CreatedAt,
		UpdatedAt:       saving.UpdatedAt,
		DeletedAt:       deletedAt,
	}
}

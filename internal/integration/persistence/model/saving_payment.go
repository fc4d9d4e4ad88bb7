// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// SavingPaymentModel represents the saving_payments table in the database.
type SavingPaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	SavingID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date          time.Time       `gorm:"type:date;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'Pending'"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the SavingPaymentModel.
func (SavingPaymentModel) TableName() string {
	return "saving_payments"
}

// ToEntity converts a SavingPaymentModel to a domain SavingPayment entity.
func (m *SavingPaymentModel) ToEntity() *entity.SavingPayment {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.SavingPayment{
		ID:            m.ID,
		UserID:        m.UserID,
		SavingID:      m.SavingID,
		Date:          m.Date,
		Amount:        m.Amount,
		Status:        entity.PaymentStatus(m.Status),
		PaymentMethod: m.PaymentMethod,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// SavingPaymentFromEntity creates a SavingPaymentModel from a domain SavingPayment entity.
func SavingPaymentFromEntity(payment *entity.SavingPayment) *SavingPaymentModel {
	var deletedAt gorm.DeletedAt
	if payment.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *payment.DeletedAt, Valid: true}
	}

	return &SavingPaymentModel{
		ID:            payment.ID,
		UserID:        payment.UserID,
		SavingID:      payment.SavingID,
		Date:          payment.Date,
		Amount:        payment.Amount,
		Status:        string(payment.Status),
		PaymentMethod: payment.PaymentMethod,
		Notes:         payment.Notes,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

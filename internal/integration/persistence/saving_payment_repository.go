// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
	"github.com/raghusami/personal-finance-tracker/internal/integration/persistence/model"
)

// savingPaymentRepository implements the adapter.SavingPaymentRepository interface.
type savingPaymentRepository struct {
	db *gorm.DB
}

// NewSavingPaymentRepository creates a new saving payment repository instance.
func NewSavingPaymentRepository(db *gorm.DB) adapter.SavingPaymentRepository {
	return &savingPaymentRepository{
		db: db,
	}
}

// Create creates a new saving payment in the database.
func (r *savingPaymentRepository) Create(ctx context.Context, payment *entity.SavingPayment) error {
	paymentModel := model.SavingPaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a saving payment by its ID.
func (r *savingPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingPayment, error) {
	var paymentModel model.SavingPaymentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSavingPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindByUserID retrieves all saving payments for a given user.
func (r *savingPaymentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingPayment, error) {
	var paymentModels []model.SavingPaymentModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.SavingPayment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// FindBySavingID retrieves all payments belonging to one saving, oldest first.
func (r *savingPaymentRepository) FindBySavingID(ctx context.Context, savingID uuid.UUID) ([]*entity.SavingPayment, error) {
	var paymentModels []model.SavingPaymentModel
	result := r.db.WithContext(ctx).
		Where("saving_id = ?", savingID).
		Order("date ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.SavingPayment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// Update updates an existing saving payment in the database.
func (r *savingPaymentRepository) Update(ctx context.Context, payment *entity.SavingPayment) error {
	paymentModel := model.SavingPaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Save(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a saving payment from the database (soft delete).
func (r *savingPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SavingPaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

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

// savingRepository implements the adapter.SavingRepository interface.
type savingRepository struct {
	db *gorm.DB
}

// NewSavingRepository creates a new saving repository instance.
func NewSavingRepository(db *gorm.DB) adapter.SavingRepository {
	return &savingRepository{
		db: db,
	}
}

// Create creates a new saving in the database.
func (r *savingRepository) Create(ctx context.Context, saving *entity.Saving) error {
	savingModel := model.SavingFromEntity(saving)
	result := r.db.WithContext(ctx).Create(savingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a saving by its ID.
func (r *savingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Saving, error) {
	var savingModel model.SavingModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&savingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSavingNotFound
		}
		return nil, result.Error
	}
	return savingModel.ToEntity(), nil
}

// FindByUserID retrieves all savings for a given user.
func (r *savingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Saving, error) {
	var savingModels []model.SavingModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&savingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	savings := make([]*entity.Saving, len(savingModels))
	for i, sm := range savingModels {
		savings[i] = sm.ToEntity()
	}
	return savings, nil
}

// Update updates an existing saving in the database.
func (r *savingRepository) Update(ctx context.Context, saving *entity.Saving) error {
	savingModel := model.SavingFromEntity(saving)
	result := r.db.WithContext(ctx).Save(savingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteWithPayments removes a saving and all of its payments in a single
// transaction. Either everything is deleted or nothing is.
func (r *savingRepository) DeleteWithPayments(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.SavingPaymentModel{}, "saving_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.SavingModel{}, "id = ?", id).Error; err != nil {
			return err
		}
		return nil
	})
}

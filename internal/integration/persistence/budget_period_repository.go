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

// budgetPeriodRepository implements the adapter.BudgetPeriodRepository interface.
type budgetPeriodRepository struct {
	db *gorm.DB
}

// NewBudgetPeriodRepository creates a new budget period repository instance.
func NewBudgetPeriodRepository(db *gorm.DB) adapter.BudgetPeriodRepository {
	return &budgetPeriodRepository{
		db: db,
	}
}

// Create creates a new budget period in the database.
func (r *budgetPeriodRepository) Create(ctx context.Context, budget *entity.BudgetPeriod) error {
	budgetModel := model.BudgetPeriodFromEntity(budget)
	result := r.db.WithContext(ctx).Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a budget period by its ID.
func (r *budgetPeriodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetPeriod, error) {
	var budgetModel model.BudgetPeriodModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetPeriodNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByUserID retrieves all budget periods for a given user.
func (r *budgetPeriodRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetPeriod, error) {
	var budgetModels []model.BudgetPeriodModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("from_date DESC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.BudgetPeriod, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// Update updates an existing budget period in the database.
func (r *budgetPeriodRepository) Update(ctx context.Context, budget *entity.BudgetPeriod) error {
	budgetModel := model.BudgetPeriodFromEntity(budget)
	result := r.db.WithContext(ctx).Save(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a budget period from the database (soft delete).
func (r *budgetPeriodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetPeriodModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	Create(ctx context.Context, income *entity.Income) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error)
	Update(ctx context.Context, income *entity.Income) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SavingRepository defines the interface for saving persistence operations.
type SavingRepository interface {
	Create(ctx context.Context, saving *entity.Saving) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Saving, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Saving, error)
	Update(ctx context.Context, saving *entity.Saving) error

	// DeleteWithPayments removes a saving and every payment that references
	// it inside a single transaction.
	DeleteWithPayments(ctx context.Context, id uuid.UUID) error
}

// SavingPaymentRepository defines the interface for saving payment persistence operations.
type SavingPaymentRepository interface {
	Create(ctx context.Context, payment *entity.SavingPayment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingPayment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingPayment, error)
	FindBySavingID(ctx context.Context, savingID uuid.UUID) ([]*entity.SavingPayment, error)
	Update(ctx context.Context, payment *entity.SavingPayment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvestmentRepository defines the interface for investment persistence operations.
type InvestmentRepository interface {
	Create(ctx context.Context, investment *entity.Investment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error)
	Update(ctx context.Context, investment *entity.Investment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BudgetPeriodRepository defines the interface for budget period persistence operations.
type BudgetPeriodRepository interface {
	Create(ctx context.Context, budget *entity.BudgetPeriod) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetPeriod, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetPeriod, error)
	Update(ctx context.Context, budget *entity.BudgetPeriod) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Package saving contains saving-related use cases.
package saving

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// ListSavingsInput represents the input for listing a user's savings.
type ListSavingsInput struct {
	UserID uuid.UUID
}

// ListSavingsOutput represents the output of saving listing.
type ListSavingsOutput struct {
	Savings []*entity.Saving
}

// ListSavingsUseCase handles saving listing.
type ListSavingsUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewListSavingsUseCase creates a new ListSavingsUseCase instance.
func NewListSavingsUseCase(savingRepo adapter.SavingRepository) *ListSavingsUseCase {
	return &ListSavingsUseCase{
		savingRepo: savingRepo,
	}
}

// Execute lists all savings belonging to the user.
func (uc *ListSavingsUseCase) Execute(ctx context.Context, input ListSavingsInput) (*ListSavingsOutput, error) {
	savings, err := uc.savingRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings: %w", err)
	}

	return &ListSavingsOutput{
		Savings: savings,
	}, nil
}

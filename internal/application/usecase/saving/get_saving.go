// Package saving contains saving-related use cases.
package saving

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
)

// GetSavingInput represents the input for retrieving one saving.
type GetSavingInput struct {
	SavingID uuid.UUID
	UserID   uuid.UUID
}

// GetSavingOutput represents the output of saving retrieval.
type GetSavingOutput struct {
	Saving *entity.Saving
}

// GetSavingUseCase handles single saving retrieval.
type GetSavingUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewGetSavingUseCase creates a new GetSavingUseCase instance.
func NewGetSavingUseCase(savingRepo adapter.SavingRepository) *GetSavingUseCase {
	return &GetSavingUseCase{
		savingRepo: savingRepo,
	}
}

// Execute retrieves the saving.
func (uc *GetSavingUseCase) Execute(ctx context.Context, input GetSavingInput) (*GetSavingOutput, error) {
	saving, err := uc.savingRepo.FindByID(ctx, input.SavingID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSavingNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"saving not found",
				domainerror.ErrSavingNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find saving: %w", err)
	}

	if saving.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnauthorizedAccess,
			"not authorized to access this saving",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	return &GetSavingOutput{
		Saving: saving,
	}, nil
}

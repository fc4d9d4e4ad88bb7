// Package saving contains saving-related use cases.
package saving

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
)

// DeleteSavingInput represents the input for saving deletion.
type DeleteSavingInput struct {
	SavingID uuid.UUID
	UserID   uuid.UUID
}

// DeleteSavingOutput represents the output of saving deletion.
type DeleteSavingOutput struct {
	Success bool
}

// DeleteSavingUseCase handles saving deletion logic. Deleting a saving also
// removes every payment that references it.
type DeleteSavingUseCase struct {
	savingRepo adapter.SavingRepository
	events     adapter.EventPublisher
}

// NewDeleteSavingUseCase creates a new DeleteSavingUseCase instance.
func NewDeleteSavingUseCase(savingRepo adapter.SavingRepository, events adapter.EventPublisher) *DeleteSavingUseCase {
	return &DeleteSavingUseCase{
		savingRepo: savingRepo,
		events:     events,
	}
}

// Execute performs the saving deletion together with its payments.
func (uc *DeleteSavingUseCase) Execute(ctx context.Context, input DeleteSavingInput) (*DeleteSavingOutput, error) {
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
			"not authorized to delete this saving",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.savingRepo.DeleteWithPayments(ctx, input.SavingID); err != nil {
		return nil, fmt.Errorf("failed to delete saving: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Saving and its payments deleted",
	})

	return &DeleteSavingOutput{
		Success: true,
	}, nil
}

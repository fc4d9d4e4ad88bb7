// Package saving contains saving-related use cases.
package saving

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
)

// UpdateSavingInput represents the input for saving update.
type UpdateSavingInput struct {
	SavingID        uuid.UUID
	UserID          uuid.UUID
	Date            time.Time
	Title           string
	Amount          decimal.Decimal
	Currency        string
	SavingType      entity.SavingType
	Category        string
	Account         string
	GoalName        string
	TargetAmount    *decimal.Decimal
	TargetDate      *time.Time
	InterestRate    *decimal.Decimal
	InterestAmount  *decimal.Decimal
	MaturityDate    *time.Time
	NumberOfMonths  int
	VendorName      string
	Notes           string
	IsGoalCompleted bool
}

// UpdateSavingOutput represents the output of saving update.
type UpdateSavingOutput struct {
	Saving *entity.Saving
}

// UpdateSavingUseCase handles saving update logic.
type UpdateSavingUseCase struct {
	savingRepo adapter.SavingRepository
	events     adapter.EventPublisher
}

// NewUpdateSavingUseCase creates a new UpdateSavingUseCase instance.
func NewUpdateSavingUseCase(savingRepo adapter.SavingRepository, events adapter.EventPublisher) *UpdateSavingUseCase {
	return &UpdateSavingUseCase{
		savingRepo: savingRepo,
		events:     events,
	}
}

// Execute performs the saving update. The stored record is replaced
// with the submitted values rather than patched field by field.
func (uc *UpdateSavingUseCase) Execute(ctx context.Context, input UpdateSavingInput) (*UpdateSavingOutput, error) {
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
			"not authorized to update this saving",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	saving.Date = input.Date
	saving.Title = input.Title
	saving.Amount = input.Amount
	if input.Currency != "" {
		saving.Currency = input.Currency
	}
	if input.SavingType != "" {
		saving.SavingType = input.SavingType
	}
	saving.Category = input.Category
	saving.Account = input.Account
	saving.GoalName = input.GoalName
	saving.TargetAmount = input.TargetAmount
	saving.TargetDate = input.TargetDate
	saving.IsGoalCompleted = input.IsGoalCompleted
	saving.InterestRate = input.InterestRate
	saving.InterestAmount = input.InterestAmount
	saving.MaturityDate = input.MaturityDate
	saving.NumberOfMonths = input.NumberOfMonths
	saving.VendorName = input.VendorName
	saving.Notes = input.Notes
	saving.UpdatedAt = time.Now().UTC()

	if err := uc.savingRepo.Update(ctx, saving); err != nil {
		return nil, fmt.Errorf("failed to update saving: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Saving updated",
	})

	return &UpdateSavingOutput{
		Saving: saving,
	}, nil
}

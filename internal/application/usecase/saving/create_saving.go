// Package saving contains saving-related use cases.
package saving

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
)

// CreateSavingInput represents the input for saving creation.
type CreateSavingInput struct {
	UserID         uuid.UUID
	Date           time.Time
	Title          string
	Amount         decimal.Decimal
	Currency       string
	SavingType     entity.SavingType
	Category       string
	Account        string
	GoalName       string
	TargetAmount   *decimal.Decimal
	TargetDate     *time.Time
	InterestRate   *decimal.Decimal
	InterestAmount *decimal.Decimal
	MaturityDate   *time.Time
	NumberOfMonths int
	VendorName     string
	Notes          string
}

// CreateSavingOutput represents the output of saving creation.
type CreateSavingOutput struct {
	Saving *entity.Saving
}

// CreateSavingUseCase handles saving creation logic.
type CreateSavingUseCase struct {
	savingRepo adapter.SavingRepository
	events     adapter.EventPublisher
}

// NewCreateSavingUseCase creates a new CreateSavingUseCase instance.
func NewCreateSavingUseCase(savingRepo adapter.SavingRepository, events adapter.EventPublisher) *CreateSavingUseCase {
	return &CreateSavingUseCase{
		savingRepo: savingRepo,
		events:     events,
	}
}

// Execute performs the saving creation.
func (uc *CreateSavingUseCase) Execute(ctx context.Context, input CreateSavingInput) (*CreateSavingOutput, error) {
	saving := entity.NewSaving(
		input.UserID,
		input.Date,
		input.Title,
		input.Amount,
		input.Currency,
		input.SavingType,
		input.Category,
	)

	saving.Account = input.Account
	saving.GoalName = input.GoalName
	saving.TargetAmount = input.TargetAmount
	saving.TargetDate = input.TargetDate
	saving.InterestRate = input.InterestRate
	saving.InterestAmount = input.InterestAmount
	saving.MaturityDate = input.MaturityDate
	saving.NumberOfMonths = input.NumberOfMonths
	saving.VendorName = input.VendorName
	saving.Notes = input.Notes

	if err := uc.savingRepo.Create(ctx, saving); err != nil {
		return nil, fmt.Errorf("failed to create saving: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Saving created",
	})

	return &CreateSavingOutput{
		Saving: saving,
	}, nil
}

// Package savingpayment contains saving payment-related use cases.
package savingpayment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
)

// DeleteSavingPaymentInput represents the input for saving payment deletion.
type DeleteSavingPaymentInput struct {
	SavingPaymentID uuid.UUID
	UserID          uuid.UUID
}

// DeleteSavingPaymentOutput represents the output of saving payment deletion.
type DeleteSavingPaymentOutput struct {
	Success bool
}

// DeleteSavingPaymentUseCase handles saving payment deletion logic.
type DeleteSavingPaymentUseCase struct {
	paymentRepo adapter.SavingPaymentRepository
	events      adapter.EventPublisher
}

// NewDeleteSavingPaymentUseCase creates a new DeleteSavingPaymentUseCase instance.
func NewDeleteSavingPaymentUseCase(paymentRepo adapter.SavingPaymentRepository, events adapter.EventPublisher) *DeleteSavingPaymentUseCase {
	return &DeleteSavingPaymentUseCase{
		paymentRepo: paymentRepo,
		events:      events,
	}
}

// Execute performs the saving payment deletion.
func (uc *DeleteSavingPaymentUseCase) Execute(ctx context.Context, input DeleteSavingPaymentInput) (*DeleteSavingPaymentOutput, error) {
	payment, err := uc.paymentRepo.FindByID(ctx, input.SavingPaymentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSavingPaymentNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"saving payment not found",
				domainerror.ErrSavingPaymentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find saving payment: %w", err)
	}

	if payment.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnauthorizedAccess,
			"not authorized to delete this saving payment",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.paymentRepo.Delete(ctx, input.SavingPaymentID); err != nil {
		return nil, fmt.Errorf("failed to delete saving payment: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Saving payment deleted",
	})

	return &DeleteSavingPaymentOutput{
		Success: true,
	}, nil
}

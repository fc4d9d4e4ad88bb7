// Package savingpayment contains saving payment-related use cases.
package savingpayment

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

// UpdateSavingPaymentInput represents the input for saving payment update.
type UpdateSavingPaymentInput struct {
	SavingPaymentID uuid.UUID
	UserID          uuid.UUID
	Date            time.Time
	Amount          decimal.Decimal
	Status          entity.PaymentStatus
	PaymentMethod   string
	Notes           string
}

// UpdateSavingPaymentOutput represents the output of saving payment update.
type UpdateSavingPaymentOutput struct {
	SavingPayment *entity.SavingPayment
}

// UpdateSavingPaymentUseCase handles saving payment update logic.
type UpdateSavingPaymentUseCase struct {
	paymentRepo adapter.SavingPaymentRepository
	events      adapter.EventPublisher
}

// NewUpdateSavingPaymentUseCase creates a new UpdateSavingPaymentUseCase instance.
func NewUpdateSavingPaymentUseCase(paymentRepo adapter.SavingPaymentRepository, events adapter.EventPublisher) *UpdateSavingPaymentUseCase {
	return &UpdateSavingPaymentUseCase{
		paymentRepo: paymentRepo,
		events:      events,
	}
}

// Execute performs the saving payment update. The stored record is replaced
// with the submitted values rather than patched field by field.
func (uc *UpdateSavingPaymentUseCase) Execute(ctx context.Context, input UpdateSavingPaymentInput) (*UpdateSavingPaymentOutput, error) {
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
			"not authorized to update this saving payment",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	payment.Date = input.Date
	payment.Amount = input.Amount
	if input.Status != "" {
		payment.Status = input.Status
	}
	payment.PaymentMethod = input.PaymentMethod
	payment.Notes = input.Notes
	payment.UpdatedAt = time.Now().UTC()

	if err := uc.paymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update saving payment: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Saving payment updated",
	})

	return &UpdateSavingPaymentOutput{
		SavingPayment: payment,
	}, nil
}

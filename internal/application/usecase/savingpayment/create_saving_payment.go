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

// CreateSavingPaymentInput represents the input for saving payment creation.
type CreateSavingPaymentInput struct {
	UserID        uuid.UUID
	SavingID      uuid.UUID
	Date          time.Time
	Amount        decimal.Decimal
	Status        entity.PaymentStatus
	PaymentMethod string
	Notes         string
}

// CreateSavingPaymentOutput represents the output of saving payment creation.
type CreateSavingPaymentOutput struct {
	SavingPayment *entity.SavingPayment
}

// CreateSavingPaymentUseCase handles saving payment creation logic.
type CreateSavingPaymentUseCase struct {
	paymentRepo adapter.SavingPaymentRepository
	savingRepo  adapter.SavingRepository
	events      adapter.EventPublisher
}

// NewCreateSavingPaymentUseCase creates a new CreateSavingPaymentUseCase instance.
func NewCreateSavingPaymentUseCase(
	paymentRepo adapter.SavingPaymentRepository,
	savingRepo adapter.SavingRepository,
	events adapter.EventPublisher,
) *CreateSavingPaymentUseCase {
	return &CreateSavingPaymentUseCase{
		paymentRepo: paymentRepo,
		savingRepo:  savingRepo,
		events:      events,
	}
}

// Execute performs the saving payment creation. The referenced saving must
// exist and belong to the same user.
func (uc *CreateSavingPaymentUseCase) Execute(ctx context.Context, input CreateSavingPaymentInput) (*CreateSavingPaymentOutput, error) {
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
			"not authorized to add payments to this saving",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	status := input.Status
	if status == "" {
		status = entity.PaymentStatusPending
	}

	payment := entity.NewSavingPayment(
		input.UserID,
		input.SavingID,
		input.Date,
		input.Amount,
		status,
		input.PaymentMethod,
		input.Notes,
	)

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create saving payment: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Saving payment created",
	})

	return &CreateSavingPaymentOutput{
		SavingPayment: payment,
	}, nil
}

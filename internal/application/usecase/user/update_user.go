// Package user contains user profile use cases.
package user

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

// UpdateUserInput represents the input for profile update. Email, username,
// and password are managed by the auth flows and stay untouched here.
type UpdateUserInput struct {
	UserID              uuid.UUID
	RequesterID         uuid.UUID
	Firstname           string
	Lastname            string
	MobileNumber        string
	IsCoupleModeEnabled bool
	PreferredCurrency   string
	IncomeGoal          *decimal.Decimal
	SavingGoal          *decimal.Decimal
	InvestmentGoal      *decimal.Decimal
}

// UpdateUserOutput represents the output of profile update.
type UpdateUserOutput struct {
	User *entity.User
}

// UpdateUserUseCase handles user profile update logic.
type UpdateUserUseCase struct {
	userRepo adapter.UserRepository
	events   adapter.EventPublisher
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository, events adapter.EventPublisher) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		events:   events,
	}
}

// Execute performs the profile update. Users can only update their own
// profile; the submitted values replace the stored profile fields.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
	if input.UserID != input.RequesterID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnauthorizedAccess,
			"not authorized to update this profile",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.Firstname = input.Firstname
	user.Lastname = input.Lastname
	user.MobileNumber = input.MobileNumber
	user.IsCoupleModeEnabled = input.IsCoupleModeEnabled
	if input.PreferredCurrency != "" {
		user.PreferredCurrency = input.PreferredCurrency
	} else {
		user.PreferredCurrency = entity.DefaultCurrency
	}
	user.IncomeGoal = input.IncomeGoal
	user.SavingGoal = input.SavingGoal
	user.InvestmentGoal = input.InvestmentGoal
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.events.Publish(ctx, input.UserID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Profile updated",
	})

	return &UpdateUserOutput{
		User: user,
	}, nil
}

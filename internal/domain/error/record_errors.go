// Package error defines domain-specific errors for the Personal Finance Tracker application.
package error

import "errors"

// Record domain errors, shared across the CRUD entity types.
var (
	// ErrIncomeNotFound is returned when an income record is not found.
	ErrIncomeNotFound = errors.New("income record not found")

	// ErrExpenseNotFound is returned when an expense record is not found.
	ErrExpenseNotFound = errors.New("expense record not found")

	// ErrSavingNotFound is returned when a saving record is not found.
	ErrSavingNotFound = errors.New("saving record not found")

	// ErrSavingPaymentNotFound is returned when a saving payment record is not found.
	ErrSavingPaymentNotFound = errors.New("saving payment record not found")

	// ErrInvestmentNotFound is returned when an investment record is not found.
	ErrInvestmentNotFound = errors.New("investment record not found")

	// ErrBudgetPeriodNotFound is returned when a budget period record is not found.
	ErrBudgetPeriodNotFound = errors.New("budget period record not found")

	// ErrGoalNotFound is returned when a goal record is not found.
	ErrGoalNotFound = errors.New("goal record not found")

	// ErrUnauthorizedRecordAccess is returned when a record belongs to a different user.
	ErrUnauthorizedRecordAccess = errors.New("unauthorized access to record")

	// ErrInvalidAmount is returned when an amount is negative where a
	// non-negative value is required.
	ErrInvalidAmount = errors.New("invalid amount")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeRecordNotFound     RecordErrorCode = "REC-010001"
	ErrCodeUnauthorizedAccess RecordErrorCode = "REC-010002"

	// Validation errors (02XXXX)
	ErrCodeInvalidAmount RecordErrorCode = "REC-020001"
	ErrCodeMissingFields RecordErrorCode = "REC-020002"
	ErrCodeInvalidDate   RecordErrorCode = "REC-020003"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

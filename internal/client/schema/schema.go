// Package schema defines per-entity form defaults and synchronous field
// validation: required fields, positive amounts, date format, and enum
// membership. Validation returns field-scoped messages and never makes a
// network call.
package schema

import (
	"time"

	"github.com/raghusami/personal-finance-tracker/internal/client"
)

const dateLayout = "2006-01-02"

// DefaultCurrency is the currency pre-filled on new drafts.
const DefaultCurrency = "INR"

// Errors maps field names to validation messages. An empty map means the
// record is valid.
type Errors = map[string]string

func today() string {
	return time.Now().Format(dateLayout)
}

func requireText(errs Errors, field, value string) {
	if value == "" {
		errs[field] = field + " is required"
	}
}

func requireDate(errs Errors, field, value string) {
	if value == "" {
		errs[field] = field + " is required"
		return
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		errs[field] = field + " must be a YYYY-MM-DD date"
	}
}

func optionalDate(errs Errors, field string, value *string) {
	if value == nil || *value == "" {
		return
	}
	if _, err := time.Parse(dateLayout, *value); err != nil {
		errs[field] = field + " must be a YYYY-MM-DD date"
	}
}

func requirePositive(errs Errors, field string, amount float64) {
	if amount <= 0 {
		errs[field] = field + " must be greater than zero"
	}
}

func requireNonNegative(errs Errors, field string, amount float64) {
	if amount < 0 {
		errs[field] = field + " must not be negative"
	}
}

func optionalEnum(errs Errors, field, value string, allowed ...string) {
	if value == "" {
		return
	}
	requireEnum(errs, field, value, allowed...)
}

func requireEnum(errs Errors, field, value string, allowed ...string) {
	for _, candidate := range allowed {
		if value == candidate {
			return
		}
	}
	errs[field] = field + " must be one of the allowed values"
}

// Income is the schema for income records.
type Income struct{}

// Defaults returns a fresh income draft.
func (Income) Defaults() client.Income {
	return client.Income{
		IncomeDate: today(),
		Currency:   DefaultCurrency,
	}
}

// Validate checks an income draft.
func (Income) Validate(record client.Income) Errors {
	errs := Errors{}
	requireDate(errs, "incomeDate", record.IncomeDate)
	requireText(errs, "incomeSource", record.IncomeSource)
	requirePositive(errs, "amount", record.Amount)
	return errs
}

// Expense is the schema for expense records.
type Expense struct{}

// Defaults returns a fresh expense draft.
func (Expense) Defaults() client.Expense {
	return client.Expense{
		Date:     today(),
		Currency: DefaultCurrency,
	}
}

// Validate checks an expense draft.
func (Expense) Validate(record client.Expense) Errors {
	errs := Errors{}
	requireDate(errs, "date", record.Date)
	requireText(errs, "category", record.Category)
	requirePositive(errs, "amount", record.Amount)
	return errs
}

// Saving is the schema for saving records.
type Saving struct{}

// Defaults returns a fresh saving draft.
func (Saving) Defaults() client.Saving {
	return client.Saving{
		Date:       today(),
		Currency:   DefaultCurrency,
		SavingType: client.SavingTypeOneTime,
	}
}

// Validate checks a saving draft. Recurring savings additionally need a
// positive month count so the payment generator has something to work with.
func (Saving) Validate(record client.Saving) Errors {
	errs := Errors{}
	requireDate(errs, "date", record.Date)
	requireText(errs, "title", record.Title)
	requirePositive(errs, "amount", record.Amount)
	requireEnum(errs, "savingType", record.SavingType,
		client.SavingTypeRecurring, client.SavingTypeOneTime)
	if record.SavingType == client.SavingTypeRecurring && record.NumberOfMonths < 1 {
		errs["numberOfMonths"] = "numberOfMonths must be at least 1 for a recurring saving"
	}
	if record.TargetAmount != nil {
		requirePositive(errs, "targetAmount", *record.TargetAmount)
	}
	optionalDate(errs, "targetDate", record.TargetDate)
	optionalDate(errs, "maturityDate", record.MaturityDate)
	return errs
}

// SavingPayment is the schema for saving payment records.
type SavingPayment struct{}

// Defaults returns a fresh saving payment draft.
func (SavingPayment) Defaults() client.SavingPayment {
	return client.SavingPayment{
		Date:   today(),
		Status: client.PaymentStatusPending,
	}
}

// Validate checks a saving payment draft.
func (SavingPayment) Validate(record client.SavingPayment) Errors {
	errs := Errors{}
	requireText(errs, "savingId", record.SavingID)
	requireDate(errs, "date", record.Date)
	requirePositive(errs, "amount", record.Amount)
	optionalEnum(errs, "status", record.Status,
		client.PaymentStatusPending, client.PaymentStatusCompleted, client.PaymentStatusFailed)
	return errs
}

// Investment is the schema for investment records.
type Investment struct{}

// Defaults returns a fresh investment draft.
func (Investment) Defaults() client.Investment {
	return client.Investment{
		Date:   today(),
		Status: client.InvestmentStatusActive,
	}
}

// Validate checks an investment draft.
func (Investment) Validate(record client.Investment) Errors {
	errs := Errors{}
	requireDate(errs, "date", record.Date)
	requireText(errs, "investmentType", record.InvestmentType)
	requirePositive(errs, "amount", record.Amount)
	optionalEnum(errs, "status", record.Status,
		client.InvestmentStatusActive, client.InvestmentStatusExited)
	return errs
}

// BudgetPeriod is the schema for budget period records.
type BudgetPeriod struct{}

// Defaults returns a fresh budget period draft.
func (BudgetPeriod) Defaults() client.BudgetPeriod {
	return client.BudgetPeriod{
		FromDate:     today(),
		DurationType: client.DurationMonthly,
	}
}

// Validate checks a budget period draft.
func (BudgetPeriod) Validate(record client.BudgetPeriod) Errors {
	errs := Errors{}
	requireDate(errs, "fromDate", record.FromDate)
	requireDate(errs, "toDate", record.ToDate)
	requireText(errs, "category", record.Category)
	requirePositive(errs, "amount", record.Amount)
	optionalEnum(errs, "durationType", record.DurationType,
		client.DurationMonthly, client.DurationQuarterly, client.DurationCustom)
	return errs
}

// Goal is the schema for goal records.
type Goal struct{}

// Defaults returns a fresh goal draft.
func (Goal) Defaults() client.Goal {
	return client.Goal{
		Status: client.GoalStatusNotStarted,
	}
}

// Validate checks a goal draft.
func (Goal) Validate(record client.Goal) Errors {
	errs := Errors{}
	requireText(errs, "name", record.Name)
	requirePositive(errs, "targetAmount", record.TargetAmount)
	requireNonNegative(errs, "currentAmount", record.CurrentAmount)
	requireDate(errs, "targetDate", record.TargetDate)
	optionalEnum(errs, "status", record.Status,
		client.GoalStatusNotStarted, client.GoalStatusInProgress,
		client.GoalStatusCompleted, client.GoalStatusCancelled)
	return errs
}

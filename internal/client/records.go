package client

import "time"

// Record types mirror the wire contract: camelCase JSON, dates as
// YYYY-MM-DD strings, amounts as JSON numbers. The zero ID marks a record
// not yet persisted; the server assigns IDs on create.

// Income is an income record.
type Income struct {
	ID           string    `json:"id,omitempty"`
	IncomeDate   string    `json:"incomeDate"`
	IncomeSource string    `json:"incomeSource"`
	IncomeType   string    `json:"incomeType"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// Expense is an expense record.
type Expense struct {
	ID          string    `json:"id,omitempty"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// Saving types.
const (
	SavingTypeRecurring = "Recurring"
	SavingTypeOneTime   = "One-time"
)

// Saving is a saving record. A Recurring saving spawns one SavingPayment
// per month for NumberOfMonths months.
type Saving struct {
	ID              string    `json:"id,omitempty"`
	Date            string    `json:"date"`
	Title           string    `json:"title"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	SavingType      string    `json:"savingType"`
	Category        string    `json:"category"`
	Account         string    `json:"account"`
	GoalName        string    `json:"goalName"`
	TargetAmount    *float64  `json:"targetAmount,omitempty"`
	TargetDate      *string   `json:"targetDate,omitempty"`
	IsGoalCompleted bool      `json:"isGoalCompleted"`
	InterestRate    *float64  `json:"interestRate,omitempty"`
	InterestAmount  *float64  `json:"interestAmount,omitempty"`
	MaturityDate    *string   `json:"maturityDate,omitempty"`
	NumberOfMonths  int       `json:"numberOfMonths"`
	VendorName      string    `json:"vendorName"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// Saving payment statuses.
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
)

// SavingPayment is one monthly payment against a saving.
type SavingPayment struct {
	ID            string    `json:"id,omitempty"`
	SavingID      string    `json:"savingId"`
	Date          string    `json:"date"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

// Investment statuses.
const (
	InvestmentStatusActive = "Active"
	InvestmentStatusExited = "Exited"
)

// Investment is an investment record.
type Investment struct {
	ID             string    `json:"id,omitempty"`
	Date           string    `json:"date"`
	InvestmentType string    `json:"investmentType"`
	Platform       string    `json:"platform"`
	Amount         float64   `json:"amount"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

// Budget duration types.
const (
	DurationMonthly   = "monthly"
	DurationQuarterly = "quarterly"
	DurationCustom    = "custom"
)

// BudgetPeriod is a budget for one category over a date range.
type BudgetPeriod struct {
	ID           string    `json:"id,omitempty"`
	FromDate     string    `json:"fromDate"`
	ToDate       string    `json:"toDate"`
	Category     string    `json:"category"`
	Amount       float64   `json:"amount"`
	Notes        string    `json:"notes"`
	DurationType string    `json:"durationType"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// Goal statuses.
const (
	GoalStatusNotStarted = "Not Started"
	GoalStatusInProgress = "In Progress"
	GoalStatusCompleted  = "Completed"
	GoalStatusCancelled  = "Cancelled"
)

// Goal is a financial goal record.
type Goal struct {
	ID            string    `json:"id,omitempty"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	TargetDate    string    `json:"targetDate"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

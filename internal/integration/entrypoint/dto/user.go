// Package dto defines data transfer objects for API requests and responses.
package dto

// UpdateUserRequest represents the request body for profile update.
// Email, username, and password are managed by the auth endpoints and
// are not part of this payload.
type UpdateUserRequest struct {
	Firstname           string   `json:"firstname" binding:"required,min=1,max=100"`
	Lastname            string   `json:"lastname" binding:"max=100"`
	MobileNumber        string   `json:"mobileNumber" binding:"max=20"`
	IsCoupleModeEnabled bool     `json:"isCoupleModeEnabled"`
	PreferredCurrency   string   `json:"preferredCurrency" binding:"omitempty,len=3"`
	IncomeGoal          *float64 `json:"incomeGoal"`
	SavingGoal          *float64 `json:"savingGoal"`
	InvestmentGoal      *float64 `json:"investmentGoal"`
}

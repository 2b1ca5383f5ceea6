// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RiskProfile represents the user's appetite for investment risk.
type RiskProfile string

const (
	RiskProfileLow    RiskProfile = "low"
	RiskProfileMedium RiskProfile = "medium"
	RiskProfileHigh   RiskProfile = "high"
)

// DefaultGoalMonths is the savings horizon used when none was supplied.
const DefaultGoalMonths = 12

// ParseRiskProfile normalises free-form input ("Medium", " HIGH ") into a RiskProfile.
// Unknown values fall back to medium.
func ParseRiskProfile(value string) RiskProfile {
	switch RiskProfile(strings.ToLower(strings.TrimSpace(value))) {
	case RiskProfileLow:
		return RiskProfileLow
	case RiskProfileHigh:
		return RiskProfileHigh
	default:
		return RiskProfileMedium
	}
}

// User represents a person whose monthly finances are tracked.
type User struct {
	ID                 uuid.UUID
	Name               string
	MonthlyIncome      decimal.Decimal
	MonthlyExpenses    decimal.Decimal
	MonthlySavingsGoal decimal.Decimal
	RiskProfile        RiskProfile
	ExpensesBreakdown  map[string]decimal.Decimal
	EmergencyFund      decimal.Decimal
	FinancialGoal      string
	GoalAmount         decimal.Decimal
	GoalMonths         int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User with default values.
func NewUser(name string) *User {
	now := time.Now().UTC()
	return &User{
		ID:                uuid.New(),
		Name:              name,
		RiskProfile:       RiskProfileMedium,
		ExpensesBreakdown: map[string]decimal.Decimal{},
		GoalMonths:        DefaultGoalMonths,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// MonthlySavings returns income minus expenses. It may be negative.
func (u *User) MonthlySavings() decimal.Decimal {
	return u.MonthlyIncome.Sub(u.MonthlyExpenses)
}

// NonNegative clamps negative amounts to zero.
func NonNegative(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinanceSnapshot is an immutable record of a user's monthly figures at a point in time.
type FinanceSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Income    decimal.Decimal
	Expenses  decimal.Decimal
	Savings   decimal.Decimal
	CreatedAt time.Time
}

// NewFinanceSnapshot captures the user's current income and expenses.
func NewFinanceSnapshot(user *User) *FinanceSnapshot {
	return &FinanceSnapshot{
		ID:        uuid.New(),
		UserID:    user.ID,
		Income:    user.MonthlyIncome,
		Expenses:  user.MonthlyExpenses,
		Savings:   user.MonthlySavings(),
		CreatedAt: time.Now().UTC(),
	}
}

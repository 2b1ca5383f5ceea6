// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// UserReport is one user's line in the monthly report.
type UserReport struct {
	Name               string `json:"name"`
	MonthlyIncome      string `json:"monthly_income"`
	MonthlyExpenses    string `json:"monthly_expenses"`
	MonthlySavings     string `json:"monthly_savings"`
	MonthlySavingsGoal string `json:"monthly_savings_goal"`
	RiskProfile        string `json:"risk_profile"`
	Timestamp          string `json:"timestamp"`
}

// MonthlyReport maps "user_{id}" keys to user reports.
type MonthlyReport map[string]UserReport

// ReportWriter defines the interface for the append-only report sink.
type ReportWriter interface {
	// Append writes the report as one record. Existing records are never modified.
	Append(ctx context.Context, generatedAt time.Time, report MonthlyReport) error
}

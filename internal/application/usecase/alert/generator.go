// Package alert contains alert-related use cases.
package alert

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
	"github.com/finai/backend/internal/domain/insight"
	"github.com/finai/backend/internal/domain/valueobject"
)

var (
	// WarningExpenseRatio is the share of income expenses must exceed to raise a warning.
	WarningExpenseRatio = decimal.RequireFromString("0.7")

	// CriticalExpenseRatio is the share of income expenses must exceed to raise a critical alert.
	CriticalExpenseRatio = insight.CriticalExpenseRatio
)

// Options controls which rules an evaluation includes.
type Options struct {
	// IncludeInsights adds one alert per insight after the threshold alert.
	IncludeInsights bool
}

// ThresholdAlert returns the alert for the highest expense band breached, or nil.
// Users without income are never evaluated.
func ThresholdAlert(user *entity.User) *entity.Alert {
	if !user.MonthlyIncome.IsPositive() {
		return nil
	}

	expenses := user.MonthlyExpenses
	percent := valueobject.FormatPercent(valueobject.Percent(expenses, user.MonthlyIncome))
	amount := valueobject.FormatCurrency(expenses)

	switch {
	case expenses.GreaterThan(user.MonthlyIncome.Mul(CriticalExpenseRatio)):
		return entity.NewAlert(user.ID,
			fmt.Sprintf("Critical: Expenses at %s%% of income (%s). Urgent action needed!", percent, amount),
			entity.AlertLevelCritical)
	case expenses.GreaterThan(user.MonthlyIncome.Mul(WarningExpenseRatio)):
		return entity.NewAlert(user.ID,
			fmt.Sprintf("Warning: Your expenses (%s) are %s%% of your income.", amount, percent),
			entity.AlertLevelWarning)
	}
	return nil
}

// Build returns the alerts an evaluation of the user would raise, threshold alert first.
func Build(user *entity.User, opts Options) []*entity.Alert {
	var alerts []*entity.Alert

	if threshold := ThresholdAlert(user); threshold != nil {
		alerts = append(alerts, threshold)
	}

	if opts.IncludeInsights {
		for _, in := range insight.Analyze(insight.InputFromUser(user)) {
			alerts = append(alerts, entity.NewAlert(user.ID, in.Message, in.Type))
		}
	}

	return alerts
}

// Generator evaluates a user and persists the resulting alerts.
type Generator struct {
	alertRepo adapter.AlertRepository
}

// NewGenerator creates a new Generator instance.
func NewGenerator(alertRepo adapter.AlertRepository) *Generator {
	return &Generator{
		alertRepo: alertRepo,
	}
}

// Evaluate builds the user's alerts and stores them in one transaction.
// Alerts are never deduplicated against earlier evaluations.
func (g *Generator) Evaluate(ctx context.Context, user *entity.User, opts Options) ([]*entity.Alert, error) {
	alerts := Build(user, opts)
	if len(alerts) == 0 {
		return nil, nil
	}

	if err := g.alertRepo.CreateMany(ctx, alerts); err != nil {
		return nil, fmt.Errorf("failed to store alerts: %w", err)
	}

	return alerts, nil
}

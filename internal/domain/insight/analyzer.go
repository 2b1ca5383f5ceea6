// Package insight turns a user's monthly figures into categorized findings.
//
// Every rule is evaluated independently; a finding from one rule never
// suppresses another. All thresholds are fixed.
package insight

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/domain/entity"
	"github.com/finai/backend/internal/domain/valueobject"
)

var (
	// LowSavingsRatePercent is the savings rate below which a warning is raised.
	LowSavingsRatePercent = decimal.NewFromInt(20)

	// CriticalExpenseRatio is the share of income that expenses must exceed to be critical.
	CriticalExpenseRatio = decimal.RequireFromString("0.8")

	// EmergencyFundMonths is the number of months of expenses an emergency fund should cover.
	EmergencyFundMonths = decimal.NewFromInt(3)

	equityShare = decimal.RequireFromString("0.6")
	debtShare   = decimal.RequireFromString("0.3")
	goldShare   = decimal.RequireFromString("0.1")

	hundred = decimal.NewFromInt(100)
)

// Insight is a single categorized finding.
type Insight struct {
	Type    entity.AlertLevel `json:"type"`
	Message string            `json:"message"`
}

// Input holds the figures the analysis runs on.
type Input struct {
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	GoalAmount      decimal.Decimal
	GoalMonths      int
	EmergencyFund   decimal.Decimal
}

// InputFromUser builds an analysis input from a stored user.
func InputFromUser(user *entity.User) Input {
	return Input{
		MonthlyIncome:   user.MonthlyIncome,
		MonthlyExpenses: user.MonthlyExpenses,
		GoalAmount:      user.GoalAmount,
		GoalMonths:      user.GoalMonths,
		EmergencyFund:   user.EmergencyFund,
	}
}

// Forecast describes whether the savings goal is reachable in the goal horizon.
type Forecast struct {
	ProjectedSavings decimal.Decimal
	GoalAmount       decimal.Decimal
	AchievementRate  decimal.Decimal
	Shortfall        decimal.Decimal
	OnTrack          bool
}

// Allocation is the fixed 60/30/10 split of investable money.
type Allocation struct {
	EmergencyFund decimal.Decimal
	Equity        decimal.Decimal
	Debt          decimal.Decimal
	Gold          decimal.Decimal
}

// Analyzer evaluates the insight rules for one set of figures.
type Analyzer struct {
	in Input
}

// NewAnalyzer creates an Analyzer for the given figures.
func NewAnalyzer(in Input) *Analyzer {
	return &Analyzer{in: in}
}

// MonthlySavings returns income minus expenses.
func (a *Analyzer) MonthlySavings() decimal.Decimal {
	return a.in.MonthlyIncome.Sub(a.in.MonthlyExpenses)
}

// SavingsRate returns savings as a percentage of income, or zero without income.
func (a *Analyzer) SavingsRate() decimal.Decimal {
	return valueobject.Percent(a.MonthlySavings(), a.in.MonthlyIncome)
}

// MonthsCovered returns how many months of expenses the emergency fund covers, or zero without expenses.
func (a *Analyzer) MonthsCovered() decimal.Decimal {
	if !a.in.MonthlyExpenses.IsPositive() {
		return decimal.Zero
	}
	return a.in.EmergencyFund.Div(a.in.MonthlyExpenses)
}

// Forecast projects current savings over the goal horizon.
func (a *Analyzer) Forecast() Forecast {
	projected := a.MonthlySavings().Mul(decimal.NewFromInt(int64(a.in.GoalMonths)))
	rate := valueobject.Percent(projected, a.in.GoalAmount)

	shortfall := a.in.GoalAmount.Sub(projected)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}

	return Forecast{
		ProjectedSavings: projected,
		GoalAmount:       a.in.GoalAmount,
		AchievementRate:  rate,
		Shortfall:        shortfall,
		OnTrack:          rate.GreaterThanOrEqual(hundred),
	}
}

// Allocation splits monthly savings plus the emergency fund 60/30/10 across equity, debt and gold.
func (a *Analyzer) Allocation() Allocation {
	investable := a.MonthlySavings().Add(a.in.EmergencyFund)
	return Allocation{
		EmergencyFund: a.in.EmergencyFund,
		Equity:        investable.Mul(equityShare),
		Debt:          investable.Mul(debtShare),
		Gold:          investable.Mul(goldShare),
	}
}

// ExpenseInsights covers the savings-rate and expense-ratio rules.
func (a *Analyzer) ExpenseInsights() []Insight {
	var insights []Insight

	rate := a.SavingsRate()
	if rate.LessThan(LowSavingsRatePercent) {
		insights = append(insights, Insight{
			Type: entity.AlertLevelWarning,
			Message: fmt.Sprintf("Low savings rate (%s%%). Consider increasing SIP or cutting expenses.",
				valueobject.FormatPercent(rate)),
		})
	}

	if a.in.MonthlyExpenses.GreaterThan(a.in.MonthlyIncome.Mul(CriticalExpenseRatio)) {
		share := valueobject.Percent(a.in.MonthlyExpenses, a.in.MonthlyIncome)
		insights = append(insights, Insight{
			Type: entity.AlertLevelCritical,
			Message: fmt.Sprintf("Expenses are %s%% of income. Budget tightening recommended.",
				valueobject.FormatPercent(share)),
		})
	}

	return insights
}

// EmergencyFundInsights covers the emergency fund rule.
func (a *Analyzer) EmergencyFundInsights() []Insight {
	covered := a.MonthsCovered()
	if !covered.LessThan(EmergencyFundMonths) {
		return nil
	}

	shortfall := a.in.MonthlyExpenses.Mul(EmergencyFundMonths).Sub(a.in.EmergencyFund)
	return []Insight{{
		Type: entity.AlertLevelWarning,
		Message: fmt.Sprintf("Emergency fund covers only %s months. Target: 3-6 months. Shortfall: %s",
			covered.StringFixed(1), valueobject.FormatCurrency(shortfall)),
	}}
}

// GoalInsights covers the goal forecast rule.
func (a *Analyzer) GoalInsights() []Insight {
	forecast := a.Forecast()
	if forecast.OnTrack {
		return nil
	}

	return []Insight{{
		Type: entity.AlertLevelWarning,
		Message: fmt.Sprintf("Goal off track by %s%%. Need to save %s more.",
			valueobject.FormatPercent(hundred.Sub(forecast.AchievementRate)),
			valueobject.FormatCurrency(forecast.Shortfall)),
	}}
}

// Insights evaluates every rule in order: expenses, emergency fund, goal.
func (a *Analyzer) Insights() []Insight {
	insights := make([]Insight, 0, 4)
	insights = append(insights, a.ExpenseInsights()...)
	insights = append(insights, a.EmergencyFundInsights()...)
	insights = append(insights, a.GoalInsights()...)
	return insights
}

// Analyze is shorthand for NewAnalyzer(in).Insights().
func Analyze(in Input) []Insight {
	return NewAnalyzer(in).Insights()
}

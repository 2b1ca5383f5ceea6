// Package advisor contains the conversational finance advisor use cases.
package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/finai/backend/internal/domain/entity"
	"github.com/finai/backend/internal/domain/insight"
	"github.com/finai/backend/internal/domain/valueobject"
)

// SystemPrompt frames every advisor request.
const SystemPrompt = `You are FinAI, an expert agentic AI finance and investment advisor.
You provide rational, actionable, and ethical financial advice based on data.
Your response should include:
1. Short Insight (1-2 sentences)
2. Reasoning (explain your logic)
3. Action Steps (2-4 specific recommendations)
4. Forecast or Tip (optional future outlook)`

// DefaultMessage is sent when the user supplied no message.
const DefaultMessage = "Analyze my financial situation and provide recommendations."

const defaultGoalText = "General savings"

// BuildPrompt renders the system prompt, the user's profile with insights and the latest message.
func BuildPrompt(user *entity.User, analyzer *insight.Analyzer, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		message = DefaultMessage
	}

	goal := strings.TrimSpace(user.FinancialGoal)
	if goal == "" {
		goal = defaultGoalText
	}

	insightsJSON, err := json.MarshalIndent(analyzer.Insights(), "", "  ")
	if err != nil {
		insightsJSON = []byte("[]")
	}

	var sb strings.Builder
	sb.WriteString("User Financial Profile:\n")
	sb.WriteString(fmt.Sprintf("- Monthly Income: %s\n", valueobject.FormatCurrency(user.MonthlyIncome)))
	sb.WriteString(fmt.Sprintf("- Monthly Expenses: %s\n", valueobject.FormatCurrency(user.MonthlyExpenses)))
	sb.WriteString(fmt.Sprintf("- Savings Rate: %s%%\n", valueobject.FormatPercent(analyzer.SavingsRate())))
	sb.WriteString(fmt.Sprintf("- Risk Profile: %s\n", user.RiskProfile))
	sb.WriteString(fmt.Sprintf("- Goal: %s (%s in %d months)\n", goal, valueobject.FormatCurrency(user.GoalAmount), user.GoalMonths))
	sb.WriteString("\nCurrent Insights:\n")
	sb.Write(insightsJSON)

	return fmt.Sprintf("%s\n\nContext:\n%s\n\nUser: %s", SystemPrompt, sb.String(), message)
}

// FallbackAdvice is the deterministic answer used when inference fails.
func FallbackAdvice(analyzer *insight.Analyzer) string {
	allocation := analyzer.Allocation()
	return fmt.Sprintf("Based on your financial profile, consider this allocation: 60%% Equities (%s), 30%% Debt (%s), 10%% Gold (%s).",
		valueobject.FormatCurrency(allocation.Equity),
		valueobject.FormatCurrency(allocation.Debt),
		valueobject.FormatCurrency(allocation.Gold),
	)
}

// Package user contains user profile use cases.
package user

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/domain/entity"
)

// DefaultName is used when a profile is submitted without a name.
const DefaultName = "User"

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	return name
}

// normalizeGoalMonths treats a missing or non-positive horizon as the default.
func normalizeGoalMonths(months int) int {
	if months <= 0 {
		return entity.DefaultGoalMonths
	}
	return months
}

// normalizeBreakdown drops blank categories and clamps negative amounts.
func normalizeBreakdown(breakdown map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(breakdown))
	for category, amount := range breakdown {
		category = strings.TrimSpace(category)
		if category == "" {
			continue
		}
		out[category] = entity.NonNegative(amount)
	}
	return out
}

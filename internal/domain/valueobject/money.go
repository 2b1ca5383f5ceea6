// Package valueobject contains domain value objects for the FinAI system.
package valueobject

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "₹"

var printer = message.NewPrinter(language.English)

var hundred = decimal.NewFromInt(100)

// FormatCurrency renders an amount rounded to whole units with thousands separators, e.g. ₹1,234,567.
func FormatCurrency(amount decimal.Decimal) string {
	return CurrencySymbol + printer.Sprintf("%d", amount.RoundBank(0).IntPart())
}

// FormatPercent renders a percentage with one decimal place, e.g. 71.0.
func FormatPercent(percent decimal.Decimal) string {
	return percent.StringFixed(1)
}

// Percent returns part / whole × 100, or zero when whole is not positive.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole)
}

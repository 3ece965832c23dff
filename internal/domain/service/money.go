// Package service contains the pure budgeting rules shared by every use case:
// the category hierarchy, the budget recalculation engine and the goal allocator.
package service

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds a monetary amount to cents, half away from zero.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// PercentOf returns round2(percentage/100 × amount).
func PercentOf(percentage float64, amount decimal.Decimal) decimal.Decimal {
	return Round2(decimal.NewFromFloat(percentage).Mul(amount).Div(hundred))
}

// ShareOf returns part as a percentage of whole at full precision, or 0 when whole is zero.
func ShareOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}

// IsFinite reports whether a percentage is usable in money arithmetic.
func IsFinite(percentage float64) bool {
	return !math.IsNaN(percentage) && !math.IsInf(percentage, 0)
}

// RoundPercent rounds a percentage to one decimal place for display.
func RoundPercent(percentage float64) float64 {
	return math.Round(percentage*10) / 10
}

// MaxZero clamps negative amounts to zero.
func MaxZero(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a monthly spending cap for one category, stored as a fixed limit or
// derived from a percentage of the monthly income.
type Budget struct {
	ID         string
	Category   string
	Limit      decimal.Decimal
	Percentage *float64 // nil means a fixed-limit budget
	Spent      decimal.Decimal
	Month      string // YYYY-MM
}

// NewBudget creates a new Budget with zero spending.
func NewBudget(category string, limit decimal.Decimal, percentage *float64, month string) *Budget {
	return &Budget{
		ID:         uuid.NewString(),
		Category:   category,
		Limit:      limit,
		Percentage: percentage,
		Spent:      decimal.Zero,
		Month:      month,
	}
}

// IsSavings reports whether this is the engine-managed savings budget.
func (b *Budget) IsSavings() bool {
	return b.Category == SavingsCategoryID
}

// IsPercentageBased reports whether the limit is derived from income.
func (b *Budget) IsPercentageBased() bool {
	return b.Percentage != nil
}

// EffectiveMonth returns the budget month, or fallback when the month is unset.
func (b *Budget) EffectiveMonth(fallback string) string {
	if b.Month == "" {
		return fallback
	}
	return b.Month
}

// Remaining returns the amount left to spend; negative when over budget.
func (b *Budget) Remaining() decimal.Decimal {
	return b.Limit.Sub(b.Spent)
}

// Clone returns a deep copy of the budget.
func (b *Budget) Clone() *Budget {
	clone := *b
	if b.Percentage != nil {
		p := *b.Percentage
		clone.Percentage = &p
	}
	return &clone
}

// Equal reports whether two budgets hold the same values in every field.
func (b *Budget) Equal(other *Budget) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.ID != other.ID || b.Category != other.Category || b.Month != other.Month {
		return false
	}
	if !b.Limit.Equal(other.Limit) || !b.Spent.Equal(other.Spent) {
		return false
	}
	if (b.Percentage == nil) != (other.Percentage == nil) {
		return false
	}
	return b.Percentage == nil || *b.Percentage == *other.Percentage
}

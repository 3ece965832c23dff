// Package valueobject contains domain value objects for the budget planner.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AllocationPolicy holds the thresholds used when validating and reporting allocations.
type AllocationPolicy struct {
	// Goal allocation ceiling and the rounding tolerance accepted above it
	GoalCeilingPercent   float64 // 100
	GoalTolerancePercent float64 // 0.05

	// Soft warning for the Needs group of budgets
	NeedsWarningPercent float64 // 50
	NeedsKeywords       []string

	// Budget usage ratio above which a budget is reported as near its limit
	WarningUsage decimal.Decimal // 0.8 = 80%
}

// DefaultAllocationPolicy returns the default allocation policy.
func DefaultAllocationPolicy() AllocationPolicy {
	return AllocationPolicy{
		GoalCeilingPercent:   100,
		GoalTolerancePercent: 0.05,
		NeedsWarningPercent:  50,
		NeedsKeywords:        []string{"housing", "groceries", "transport", "bill"},
		WarningUsage:         decimal.NewFromFloat(0.8),
	}
}

// ExceedsGoalCeiling reports whether a prospective goal allocation total is over the ceiling.
func (p AllocationPolicy) ExceedsGoalCeiling(total float64) bool {
	return total > p.GoalCeilingPercent+p.GoalTolerancePercent
}

// IsNeedsLabel reports whether a category label belongs to the Needs group.
func (p AllocationPolicy) IsNeedsLabel(label string) bool {
	lower := strings.ToLower(label)
	for _, keyword := range p.NeedsKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

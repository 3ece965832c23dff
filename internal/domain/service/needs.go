package service

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// NeedsWarning is a soft, non-blocking warning raised when essential spending
// takes more of the income than the policy recommends.
type NeedsWarning struct {
	TotalPercentage float64
	Threshold       float64
	Categories      []string
}

// EffectivePercentage returns the budget percentage, or its limit as a share of income.
func EffectivePercentage(b *entity.Budget, income decimal.Decimal) float64 {
	if b.IsPercentageBased() {
		return *b.Percentage
	}
	return ShareOf(b.Limit, income)
}

// EvaluateNeeds sums the Needs budgets of a month and returns a warning when they exceed the threshold.
func EvaluateNeeds(
	policy valueobject.AllocationPolicy,
	budgets []*entity.Budget,
	tree *CategoryTree,
	income decimal.Decimal,
	month string,
) *NeedsWarning {
	total := 0.0
	var categories []string
	for _, b := range budgets {
		if b.IsSavings() || b.EffectiveMonth(month) != month {
			continue
		}
		label := tree.Label(b.Category)
		if !policy.IsNeedsLabel(label) {
			continue
		}
		total += EffectivePercentage(b, income)
		categories = append(categories, label)
	}
	if total <= policy.NeedsWarningPercent {
		return nil
	}
	return &NeedsWarning{
		TotalPercentage: RoundPercent(total),
		Threshold:       policy.NeedsWarningPercent,
		Categories:      categories,
	}
}

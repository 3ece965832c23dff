// Package goal contains saving goal use cases.
package goal

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// GoalOutput represents a saving goal with its derived values.
type GoalOutput struct {
	*entity.SavingGoal
	MonthlyContribution decimal.Decimal
	ProgressPercent     float64
	RemainingAmount     decimal.Decimal
	MonthsToTarget      *int // nil when nothing is contributed each month
	IsCompleted         bool
}

// newGoalOutput derives the display values of a goal from the current savings limit.
func newGoalOutput(goal *entity.SavingGoal, savingsLimit decimal.Decimal) *GoalOutput {
	contribution := service.MonthlyContribution(goal, savingsLimit)
	remaining := service.MaxZero(goal.TargetAmount.Sub(goal.SavedAmount))

	output := &GoalOutput{
		SavingGoal:          goal.Clone(),
		MonthlyContribution: contribution,
		ProgressPercent:     math.Min(100, service.RoundPercent(service.ShareOf(goal.SavedAmount, goal.TargetAmount))),
		RemainingAmount:     remaining,
		IsCompleted:         remaining.IsZero(),
	}

	if output.IsCompleted {
		zero := 0
		output.MonthsToTarget = &zero
	} else if contribution.IsPositive() {
		months := int(remaining.Div(contribution).Ceil().IntPart())
		output.MonthsToTarget = &months
	}

	return output
}

// monthsUntil returns the number of whole months between now and a target date, never negative.
func monthsUntil(now time.Time, target time.Time) int {
	months := (target.Year()-now.Year())*12 + int(target.Month()) - int(now.Month())
	if months < 0 {
		return 0
	}
	return months
}

package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// GoalAllocator validates saving goal allocations against the allocation ceiling.
type GoalAllocator struct {
	policy valueobject.AllocationPolicy
}

// NewGoalAllocator creates a new GoalAllocator.
func NewGoalAllocator(policy valueobject.AllocationPolicy) *GoalAllocator {
	return &GoalAllocator{policy: policy}
}

// TotalAllocation sums the allocation of every goal.
func (a *GoalAllocator) TotalAllocation(goals []*entity.SavingGoal) float64 {
	return a.OtherAllocations(goals, "")
}

// OtherAllocations sums the allocation of every goal except excludeID.
func (a *GoalAllocator) OtherAllocations(goals []*entity.SavingGoal, excludeID string) float64 {
	total := 0.0
	for _, g := range goals {
		if excludeID != "" && g.ID == excludeID {
			continue
		}
		total += g.Allocation()
	}
	return total
}

// MaxAllowed returns the largest allocation that fits next to the other goals.
func (a *GoalAllocator) MaxAllowed(others float64) float64 {
	return math.Max(0, math.Round((a.policy.GoalCeilingPercent-others)*100)/100)
}

// Validate checks the allocation of goalID (empty for a new goal) against the other goals.
func (a *GoalAllocator) Validate(goals []*entity.SavingGoal, goalID string, percentage *float64) error {
	if percentage == nil {
		return nil
	}
	if !IsFinite(*percentage) {
		return domainerror.NewGoalError(domainerror.ErrCodeInvalidAllocation,
			"allocation percentage must be a finite number", domainerror.ErrInvalidAllocation)
	}
	if *percentage < 0 {
		return domainerror.NewGoalError(domainerror.ErrCodeNegativePercentage,
			"allocation percentage cannot be negative", domainerror.ErrNegativePercentage)
	}
	others := a.OtherAllocations(goals, goalID)
	if a.policy.ExceedsGoalCeiling(others + *percentage) {
		return domainerror.NewAllocationExceededError(a.MaxAllowed(others))
	}
	return nil
}

// MonthlyContribution returns the share of the savings limit a goal receives each month.
func MonthlyContribution(goal *entity.SavingGoal, savingsLimit decimal.Decimal) decimal.Decimal {
	return PercentOf(goal.Allocation(), savingsLimit)
}

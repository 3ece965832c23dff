// Package goal contains saving goal use cases.
package goal

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	OwnerID string
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals               []*GoalOutput
	SavingsLimit        decimal.Decimal
	TotalAllocation     float64
	RemainingAllocation float64
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	workspace *session.Workspace
	allocator *service.GoalAllocator
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(workspace *session.Workspace, allocator *service.GoalAllocator) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		workspace: workspace,
		allocator: allocator,
	}
}

// Execute lists goals with their contribution from the current savings budget.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	savingsLimit := service.SavingsLimit(data.Budgets, uc.workspace.CurrentMonth())
	total := uc.allocator.TotalAllocation(data.SavingGoals)

	output := &ListGoalsOutput{
		Goals:               make([]*GoalOutput, 0, len(data.SavingGoals)),
		SavingsLimit:        savingsLimit,
		TotalAllocation:     service.RoundPercent(total),
		RemainingAllocation: uc.allocator.MaxAllowed(total),
	}

	for _, g := range data.SavingGoals {
		output.Goals = append(output.Goals, newGoalOutput(g, savingsLimit))
	}

	return output, nil
}

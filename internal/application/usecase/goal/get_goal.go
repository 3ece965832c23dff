// Package goal contains saving goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/finance-tracker/planner/internal/application/session"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// GetGoalInput represents the input for getting a single goal.
type GetGoalInput struct {
	OwnerID string
	ID      string
}

// GetGoalOutput represents the output of getting a goal.
type GetGoalOutput struct {
	Goal                  *GoalOutput
	MonthsUntilTargetDate *int
}

// GetGoalUseCase handles retrieving a single goal.
type GetGoalUseCase struct {
	workspace *session.Workspace
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(workspace *session.Workspace) *GetGoalUseCase {
	return &GetGoalUseCase{
		workspace: workspace,
	}
}

// Execute retrieves the goal with its derived values.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	goal := data.FindGoal(input.ID)
	if goal == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			fmt.Sprintf("saving goal %q does not exist", input.ID),
			domainerror.ErrGoalNotFound,
		)
	}

	output := &GetGoalOutput{
		Goal: newGoalOutput(goal, service.SavingsLimit(data.Budgets, uc.workspace.CurrentMonth())),
	}
	if goal.TargetDate != nil {
		months := monthsUntil(uc.workspace.Clock().Now(), *goal.TargetDate)
		output.MonthsUntilTargetDate = &months
	}

	return output, nil
}

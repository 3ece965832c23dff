// Package goal contains saving goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/session"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// ContributeToGoalInput represents the input for adding money to a goal.
type ContributeToGoalInput struct {
	OwnerID string
	ID      string
	Amount  decimal.Decimal
}

// ContributeToGoalOutput represents the output of a contribution.
type ContributeToGoalOutput struct {
	Goal *GoalOutput
}

// ContributeToGoalUseCase adds an amount to the saved amount of a goal.
type ContributeToGoalUseCase struct {
	workspace *session.Workspace
}

// NewContributeToGoalUseCase creates a new ContributeToGoalUseCase instance.
func NewContributeToGoalUseCase(workspace *session.Workspace) *ContributeToGoalUseCase {
	return &ContributeToGoalUseCase{
		workspace: workspace,
	}
}

// Execute performs the contribution.
func (uc *ContributeToGoalUseCase) Execute(ctx context.Context, input ContributeToGoalInput) (*ContributeToGoalOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"contribution must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if data.FindGoal(input.ID) == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			fmt.Sprintf("saving goal %q does not exist", input.ID),
			domainerror.ErrGoalNotFound,
		)
	}

	next := data.Clone()
	goal := next.FindGoal(input.ID)
	goal.SavedAmount = service.Round2(goal.SavedAmount.Add(input.Amount))

	if err := uc.workspace.Commit(ctx, input.OwnerID, next); err != nil {
		return nil, err
	}

	return &ContributeToGoalOutput{
		Goal: newGoalOutput(goal, service.SavingsLimit(next.Budgets, uc.workspace.CurrentMonth())),
	}, nil
}

// Package goal contains saving goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// DeleteGoalInput represents the input for deleting a goal.
type DeleteGoalInput struct {
	OwnerID string
	ID      string
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	workspace *session.Workspace
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(workspace *session.Workspace) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		workspace: workspace,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return err
	}

	if data.FindGoal(input.ID) == nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			fmt.Sprintf("saving goal %q does not exist", input.ID),
			domainerror.ErrGoalNotFound,
		)
	}

	next := data.Clone()
	remaining := make([]*entity.SavingGoal, 0, len(next.SavingGoals))
	for _, g := range next.SavingGoals {
		if g.ID != input.ID {
			remaining = append(remaining, g)
		}
	}
	next.SavingGoals = remaining

	return uc.workspace.Commit(ctx, input.OwnerID, next)
}

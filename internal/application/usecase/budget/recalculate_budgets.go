// Package budget contains budget and income use cases.
package budget

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// RecalculateBudgetsInput represents the input for an on-demand recalculation.
type RecalculateBudgetsInput struct {
	OwnerID string
}

// RecalculateBudgetsOutput represents the output of a recalculation.
type RecalculateBudgetsOutput struct {
	Budgets []*entity.Budget
	Changed bool
}

// RecalculateBudgetsUseCase runs the budget engine for the current month,
// e.g. after a month rollover, and writes only when the result differs.
type RecalculateBudgetsUseCase struct {
	workspace *session.Workspace
}

// NewRecalculateBudgetsUseCase creates a new RecalculateBudgetsUseCase instance.
func NewRecalculateBudgetsUseCase(workspace *session.Workspace) *RecalculateBudgetsUseCase {
	return &RecalculateBudgetsUseCase{
		workspace: workspace,
	}
}

// Execute performs the recalculation.
func (uc *RecalculateBudgetsUseCase) Execute(ctx context.Context, input RecalculateBudgetsInput) (*RecalculateBudgetsOutput, error) {
	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	next := data.Clone()
	changed := uc.workspace.Recompute(next)
	if changed {
		if err := uc.workspace.Commit(ctx, input.OwnerID, next); err != nil {
			return nil, err
		}
		slog.Debug("Budgets recalculated", "owner_id", input.OwnerID, "month", uc.workspace.CurrentMonth())
	}

	return &RecalculateBudgetsOutput{
		Budgets: next.Budgets,
		Changed: changed,
	}, nil
}

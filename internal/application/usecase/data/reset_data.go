// Package data contains use cases over the whole budget dataset of an owner.
package data

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/planner/internal/application/session"
)

// ResetDataInput represents the input for resetting the dataset.
type ResetDataInput struct {
	OwnerID string
}

// ResetDataUseCase clears the stored dataset so the next load starts from defaults.
type ResetDataUseCase struct {
	workspace *session.Workspace
}

// NewResetDataUseCase creates a new ResetDataUseCase instance.
func NewResetDataUseCase(workspace *session.Workspace) *ResetDataUseCase {
	return &ResetDataUseCase{
		workspace: workspace,
	}
}

// Execute removes the stored dataset of the owner.
func (uc *ResetDataUseCase) Execute(ctx context.Context, input ResetDataInput) error {
	if err := uc.workspace.Clear(ctx, input.OwnerID); err != nil {
		return err
	}

	slog.Info("Budget data reset", "owner_id", input.OwnerID)
	return nil
}

// Package session owns the load, recompute and commit cycle of an owner's AppData.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// Workspace gives use cases a consistent view of one owner's dataset.
// Mutations are applied to a clone of the loaded aggregate and committed as a whole.
type Workspace struct {
	store adapter.AppDataStore
	clock adapter.Clock
}

// NewWorkspace creates a new Workspace.
func NewWorkspace(store adapter.AppDataStore, clock adapter.Clock) *Workspace {
	return &Workspace{
		store: store,
		clock: clock,
	}
}

// CurrentMonth returns the current month key.
func (w *Workspace) CurrentMonth() string {
	return entity.MonthKey(w.clock.Now())
}

// Clock returns the clock used by the workspace.
func (w *Workspace) Clock() adapter.Clock {
	return w.clock
}

// Load returns the owner's dataset. An undecodable record is recovered with the default dataset.
func (w *Workspace) Load(ctx context.Context, ownerID string) (*entity.AppData, error) {
	data, err := w.store.Load(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrStorage) {
			return nil, fmt.Errorf("failed to load data: %w", err)
		}
		slog.Warn("Stored data could not be decoded, using defaults",
			"owner_id", ownerID,
			"error", err,
		)
		data = nil
	}
	if data == nil {
		data = entity.NewDefaultAppData()
	}
	return data, nil
}

// Recompute runs the budget engine on data for the current month and reports whether budgets changed.
func (w *Workspace) Recompute(data *entity.AppData) bool {
	result := service.RecomputeBudgets(service.RecomputeInput{
		Budgets:       data.Budgets,
		Transactions:  data.Transactions,
		Categories:    data.Categories,
		MonthlyIncome: data.MonthlyIncome,
		Month:         w.CurrentMonth(),
	})
	if result.Changed {
		data.Budgets = result.Budgets
	}
	return result.Changed
}

// Commit writes the dataset back. Serialization failures are logged and dropped;
// transport failures are returned.
func (w *Workspace) Commit(ctx context.Context, ownerID string, data *entity.AppData) error {
	if err := w.store.Save(ctx, ownerID, data); err != nil {
		if errors.Is(err, domainerror.ErrStorage) {
			slog.Error("Failed to serialize data, changes were not persisted",
				"owner_id", ownerID,
				"error", err,
			)
			return nil
		}
		return fmt.Errorf("failed to save data: %w", err)
	}
	return nil
}

// Clear removes the owner's record.
func (w *Workspace) Clear(ctx context.Context, ownerID string) error {
	if err := w.store.Clear(ctx, ownerID); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	return nil
}

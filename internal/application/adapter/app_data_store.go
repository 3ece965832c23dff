// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// AppDataStore persists the whole AppData aggregate of an owner as a single record.
type AppDataStore interface {
	// Load returns the owner's dataset, or nil when no record exists.
	// An undecodable record yields a *domainerror.StorageError.
	Load(ctx context.Context, ownerID string) (*entity.AppData, error)

	// Save replaces the owner's record with the given dataset.
	Save(ctx context.Context, ownerID string, data *entity.AppData) error

	// Clear removes the owner's record.
	Clear(ctx context.Context, ownerID string) error
}

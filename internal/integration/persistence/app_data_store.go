// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

// DefaultStoreKey is the key under which datasets are stored when none is configured.
const DefaultStoreKey = "finance_app_data"

// appDataStore implements the adapter.AppDataStore interface on a single table row per owner.
type appDataStore struct {
	db  *gorm.DB
	key string
	now func() time.Time
}

// NewAppDataStore creates a new AppData store bound to the given store key.
func NewAppDataStore(db *gorm.DB, key string) adapter.AppDataStore {
	if key == "" {
		key = DefaultStoreKey
	}
	return &appDataStore{
		db:  db,
		key: key,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Load returns the owner's dataset, or nil when nothing was stored yet.
func (s *appDataStore) Load(ctx context.Context, ownerID string) (*entity.AppData, error) {
	var row model.AppDataModel
	result := s.db.WithContext(ctx).
		Where("store_key = ? AND owner_id = ?", s.key, ownerID).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return model.DecodeAppData([]byte(row.Payload))
}

// Save upserts the owner's dataset.
func (s *appDataStore) Save(ctx context.Context, ownerID string, data *entity.AppData) error {
	payload, err := model.EncodeAppData(data)
	if err != nil {
		return err
	}

	now := s.now()
	row := &model.AppDataModel{
		ID:        uuid.New(),
		StoreKey:  s.key,
		OwnerID:   ownerID,
		Payload:   string(payload),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_key"}, {Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(row).Error
}

// Clear deletes the owner's dataset.
func (s *appDataStore) Clear(ctx context.Context, ownerID string) error {
	return s.db.WithContext(ctx).
		Where("store_key = ? AND owner_id = ?", s.key, ownerID).
		Delete(&model.AppDataModel{}).Error
}

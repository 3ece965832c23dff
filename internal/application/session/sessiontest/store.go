// Package sessiontest provides in-memory collaborators for use case tests.
package sessiontest

import (
	"context"
	"sync"
	"time"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// MemoryStore is an AppDataStore keeping cloned datasets in memory.
type MemoryStore struct {
	mu        sync.Mutex
	records   map[string]*entity.AppData
	SaveCount int
	LoadErr   error
	SaveErr   error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*entity.AppData)}
}

// Load implements adapter.AppDataStore.
func (s *MemoryStore) Load(ctx context.Context, ownerID string) (*entity.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	data, ok := s.records[ownerID]
	if !ok {
		return entity.NewDefaultAppData(), nil
	}
	return data.Clone(), nil
}

// Save implements adapter.AppDataStore.
func (s *MemoryStore) Save(ctx context.Context, ownerID string, data *entity.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.SaveCount++
	s.records[ownerID] = data.Clone()
	return nil
}

// Clear implements adapter.AppDataStore.
func (s *MemoryStore) Clear(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, ownerID)
	return nil
}

// Put seeds the record of an owner without counting a save.
func (s *MemoryStore) Put(ownerID string, data *entity.AppData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[ownerID] = data.Clone()
}

// Get returns a clone of the stored record, or nil.
func (s *MemoryStore) Get(ownerID string) *entity.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.records[ownerID]
	if !ok {
		return nil
	}
	return data.Clone()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	Time time.Time
}

// Now implements adapter.Clock.
func (c FixedClock) Now() time.Time {
	return c.Time
}

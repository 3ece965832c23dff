package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/application/session/sessiontest"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

var clock = sessiontest.FixedClock{Time: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)}

func TestWorkspace_Load(t *testing.T) {
	transport := errors.New("connection refused")

	tests := []struct {
		name        string
		loadErr     error
		expectError bool
	}{
		{name: "undecodable record falls back to defaults", loadErr: domainerror.NewStorageError(domainerror.ErrCodeDecodeFailed, "bad json", errors.New("eof"))},
		{name: "transport failure is returned", loadErr: transport, expectError: true},
		{name: "missing record returns defaults"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := sessiontest.NewMemoryStore()
			store.LoadErr = tt.loadErr
			ws := session.NewWorkspace(store, clock)

			data, err := ws.Load(context.Background(), "owner")

			if tt.expectError {
				assert.ErrorIs(t, err, transport)
				assert.Nil(t, data)
				return
			}
			require.NoError(t, err)
			assert.Len(t, data.Categories, len(entity.DefaultCategories()))
			assert.Nil(t, data.MonthlyIncome)
		})
	}
}

func TestWorkspace_CommitDropsSerializationFailures(t *testing.T) {
	store := sessiontest.NewMemoryStore()
	ws := session.NewWorkspace(store, clock)

	store.SaveErr = domainerror.NewStorageError(domainerror.ErrCodeEncodeFailed, "cannot encode", errors.New("nan"))
	assert.NoError(t, ws.Commit(context.Background(), "owner", entity.NewDefaultAppData()))

	store.SaveErr = errors.New("disk full")
	assert.Error(t, ws.Commit(context.Background(), "owner", entity.NewDefaultAppData()))
}

func TestWorkspace_RecomputeUsesCurrentMonth(t *testing.T) {
	ws := session.NewWorkspace(sessiontest.NewMemoryStore(), clock)
	assert.Equal(t, "2024-05", ws.CurrentMonth())

	data := entity.NewDefaultAppData()
	assert.False(t, ws.Recompute(data), "nothing to do without income")

	income := decimal.NewFromInt(800)
	data.MonthlyIncome = &income
	assert.True(t, ws.Recompute(data))
	require.Len(t, data.Budgets, 1)
	assert.Equal(t, "2024-05", data.Budgets[0].Month)
	assert.Equal(t, "800.00", data.Budgets[0].Limit.StringFixed(2))

	assert.False(t, ws.Recompute(data))
}

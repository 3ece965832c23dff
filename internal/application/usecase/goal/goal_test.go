package goal

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/application/session/sessiontest"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/service"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

const owner = "owner-1"

var now = time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

func pct(p float64) *float64 {
	return &p
}

type fixture struct {
	store     *sessiontest.MemoryStore
	workspace *session.Workspace
	allocator *service.GoalAllocator
}

// newFixture stores a dataset whose May 2024 savings budget is worth 1000.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := sessiontest.NewMemoryStore()
	ws := session.NewWorkspace(store, sessiontest.FixedClock{Time: now})

	income := decimal.NewFromInt(2000)
	data := entity.NewDefaultAppData()
	data.MonthlyIncome = &income
	data.Budgets = []*entity.Budget{
		entity.NewBudget("housing", decimal.NewFromInt(1000), nil, "2024-05"),
	}
	ws.Recompute(data)
	store.Put(owner, data)

	return &fixture{
		store:     store,
		workspace: ws,
		allocator: service.NewGoalAllocator(valueobject.DefaultAllocationPolicy()),
	}
}

func (f *fixture) save(t *testing.T, input SaveGoalInput) (*SaveGoalOutput, error) {
	t.Helper()
	input.OwnerID = owner
	return NewSaveGoalUseCase(f.workspace, f.allocator).Execute(context.Background(), input)
}

func TestSaveGoal_AllocationExceeded(t *testing.T) {
	f := newFixture(t)

	_, err := f.save(t, SaveGoalInput{Name: "G1", TargetAmount: decimal.NewFromInt(5000), PercentageAllocation: pct(60)})
	require.NoError(t, err)
	saves := f.store.SaveCount

	_, err = f.save(t, SaveGoalInput{Name: "G2", TargetAmount: decimal.NewFromInt(5000), PercentageAllocation: pct(50)})

	require.ErrorIs(t, err, domainerror.ErrAllocationExceeded)
	var goalErr *domainerror.GoalError
	require.ErrorAs(t, err, &goalErr)
	assert.Equal(t, 40.0, goalErr.MaxAllowed)
	assert.Equal(t, saves, f.store.SaveCount)
	assert.Len(t, f.store.Get(owner).SavingGoals, 1)
}

func TestSaveGoal_ToleranceBand(t *testing.T) {
	f := newFixture(t)

	_, err := f.save(t, SaveGoalInput{Name: "A", TargetAmount: decimal.NewFromInt(100), PercentageAllocation: pct(60)})
	require.NoError(t, err)

	// Slightly above 100 in total is still accepted
	_, err = f.save(t, SaveGoalInput{Name: "B", TargetAmount: decimal.NewFromInt(100), PercentageAllocation: pct(40.04)})
	require.NoError(t, err)

	_, err = f.save(t, SaveGoalInput{Name: "C", TargetAmount: decimal.NewFromInt(100), PercentageAllocation: pct(0.1)})
	assert.ErrorIs(t, err, domainerror.ErrAllocationExceeded)
}

func TestSaveGoal_UpdatePreservesSavedAmount(t *testing.T) {
	f := newFixture(t)
	saved := decimal.NewFromInt(250)

	created, err := f.save(t, SaveGoalInput{
		Name:                 "Car",
		TargetAmount:         decimal.NewFromInt(8000),
		SavedAmount:          &saved,
		PercentageAllocation: pct(70),
	})
	require.NoError(t, err)

	// Editing its own allocation does not count against itself
	reset := decimal.Zero
	updated, err := f.save(t, SaveGoalInput{
		ID:                   created.Goal.ID,
		Name:                 "New car",
		TargetAmount:         decimal.NewFromInt(9000),
		SavedAmount:          &reset,
		PercentageAllocation: pct(90),
	})
	require.NoError(t, err)

	assert.Equal(t, created.Goal.ID, updated.Goal.ID)
	assert.Equal(t, "New car", updated.Goal.Name)
	assert.Equal(t, "250.00", updated.Goal.SavedAmount.StringFixed(2))
	assert.Equal(t, "900.00", updated.Goal.MonthlyContribution.StringFixed(2))
}

func TestSaveGoal_Rejections(t *testing.T) {
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name     string
		input    SaveGoalInput
		sentinel error
	}{
		{name: "missing name", input: SaveGoalInput{Name: " ", TargetAmount: decimal.NewFromInt(10)}, sentinel: domainerror.ErrGoalNameRequired},
		{name: "zero target", input: SaveGoalInput{Name: "Trip", TargetAmount: decimal.Zero}, sentinel: domainerror.ErrInvalidTargetAmount},
		{name: "negative saved", input: SaveGoalInput{Name: "Trip", TargetAmount: decimal.NewFromInt(10), SavedAmount: &negative}, sentinel: domainerror.ErrInvalidSavedAmount},
		{name: "negative percentage", input: SaveGoalInput{Name: "Trip", TargetAmount: decimal.NewFromInt(10), PercentageAllocation: pct(-5)}, sentinel: domainerror.ErrNegativePercentage},
		{name: "percentage not a number", input: SaveGoalInput{Name: "Trip", TargetAmount: decimal.NewFromInt(10), PercentageAllocation: pct(math.NaN())}, sentinel: domainerror.ErrInvalidAllocation},
		{name: "infinite percentage", input: SaveGoalInput{Name: "Trip", TargetAmount: decimal.NewFromInt(10), PercentageAllocation: pct(math.Inf(-1))}, sentinel: domainerror.ErrInvalidAllocation},
		{name: "unknown goal", input: SaveGoalInput{ID: "missing", Name: "Trip", TargetAmount: decimal.NewFromInt(10)}, sentinel: domainerror.ErrGoalNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.save(t, tt.input)

			assert.ErrorIs(t, err, tt.sentinel)
			assert.Zero(t, f.store.SaveCount)
		})
	}
}

func TestListGoals_SortedWithContribution(t *testing.T) {
	f := newFixture(t)
	for _, g := range []struct {
		name string
		p    float64
	}{{"vacation", 25}, {"Emergency", 50}, {"bike", 12.5}} {
		_, err := f.save(t, SaveGoalInput{Name: g.name, TargetAmount: decimal.NewFromInt(1000), PercentageAllocation: pct(g.p)})
		require.NoError(t, err)
	}

	out, err := NewListGoalsUseCase(f.workspace, f.allocator).Execute(context.Background(), ListGoalsInput{OwnerID: owner})
	require.NoError(t, err)

	require.Len(t, out.Goals, 3)
	assert.Equal(t, "bike", out.Goals[0].Name)
	assert.Equal(t, "Emergency", out.Goals[1].Name)
	assert.Equal(t, "vacation", out.Goals[2].Name)

	assert.Equal(t, "1000.00", out.SavingsLimit.StringFixed(2))
	assert.Equal(t, "125.00", out.Goals[0].MonthlyContribution.StringFixed(2))
	require.NotNil(t, out.Goals[0].MonthsToTarget)
	assert.Equal(t, 8, *out.Goals[0].MonthsToTarget)
	assert.Equal(t, 87.5, out.TotalAllocation)
	assert.Equal(t, 12.5, out.RemainingAllocation)
}

func TestContributeToGoal(t *testing.T) {
	f := newFixture(t)
	created, err := f.save(t, SaveGoalInput{Name: "Laptop", TargetAmount: decimal.NewFromInt(1200)})
	require.NoError(t, err)

	uc := NewContributeToGoalUseCase(f.workspace)
	out, err := uc.Execute(context.Background(), ContributeToGoalInput{
		OwnerID: owner,
		ID:      created.Goal.ID,
		Amount:  decimal.RequireFromString("300.005"),
	})
	require.NoError(t, err)

	assert.Equal(t, "300.01", out.Goal.SavedAmount.StringFixed(2))
	assert.Equal(t, 25.0, out.Goal.ProgressPercent)
	assert.Nil(t, out.Goal.MonthsToTarget)
	assert.Empty(t, f.store.Get(owner).Transactions)

	_, err = uc.Execute(context.Background(), ContributeToGoalInput{OwnerID: owner, ID: created.Goal.ID, Amount: decimal.Zero})
	assert.ErrorIs(t, err, domainerror.ErrValidation)
}

func TestGetAndDeleteGoal(t *testing.T) {
	f := newFixture(t)
	target := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	created, err := f.save(t, SaveGoalInput{Name: "Trip", TargetAmount: decimal.NewFromInt(900), TargetDate: &target})
	require.NoError(t, err)

	got, err := NewGetGoalUseCase(f.workspace).Execute(context.Background(), GetGoalInput{OwnerID: owner, ID: created.Goal.ID})
	require.NoError(t, err)
	require.NotNil(t, got.MonthsUntilTargetDate)
	assert.Equal(t, 9, *got.MonthsUntilTargetDate)

	del := NewDeleteGoalUseCase(f.workspace)
	require.NoError(t, del.Execute(context.Background(), DeleteGoalInput{OwnerID: owner, ID: created.Goal.ID}))
	assert.Empty(t, f.store.Get(owner).SavingGoals)

	err = del.Execute(context.Background(), DeleteGoalInput{OwnerID: owner, ID: created.Goal.ID})
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
}

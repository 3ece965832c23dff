package service

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

func goal(name string, allocation *float64) *entity.SavingGoal {
	return entity.NewSavingGoal(name, dec("1000"), dec("0"), nil, allocation, "")
}

func TestGoalAllocator_Validate(t *testing.T) {
	allocator := NewGoalAllocator(valueobject.DefaultAllocationPolicy())
	vacation := goal("Vacation", pct(60))
	emergency := goal("Emergency", pct(30))
	unallocated := goal("Someday", nil)
	goals := []*entity.SavingGoal{vacation, emergency, unallocated}

	tests := []struct {
		name        string
		goalID      string
		percentage  *float64
		expectedErr error
		maxAllowed  float64
	}{
		{name: "fits exactly", percentage: pct(10)},
		{name: "within tolerance", percentage: pct(10.05)},
		{name: "over tolerance", percentage: pct(10.06), expectedErr: domainerror.ErrAllocationExceeded, maxAllowed: 10},
		{name: "nil allocation", percentage: nil},
		{name: "zero allocation", percentage: pct(0)},
		{name: "negative", percentage: pct(-1), expectedErr: domainerror.ErrNegativePercentage},
		{name: "not a number", percentage: pct(math.NaN()), expectedErr: domainerror.ErrInvalidAllocation},
		{name: "infinite", percentage: pct(math.Inf(1)), expectedErr: domainerror.ErrInvalidAllocation},
		{name: "update excludes own allocation", goalID: vacation.ID, percentage: pct(70)},
		{name: "update over ceiling", goalID: vacation.ID, percentage: pct(71), expectedErr: domainerror.ErrAllocationExceeded, maxAllowed: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := allocator.Validate(goals, tt.goalID, tt.percentage)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedErr))

			var goalErr *domainerror.GoalError
			require.True(t, errors.As(err, &goalErr))
			if tt.expectedErr == domainerror.ErrAllocationExceeded {
				assert.Equal(t, domainerror.ErrCodeAllocationExceeded, goalErr.Code)
				assert.InDelta(t, tt.maxAllowed, goalErr.MaxAllowed, 0.0001)
			}
		})
	}
}

func TestGoalAllocator_MaxAllowedNeverNegative(t *testing.T) {
	allocator := NewGoalAllocator(valueobject.DefaultAllocationPolicy())

	assert.Equal(t, 0.0, allocator.MaxAllowed(100.04))
	assert.Equal(t, 40.0, allocator.MaxAllowed(60))
	assert.Equal(t, 66.7, allocator.MaxAllowed(33.3))
}

func TestGoalAllocator_TotalAllocation(t *testing.T) {
	allocator := NewGoalAllocator(valueobject.DefaultAllocationPolicy())
	goals := []*entity.SavingGoal{goal("A", pct(25.5)), goal("B", nil), goal("C", pct(10))}

	assert.InDelta(t, 35.5, allocator.TotalAllocation(goals), 0.0001)
}

func TestMonthlyContribution(t *testing.T) {
	tests := []struct {
		name       string
		allocation *float64
		savings    string
		want       string
	}{
		{name: "share of savings", allocation: pct(60), savings: "1000", want: "600.00"},
		{name: "rounded to cents", allocation: pct(33.3), savings: "123.45", want: "41.11"},
		{name: "no allocation", allocation: nil, savings: "1000", want: "0.00"},
		{name: "no savings", allocation: pct(50), savings: "0", want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMoney(t, tt.want, MonthlyContribution(goal("G", tt.allocation), dec(tt.savings)))
		})
	}
}

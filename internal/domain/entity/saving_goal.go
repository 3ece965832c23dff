package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingGoal is a named target amount, optionally funded by a share of the savings budget.
type SavingGoal struct {
	ID                   string
	Name                 string
	TargetAmount         decimal.Decimal
	SavedAmount          decimal.Decimal
	TargetDate           *time.Time
	PercentageAllocation *float64
	Description          string
}

// NewSavingGoal creates a new SavingGoal entity with a generated ID.
func NewSavingGoal(name string, targetAmount, savedAmount decimal.Decimal, targetDate *time.Time, percentage *float64, description string) *SavingGoal {
	return &SavingGoal{
		ID:                   uuid.NewString(),
		Name:                 name,
		TargetAmount:         targetAmount,
		SavedAmount:          savedAmount,
		TargetDate:           targetDate,
		PercentageAllocation: percentage,
		Description:          description,
	}
}

// Allocation returns the percentage allocation, treating an undefined allocation as zero.
func (g *SavingGoal) Allocation() float64 {
	if g.PercentageAllocation == nil {
		return 0
	}
	return *g.PercentageAllocation
}

// Clone returns a deep copy of the goal.
func (g *SavingGoal) Clone() *SavingGoal {
	clone := *g
	if g.TargetDate != nil {
		d := *g.TargetDate
		clone.TargetDate = &d
	}
	if g.PercentageAllocation != nil {
		p := *g.PercentageAllocation
		clone.PercentageAllocation = &p
	}
	return &clone
}

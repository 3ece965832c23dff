// Package goal contains saving goal use cases.
package goal

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// SaveGoalInput represents the input for adding or updating a saving goal.
type SaveGoalInput struct {
	OwnerID              string
	ID                   string // Empty creates a new goal
	Name                 string
	TargetAmount         decimal.Decimal
	SavedAmount          *decimal.Decimal // Only used on creation, updates keep the saved amount
	TargetDate           *time.Time
	PercentageAllocation *float64
	Description          string
}

// SaveGoalOutput represents the output of saving a goal.
type SaveGoalOutput struct {
	Goal *GoalOutput
}

// SaveGoalUseCase handles saving goal creation and updates.
type SaveGoalUseCase struct {
	workspace *session.Workspace
	allocator *service.GoalAllocator
}

// NewSaveGoalUseCase creates a new SaveGoalUseCase instance.
func NewSaveGoalUseCase(workspace *session.Workspace, allocator *service.GoalAllocator) *SaveGoalUseCase {
	return &SaveGoalUseCase{
		workspace: workspace,
		allocator: allocator,
	}
}

// Execute validates the allocation against the other goals and saves the goal.
func (uc *SaveGoalUseCase) Execute(ctx context.Context, input SaveGoalInput) (*SaveGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNameRequired,
			"goal name is required",
			domainerror.ErrGoalNameRequired,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if input.SavedAmount != nil && input.SavedAmount.IsNegative() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidSavedAmount,
			"saved amount cannot be negative",
			domainerror.ErrInvalidSavedAmount,
		)
	}

	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.ID != "" && data.FindGoal(input.ID) == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			fmt.Sprintf("saving goal %q does not exist", input.ID),
			domainerror.ErrGoalNotFound,
		)
	}

	if err := uc.allocator.Validate(data.SavingGoals, input.ID, input.PercentageAllocation); err != nil {
		return nil, err
	}

	next := data.Clone()
	var goal *entity.SavingGoal
	if input.ID == "" {
		saved := decimal.Zero
		if input.SavedAmount != nil {
			saved = service.Round2(*input.SavedAmount)
		}
		goal = entity.NewSavingGoal(
			name,
			service.Round2(input.TargetAmount),
			saved,
			input.TargetDate,
			input.PercentageAllocation,
			strings.TrimSpace(input.Description),
		)
		next.SavingGoals = append(next.SavingGoals, goal)
	} else {
		goal = next.FindGoal(input.ID)
		goal.Name = name
		goal.TargetAmount = service.Round2(input.TargetAmount)
		goal.TargetDate = input.TargetDate
		goal.PercentageAllocation = input.PercentageAllocation
		goal.Description = strings.TrimSpace(input.Description)
	}
	SortByName(next.SavingGoals)

	if err := uc.workspace.Commit(ctx, input.OwnerID, next); err != nil {
		return nil, err
	}

	savingsLimit := service.SavingsLimit(next.Budgets, uc.workspace.CurrentMonth())
	return &SaveGoalOutput{
		Goal: newGoalOutput(goal, savingsLimit),
	}, nil
}

// SortByName orders goals by name, case-insensitively.
func SortByName(goals []*entity.SavingGoal) {
	sort.SliceStable(goals, func(i, j int) bool {
		return strings.ToLower(goals[i].Name) < strings.ToLower(goals[j].Name)
	})
}

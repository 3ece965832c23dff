// Package budget contains budget and income use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/service"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// SaveBudgetInput represents the input for adding or replacing a budget.
// Exactly one of Limit and Percentage is expected; Percentage wins when both are set.
type SaveBudgetInput struct {
	OwnerID    string
	Category   string
	Limit      *decimal.Decimal
	Percentage *float64
	Month      string // Optional, defaults to the current month
}

// SaveBudgetOutput represents the output of saving a budget.
type SaveBudgetOutput struct {
	Budget       *entity.Budget
	Replaced     bool
	NeedsWarning *service.NeedsWarning // Soft warning, the budget is saved regardless
}

// SaveBudgetUseCase handles budget creation and replacement.
type SaveBudgetUseCase struct {
	workspace *session.Workspace
	policy    valueobject.AllocationPolicy
}

// NewSaveBudgetUseCase creates a new SaveBudgetUseCase instance.
func NewSaveBudgetUseCase(workspace *session.Workspace, policy valueobject.AllocationPolicy) *SaveBudgetUseCase {
	return &SaveBudgetUseCase{
		workspace: workspace,
		policy:    policy,
	}
}

// Execute validates the budget, stores it for its (category, month) and recalculates budgets.
func (uc *SaveBudgetUseCase) Execute(ctx context.Context, input SaveBudgetInput) (*SaveBudgetOutput, error) {
	month := input.Month
	if month == "" {
		month = uc.workspace.CurrentMonth()
	}
	if !entity.IsValidMonthKey(month) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month must use the YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}

	if input.Category == entity.SavingsCategoryID || input.Category == entity.IncomeCategoryID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategory,
			fmt.Sprintf("the %s budget is managed automatically", input.Category),
			domainerror.ErrInvalidCategory,
		)
	}

	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	tree := service.NewCategoryTree(data.Categories)

	category := tree.Get(input.Category)
	if category == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategory,
			fmt.Sprintf("category %q does not exist", input.Category),
			domainerror.ErrCategoryNotFound,
		)
	}
	if category.IsIncomeSource || tree.HasChildren(category.ID) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategory,
			"budgets can only target expense categories without subcategories",
			domainerror.ErrInvalidCategory,
		)
	}

	limit, percentage, err := resolveLimit(data, input)
	if err != nil {
		return nil, err
	}

	next := data.Clone()
	budget := next.FindBudget(category.ID, month)
	replaced := budget != nil
	if replaced {
		budget.Limit = limit
		budget.Percentage = percentage
		budget.Month = month
	} else {
		budget = entity.NewBudget(category.ID, limit, percentage, month)
		next.Budgets = append(next.Budgets, budget)
	}

	var warning *service.NeedsWarning
	if next.HasIncome() {
		warning = service.EvaluateNeeds(uc.policy, next.Budgets, tree, next.Income(), month)
		if warning != nil {
			slog.Warn("Needs budgets exceed the recommended share of income",
				"owner_id", input.OwnerID,
				"month", month,
				"total_percentage", warning.TotalPercentage,
				"threshold", warning.Threshold,
			)
		}
	}

	uc.workspace.Recompute(next)
	if err := uc.workspace.Commit(ctx, input.OwnerID, next); err != nil {
		return nil, err
	}

	// The engine replaces budgets with recomputed copies, look the saved one up again
	saved := budget
	for _, b := range next.Budgets {
		if b.ID == budget.ID {
			saved = b
			break
		}
	}

	return &SaveBudgetOutput{
		Budget:       saved.Clone(),
		Replaced:     replaced,
		NeedsWarning: warning,
	}, nil
}

// resolveLimit converts the input into a limit and an optional percentage.
func resolveLimit(data *entity.AppData, input SaveBudgetInput) (decimal.Decimal, *float64, error) {
	if input.Percentage != nil {
		p := *input.Percentage
		if !service.IsFinite(p) || p < 0 || p > 100 {
			return decimal.Zero, nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetPercentage,
				"percentage must be between 0 and 100",
				domainerror.ErrInvalidBudgetPercentage,
			)
		}
		if !data.HasIncome() {
			return decimal.Zero, nil, domainerror.NewBudgetError(
				domainerror.ErrCodeIncomeNotConfigured,
				"set a monthly income before using percentage budgets",
				domainerror.ErrIncomeNotConfigured,
			)
		}
		return service.PercentOf(p, data.Income()), &p, nil
	}

	if input.Limit == nil || input.Limit.IsNegative() {
		return decimal.Zero, nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"a limit of zero or more, or a percentage, is required",
			domainerror.ErrInvalidBudgetLimit,
		)
	}
	return service.Round2(*input.Limit), nil, nil
}

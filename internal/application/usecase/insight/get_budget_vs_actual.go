// Package insight contains read-only reporting use cases over the budget data.
package insight

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/service"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// GetBudgetVsActualInput represents the input for comparing budgets with spending.
type GetBudgetVsActualInput struct {
	OwnerID string
	Month   string // Optional, defaults to the current month
}

// GetBudgetVsActualOutput represents the output of the budget comparison.
type GetBudgetVsActualOutput struct {
	Month      string
	TotalLimit decimal.Decimal
	TotalSpent decimal.Decimal
	Items      []valueobject.BudgetVsActualItem
	OverBudget int
}

// GetBudgetVsActualUseCase handles comparing budget limits with actual spending.
type GetBudgetVsActualUseCase struct {
	workspace *session.Workspace
	policy    valueobject.AllocationPolicy
}

// NewGetBudgetVsActualUseCase creates a new GetBudgetVsActualUseCase instance.
func NewGetBudgetVsActualUseCase(
	workspace *session.Workspace,
	policy valueobject.AllocationPolicy,
) *GetBudgetVsActualUseCase {
	return &GetBudgetVsActualUseCase{
		workspace: workspace,
		policy:    policy,
	}
}

// Execute compares each budget of the month with the expenses logged against it.
func (uc *GetBudgetVsActualUseCase) Execute(
	ctx context.Context,
	input GetBudgetVsActualInput,
) (*GetBudgetVsActualOutput, error) {
	month, err := resolveMonth(uc.workspace, input.Month)
	if err != nil {
		return nil, err
	}

	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	tree := service.NewCategoryTree(data.Categories)

	budgets := make([]*entity.Budget, 0, len(data.Budgets))
	for _, b := range data.Budgets {
		if b.EffectiveMonth(month) == month {
			budgets = append(budgets, b)
		}
	}
	service.SortBudgets(budgets, tree)

	output := &GetBudgetVsActualOutput{
		Month:      month,
		TotalLimit: decimal.Zero,
		TotalSpent: decimal.Zero,
		Items:      make([]valueobject.BudgetVsActualItem, 0, len(budgets)),
	}

	for _, b := range budgets {
		spent := spentIn(data.Transactions, b.Category, month)
		status := valueobject.CalculateBudgetStatus(uc.policy, b.Limit, spent)

		var percentUsed float64
		if !b.Limit.IsZero() {
			percentUsed = service.RoundPercent(service.ShareOf(spent, b.Limit))
		}

		item := valueobject.BudgetVsActualItem{
			BudgetID:      b.ID,
			CategoryID:    b.Category,
			CategoryLabel: tree.Label(b.Category),
			Limit:         b.Limit,
			Spent:         spent,
			Remaining:     b.Limit.Sub(spent),
			PercentUsed:   percentUsed,
			Status:        status,
			IsOverBudget:  status == valueobject.BudgetStatusOver,
		}
		if item.IsOverBudget {
			output.OverBudget++
		}

		output.TotalLimit = output.TotalLimit.Add(b.Limit)
		output.TotalSpent = output.TotalSpent.Add(spent)
		output.Items = append(output.Items, item)
	}

	return output, nil
}

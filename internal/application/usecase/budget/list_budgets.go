// Package budget contains budget and income use cases.
package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// ListBudgetsInput represents the input for listing the budgets of a month.
type ListBudgetsInput struct {
	OwnerID string
	Month   string // Optional, defaults to the current month
}

// BudgetOutput represents a budget with its display values.
type BudgetOutput struct {
	*entity.Budget
	CategoryLabel     string
	CategoryIcon      entity.Icon
	DisplayPercentage *float64 // Share of income, one decimal; nil without income
	Remaining         decimal.Decimal
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Month          string
	MonthlyIncome  *decimal.Decimal
	Budgets        []*BudgetOutput
	TotalAllocated decimal.Decimal
	Leftover       decimal.Decimal
}

// ListBudgetsUseCase handles listing budgets logic.
type ListBudgetsUseCase struct {
	workspace *session.Workspace
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(workspace *session.Workspace) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		workspace: workspace,
	}
}

// Execute lists the stored budgets of a month in engine order.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
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

	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	tree := service.NewCategoryTree(data.Categories)
	currentMonth := uc.workspace.CurrentMonth()

	output := &ListBudgetsOutput{
		Month:          month,
		MonthlyIncome:  data.MonthlyIncome,
		Budgets:        make([]*BudgetOutput, 0),
		TotalAllocated: decimal.Zero,
	}

	for _, b := range data.Budgets {
		if b.EffectiveMonth(currentMonth) != month {
			continue
		}
		budgetOutput := &BudgetOutput{
			Budget:        b.Clone(),
			CategoryLabel: tree.Label(b.Category),
			CategoryIcon:  entity.DefaultCategoryIcon,
			Remaining:     b.Remaining(),
		}
		if c := tree.Get(b.Category); c != nil {
			budgetOutput.CategoryIcon = c.Icon
		}
		if data.HasIncome() && data.Income().IsPositive() {
			p := service.RoundPercent(service.ShareOf(b.Limit, data.Income()))
			budgetOutput.DisplayPercentage = &p
		}
		if !b.IsSavings() {
			output.TotalAllocated = output.TotalAllocated.Add(b.Limit)
		}
		output.Budgets = append(output.Budgets, budgetOutput)
	}
	output.Leftover = service.MaxZero(data.Income().Sub(output.TotalAllocated))

	return output, nil
}

// Package insight contains read-only reporting use cases over the budget data.
package insight

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/session"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/service"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// GetAllocationSummaryInput represents the input for the allocation summary.
type GetAllocationSummaryInput struct {
	OwnerID string
	Month   string // Optional, defaults to the current month
}

// GetAllocationSummaryOutput represents the output of the allocation summary.
type GetAllocationSummaryOutput struct {
	Summary      valueobject.AllocationSummary
	NeedsWarning *service.NeedsWarning
}

// GetAllocationSummaryUseCase reports how the monthly income is split across budgets.
type GetAllocationSummaryUseCase struct {
	workspace *session.Workspace
	policy    valueobject.AllocationPolicy
}

// NewGetAllocationSummaryUseCase creates a new GetAllocationSummaryUseCase instance.
func NewGetAllocationSummaryUseCase(
	workspace *session.Workspace,
	policy valueobject.AllocationPolicy,
) *GetAllocationSummaryUseCase {
	return &GetAllocationSummaryUseCase{
		workspace: workspace,
		policy:    policy,
	}
}

// Execute sums the non-savings budget limits of the month against the income.
func (uc *GetAllocationSummaryUseCase) Execute(
	ctx context.Context,
	input GetAllocationSummaryInput,
) (*GetAllocationSummaryOutput, error) {
	month, err := resolveMonth(uc.workspace, input.Month)
	if err != nil {
		return nil, err
	}

	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if !data.HasIncome() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightNoIncome,
			"set a monthly income to see the allocation summary",
			domainerror.ErrIncomeRequired,
		)
	}

	income := data.Income()
	allocated := service.AllocatedExcludingSavings(data.Budgets, month)
	tree := service.NewCategoryTree(data.Categories)

	return &GetAllocationSummaryOutput{
		Summary: valueobject.AllocationSummary{
			Month:                    month,
			MonthlyIncome:            income,
			TotalAllocated:           allocated,
			TotalAllocatedPercentage: service.RoundPercent(service.ShareOf(allocated, income)),
			Leftover:                 service.MaxZero(income.Sub(allocated)),
			OverAllocated:            allocated.GreaterThan(income),
		},
		NeedsWarning: service.EvaluateNeeds(uc.policy, data.Budgets, tree, income, month),
	}, nil
}

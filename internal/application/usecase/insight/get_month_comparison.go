// Package insight contains read-only reporting use cases over the budget data.
package insight

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// GetMonthComparisonInput represents the input for comparing a month with the previous one.
type GetMonthComparisonInput struct {
	OwnerID string
	Month   string // Optional, defaults to the current month
}

// GetMonthComparisonOutput represents the output of the month comparison.
type GetMonthComparisonOutput struct {
	Comparison valueobject.MonthComparison
}

// GetMonthComparisonUseCase handles the month over month comparison.
type GetMonthComparisonUseCase struct {
	workspace *session.Workspace
}

// NewGetMonthComparisonUseCase creates a new GetMonthComparisonUseCase instance.
func NewGetMonthComparisonUseCase(workspace *session.Workspace) *GetMonthComparisonUseCase {
	return &GetMonthComparisonUseCase{
		workspace: workspace,
	}
}

// Execute computes income and expense totals of the month and the month before it.
func (uc *GetMonthComparisonUseCase) Execute(
	ctx context.Context,
	input GetMonthComparisonInput,
) (*GetMonthComparisonOutput, error) {
	month, err := resolveMonth(uc.workspace, input.Month)
	if err != nil {
		return nil, err
	}

	previousMonth, err := entity.PreviousMonthKey(month)
	if err != nil {
		return nil, err
	}

	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	current := monthTotals(data.Transactions, month)
	previous := monthTotals(data.Transactions, previousMonth)

	return &GetMonthComparisonOutput{
		Comparison: valueobject.MonthComparison{
			Current:              current,
			Previous:             previous,
			IncomeDelta:          current.TotalIncome.Sub(previous.TotalIncome),
			ExpensesDelta:        current.TotalExpenses.Sub(previous.TotalExpenses),
			IncomeChangePercent:  changePercent(current.TotalIncome, previous.TotalIncome),
			ExpenseChangePercent: changePercent(current.TotalExpenses, previous.TotalExpenses),
		},
	}, nil
}

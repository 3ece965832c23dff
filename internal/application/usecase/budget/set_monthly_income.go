// Package budget contains budget and income use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/application/usecase/transaction"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// incomeDescription is the description of the income transaction logged when income is set.
const incomeDescription = "Monthly income"

// SetMonthlyIncomeInput represents the input for setting the monthly income.
type SetMonthlyIncomeInput struct {
	OwnerID        string
	Amount         decimal.Decimal
	SourceCategory string // Optional, defaults to the income category
}

// SetMonthlyIncomeOutput represents the output of setting the monthly income.
type SetMonthlyIncomeOutput struct {
	MonthlyIncome decimal.Decimal
	Transaction   *entity.Transaction
	Budgets       []*entity.Budget
}

// SetMonthlyIncomeUseCase handles monthly income updates.
type SetMonthlyIncomeUseCase struct {
	workspace *session.Workspace
}

// NewSetMonthlyIncomeUseCase creates a new SetMonthlyIncomeUseCase instance.
func NewSetMonthlyIncomeUseCase(workspace *session.Workspace) *SetMonthlyIncomeUseCase {
	return &SetMonthlyIncomeUseCase{
		workspace: workspace,
	}
}

// Execute logs an income transaction, stores the new income and rescales percentage budgets.
func (uc *SetMonthlyIncomeUseCase) Execute(ctx context.Context, input SetMonthlyIncomeInput) (*SetMonthlyIncomeOutput, error) {
	// checked after rounding so sub-cent amounts cannot store a zero income
	amount := service.Round2(input.Amount)
	if !amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"income must be at least 0.01",
			domainerror.ErrInvalidAmount,
		)
	}

	source := input.SourceCategory
	if source == "" {
		source = entity.IncomeCategoryID
	}

	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	category := data.FindCategory(source)
	if category == nil || !category.AcceptsIncome() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidIncomeSource,
			fmt.Sprintf("category %q is not an income source", source),
			domainerror.ErrInvalidCategory,
		)
	}

	income := entity.NewTransaction(
		entity.TransactionTypeIncome,
		amount,
		category.ID,
		uc.workspace.Clock().Now(),
		incomeDescription,
		"",
	)

	next := data.Clone()
	next.Transactions = append([]*entity.Transaction{income}, next.Transactions...)
	transaction.SortByDateDesc(next.Transactions)
	next.MonthlyIncome = &amount

	for _, b := range next.Budgets {
		if !b.IsSavings() && b.IsPercentageBased() {
			b.Limit = service.PercentOf(*b.Percentage, amount)
		}
	}

	uc.workspace.Recompute(next)
	if err := uc.workspace.Commit(ctx, input.OwnerID, next); err != nil {
		return nil, err
	}

	return &SetMonthlyIncomeOutput{
		MonthlyIncome: amount,
		Transaction:   income.Clone(),
		Budgets:       next.Budgets,
	}, nil
}

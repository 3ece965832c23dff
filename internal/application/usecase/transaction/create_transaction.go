// Package transaction contains transaction-related use cases.
package transaction

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

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for logging a transaction.
type CreateTransactionInput struct {
	OwnerID     string
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Category    string
	Date        time.Time // Optional, defaults to now
	Description string
	ReceiptRef  string
}

// CreateTransactionOutput represents the output of logging a transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
	Budgets     []*entity.Budget
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	workspace *session.Workspace
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(workspace *session.Workspace) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		workspace: workspace,
	}
}

// Execute validates and logs the transaction, then recalculates budgets.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	amount := service.Round2(input.Amount)
	if !amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be at least 0.01",
			domainerror.ErrInvalidAmount,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrValidation,
		)
	}

	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	category := data.FindCategory(input.Category)
	if category == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionCategory,
			fmt.Sprintf("category %q does not exist", input.Category),
			domainerror.ErrCategoryNotFound,
		)
	}

	month := uc.workspace.CurrentMonth()
	if input.Type == entity.TransactionTypeExpense {
		if category.AcceptsIncome() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionCategory,
				"expenses cannot be logged against an income category",
				domainerror.ErrInvalidCategory,
			)
		}
		if category.ID != entity.SavingsCategoryID && data.FindBudget(category.ID, month) == nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeBudgetRequired,
				fmt.Sprintf("set a budget for %s in %s before logging expenses", category.Label, month),
				domainerror.ErrBudgetRequired,
			)
		}
	} else if !category.AcceptsIncome() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionCategory,
			"income must be logged against an income source",
			domainerror.ErrInvalidCategory,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = uc.workspace.Clock().Now()
	}

	transaction := entity.NewTransaction(
		input.Type,
		amount,
		category.ID,
		date,
		strings.TrimSpace(input.Description),
		input.ReceiptRef,
	)

	next := data.Clone()
	next.Transactions = append([]*entity.Transaction{transaction}, next.Transactions...)
	SortByDateDesc(next.Transactions)

	uc.workspace.Recompute(next)
	if err := uc.workspace.Commit(ctx, input.OwnerID, next); err != nil {
		return nil, err
	}

	return &CreateTransactionOutput{
		Transaction: transaction.Clone(),
		Budgets:     next.Budgets,
	}, nil
}

// SortByDateDesc orders transactions newest first, keeping insertion order for equal dates.
func SortByDateDesc(transactions []*entity.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}

// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	OwnerID  string
	Month    string // Optional, YYYY-MM
	Category string // Optional, includes subcategories
	Type     *entity.TransactionType
	Search   string
	Page     int
	Limit    int
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	*entity.Transaction
	CategoryLabel string
	CategoryIcon  entity.Icon
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// TotalsOutput represents aggregated totals of every matching transaction.
type TotalsOutput struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Pagination   PaginationOutput
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	workspace *session.Workspace
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(workspace *session.Workspace) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		workspace: workspace,
	}
}

// Execute performs the transaction listing, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Month != "" && !entity.IsValidMonthKey(input.Month) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDateFilter,
			"month must use the YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}

	// Set default pagination values
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	tree := service.NewCategoryTree(data.Categories)

	// Filtering by a parent category includes its subcategories
	var categories map[string]bool
	if input.Category != "" {
		categories = map[string]bool{input.Category: true}
		for _, d := range tree.Descendants(input.Category) {
			categories[d.ID] = true
		}
	}
	search := strings.ToLower(strings.TrimSpace(input.Search))

	totals := TotalsOutput{IncomeTotal: decimal.Zero, ExpenseTotal: decimal.Zero}
	matched := make([]*entity.Transaction, 0)
	for _, t := range data.Transactions {
		if input.Month != "" && t.Month() != input.Month {
			continue
		}
		if categories != nil && !categories[t.Category] {
			continue
		}
		if input.Type != nil && t.Type != *input.Type {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		matched = append(matched, t)
		if t.IsExpense() {
			totals.ExpenseTotal = totals.ExpenseTotal.Add(t.Amount)
		} else {
			totals.IncomeTotal = totals.IncomeTotal.Add(t.Amount)
		}
	}
	totals.NetTotal = totals.IncomeTotal.Sub(totals.ExpenseTotal)
	SortByDateDesc(matched)

	total := len(matched)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, 0, end-start),
		Pagination: PaginationOutput{
			Page:       page,
			Limit:      limit,
			Total:      int64(total),
			TotalPages: (total + limit - 1) / limit,
		},
		Totals: totals,
	}

	for _, t := range matched[start:end] {
		txnOutput := &TransactionOutput{
			Transaction:   t.Clone(),
			CategoryLabel: tree.Label(t.Category),
			CategoryIcon:  entity.DefaultCategoryIcon,
		}
		if c := tree.Get(t.Category); c != nil {
			txnOutput.CategoryIcon = c.Icon
		}
		output.Transactions = append(output.Transactions, txnOutput)
	}

	return output, nil
}

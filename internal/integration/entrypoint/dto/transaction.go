// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/usecase/transaction"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=expense income"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" binding:"required"`
	Date        string          `json:"date,omitempty"`
	Description string          `json:"description,omitempty"`
	Receipt     string          `json:"receipt,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label,omitempty"`
	CategoryIcon  string `json:"category_icon,omitempty"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	Receipt       string `json:"receipt,omitempty"`
}

// CreateTransactionResponse represents the response for transaction creation.
type CreateTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Budgets     []BudgetResponse    `json:"budgets"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionTotalsResponse represents totals over the filtered transactions.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
	Totals       TransactionTotalsResponse     `json:"totals"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      FormatMoney(t.Amount),
		Category:    t.Category,
		Date:        t.Date.UTC().Format(time.RFC3339),
		Description: t.Description,
		Receipt:     t.ReceiptRef,
	}
}

// ToTransactionListResponse converts the output of the list transactions use case.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		response := ToTransactionResponse(t.Transaction)
		response.CategoryLabel = t.CategoryLabel
		response.CategoryIcon = string(t.CategoryIcon)
		transactions[i] = response
	}
	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
		Totals: TransactionTotalsResponse{
			IncomeTotal:  FormatMoney(output.Totals.IncomeTotal),
			ExpenseTotal: FormatMoney(output.Totals.ExpenseTotal),
			NetTotal:     FormatMoney(output.Totals.NetTotal),
		},
	}
}

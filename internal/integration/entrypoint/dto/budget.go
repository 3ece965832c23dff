// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/usecase/budget"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// SetIncomeRequest represents the request body for setting the monthly income.
type SetIncomeRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	SourceCategory string          `json:"source_category,omitempty"`
}

// SaveBudgetRequest represents the request body for creating or replacing a budget.
// Exactly one of Limit and Percentage is expected.
type SaveBudgetRequest struct {
	Category   string           `json:"category" binding:"required"`
	Limit      *decimal.Decimal `json:"limit,omitempty"`
	Percentage *float64         `json:"percentage,omitempty"`
	Month      string           `json:"month,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID                string   `json:"id"`
	Category          string   `json:"category"`
	CategoryLabel     string   `json:"category_label,omitempty"`
	CategoryIcon      string   `json:"category_icon,omitempty"`
	Limit             string   `json:"limit"`
	Percentage        *float64 `json:"percentage,omitempty"`
	DisplayPercentage *float64 `json:"display_percentage,omitempty"`
	Spent             string   `json:"spent"`
	Remaining         string   `json:"remaining"`
	Month             string   `json:"month"`
	IsSavings         bool     `json:"is_savings"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Month          string           `json:"month"`
	MonthlyIncome  *string          `json:"monthly_income"`
	Budgets        []BudgetResponse `json:"budgets"`
	TotalAllocated string           `json:"total_allocated"`
	Leftover       string           `json:"leftover"`
}

// NeedsWarningResponse reports that essential categories take too much of the income.
type NeedsWarningResponse struct {
	TotalPercentage float64  `json:"total_percentage"`
	Threshold       float64  `json:"threshold"`
	Categories      []string `json:"categories"`
}

// SaveBudgetResponse represents the response for saving a budget.
type SaveBudgetResponse struct {
	Budget       BudgetResponse        `json:"budget"`
	Replaced     bool                  `json:"replaced"`
	NeedsWarning *NeedsWarningResponse `json:"needs_warning,omitempty"`
}

// IncomeResponse represents the response for setting the monthly income.
type IncomeResponse struct {
	MonthlyIncome string              `json:"monthly_income"`
	Transaction   TransactionResponse `json:"transaction"`
	Budgets       []BudgetResponse    `json:"budgets"`
}

// RecalculateResponse represents the response of an on-demand recalculation.
type RecalculateResponse struct {
	Changed bool             `json:"changed"`
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID,
		Category:   b.Category,
		Limit:      FormatMoney(b.Limit),
		Percentage: b.Percentage,
		Spent:      FormatMoney(b.Spent),
		Remaining:  FormatMoney(b.Remaining()),
		Month:      b.Month,
		IsSavings:  b.IsSavings(),
	}
}

// ToBudgetResponses converts a list of budgets.
func ToBudgetResponses(budgets []*entity.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(b)
	}
	return responses
}

// ToBudgetListResponse converts the output of the list budgets use case.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]BudgetResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		response := ToBudgetResponse(b.Budget)
		response.CategoryLabel = b.CategoryLabel
		response.CategoryIcon = string(b.CategoryIcon)
		response.DisplayPercentage = b.DisplayPercentage
		response.Remaining = FormatMoney(b.Remaining)
		budgets[i] = response
	}
	return BudgetListResponse{
		Month:          output.Month,
		MonthlyIncome:  FormatOptionalMoney(output.MonthlyIncome),
		Budgets:        budgets,
		TotalAllocated: FormatMoney(output.TotalAllocated),
		Leftover:       FormatMoney(output.Leftover),
	}
}

// ToNeedsWarningResponse converts a needs warning, keeping nil as nil.
func ToNeedsWarningResponse(warning *service.NeedsWarning) *NeedsWarningResponse {
	if warning == nil {
		return nil
	}
	return &NeedsWarningResponse{
		TotalPercentage: warning.TotalPercentage,
		Threshold:       warning.Threshold,
		Categories:      warning.Categories,
	}
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-tracker/planner/internal/application/usecase/insight"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// MonthTotalsResponse represents income and expense totals of a month.
type MonthTotalsResponse struct {
	Month         string `json:"month"`
	DisplayName   string `json:"display_name"`
	TotalIncome   string `json:"total_income"`
	TotalExpenses string `json:"total_expenses"`
	NetBalance    string `json:"net_balance"`
}

// MonthComparisonResponse represents the comparison of a month with the previous one.
type MonthComparisonResponse struct {
	Current              MonthTotalsResponse `json:"current"`
	Previous             MonthTotalsResponse `json:"previous"`
	IncomeDelta          string              `json:"income_delta"`
	ExpensesDelta        string              `json:"expenses_delta"`
	IncomeChangePercent  *float64            `json:"income_change_percent"`
	ExpenseChangePercent *float64            `json:"expense_change_percent"`
}

// CategoryBreakdownItemResponse represents the spending of one category.
type CategoryBreakdownItemResponse struct {
	CategoryID       string  `json:"category_id"`
	CategoryLabel    string  `json:"category_label"`
	Amount           string  `json:"amount"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transaction_count"`
}

// CategoryBreakdownResponse represents expenses grouped by category.
type CategoryBreakdownResponse struct {
	Month         string                          `json:"month"`
	DisplayName   string                          `json:"display_name"`
	TotalExpenses string                          `json:"total_expenses"`
	Categories    []CategoryBreakdownItemResponse `json:"categories"`
}

// BudgetVsActualItemResponse compares one budget with what was spent.
type BudgetVsActualItemResponse struct {
	BudgetID      string  `json:"budget_id"`
	CategoryID    string  `json:"category_id"`
	CategoryLabel string  `json:"category_label"`
	Limit         string  `json:"limit"`
	Spent         string  `json:"spent"`
	Remaining     string  `json:"remaining"`
	PercentUsed   float64 `json:"percent_used"`
	Status        string  `json:"status"`
	IsOverBudget  bool    `json:"is_over_budget"`
}

// BudgetVsActualResponse represents the budget versus actual report of a month.
type BudgetVsActualResponse struct {
	Month      string                       `json:"month"`
	TotalLimit string                       `json:"total_limit"`
	TotalSpent string                       `json:"total_spent"`
	OverBudget int                          `json:"over_budget"`
	Items      []BudgetVsActualItemResponse `json:"items"`
}

// AllocationSummaryResponse represents how much of the income is allocated.
type AllocationSummaryResponse struct {
	Month                    string                `json:"month"`
	MonthlyIncome            string                `json:"monthly_income"`
	TotalAllocated           string                `json:"total_allocated"`
	TotalAllocatedPercentage float64               `json:"total_allocated_percentage"`
	Leftover                 string                `json:"leftover"`
	OverAllocated            bool                  `json:"over_allocated"`
	NeedsWarning             *NeedsWarningResponse `json:"needs_warning,omitempty"`
}

func toMonthTotalsResponse(t valueobject.MonthTotals) MonthTotalsResponse {
	return MonthTotalsResponse{
		Month:         t.Month,
		DisplayName:   t.DisplayName,
		TotalIncome:   FormatMoney(t.TotalIncome),
		TotalExpenses: FormatMoney(t.TotalExpenses),
		NetBalance:    FormatMoney(t.NetBalance),
	}
}

// ToMonthComparisonResponse converts a month comparison.
func ToMonthComparisonResponse(c valueobject.MonthComparison) MonthComparisonResponse {
	return MonthComparisonResponse{
		Current:              toMonthTotalsResponse(c.Current),
		Previous:             toMonthTotalsResponse(c.Previous),
		IncomeDelta:          FormatMoney(c.IncomeDelta),
		ExpensesDelta:        FormatMoney(c.ExpensesDelta),
		IncomeChangePercent:  c.IncomeChangePercent,
		ExpenseChangePercent: c.ExpenseChangePercent,
	}
}

// ToCategoryBreakdownResponse converts the output of the category breakdown use case.
func ToCategoryBreakdownResponse(output *insight.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	items := make([]CategoryBreakdownItemResponse, len(output.Categories))
	for i, item := range output.Categories {
		items[i] = CategoryBreakdownItemResponse{
			CategoryID:       item.CategoryID,
			CategoryLabel:    item.CategoryLabel,
			Amount:           FormatMoney(item.Amount),
			Percentage:       item.Percentage,
			TransactionCount: item.TransactionCount,
		}
	}
	return CategoryBreakdownResponse{
		Month:         output.Month,
		DisplayName:   output.DisplayName,
		TotalExpenses: FormatMoney(output.TotalExpenses),
		Categories:    items,
	}
}

// ToBudgetVsActualResponse converts the output of the budget versus actual use case.
func ToBudgetVsActualResponse(output *insight.GetBudgetVsActualOutput) BudgetVsActualResponse {
	items := make([]BudgetVsActualItemResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = BudgetVsActualItemResponse{
			BudgetID:      item.BudgetID,
			CategoryID:    item.CategoryID,
			CategoryLabel: item.CategoryLabel,
			Limit:         FormatMoney(item.Limit),
			Spent:         FormatMoney(item.Spent),
			Remaining:     FormatMoney(item.Remaining),
			PercentUsed:   item.PercentUsed,
			Status:        string(item.Status),
			IsOverBudget:  item.IsOverBudget,
		}
	}
	return BudgetVsActualResponse{
		Month:      output.Month,
		TotalLimit: FormatMoney(output.TotalLimit),
		TotalSpent: FormatMoney(output.TotalSpent),
		OverBudget: output.OverBudget,
		Items:      items,
	}
}

// ToAllocationSummaryResponse converts the output of the allocation summary use case.
func ToAllocationSummaryResponse(output *insight.GetAllocationSummaryOutput) AllocationSummaryResponse {
	s := output.Summary
	return AllocationSummaryResponse{
		Month:                    s.Month,
		MonthlyIncome:            FormatMoney(s.MonthlyIncome),
		TotalAllocated:           FormatMoney(s.TotalAllocated),
		TotalAllocatedPercentage: s.TotalAllocatedPercentage,
		Leftover:                 FormatMoney(s.Leftover),
		OverAllocated:            s.OverAllocated,
		NeedsWarning:             ToNeedsWarningResponse(output.NeedsWarning),
	}
}

// Package valueobject contains domain value objects for the budget planner.
package valueobject

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// BudgetStatus represents how much of a budget has been used.
type BudgetStatus string

const (
	BudgetStatusOnTrack BudgetStatus = "on_track"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusOver    BudgetStatus = "over_budget"
)

// MonthTotals holds income and expense totals for one month.
type MonthTotals struct {
	Month         string
	DisplayName   string // e.g., "Nov/2024"
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetBalance    decimal.Decimal
}

// MonthComparison compares a month with the month before it.
type MonthComparison struct {
	Current              MonthTotals
	Previous             MonthTotals
	IncomeDelta          decimal.Decimal
	ExpensesDelta        decimal.Decimal
	IncomeChangePercent  *float64 // nil when the previous month had no income
	ExpenseChangePercent *float64
}

// CategoryBreakdownItem represents the expense share of a single category.
type CategoryBreakdownItem struct {
	CategoryID       string
	CategoryLabel    string
	Amount           decimal.Decimal
	Percentage       float64
	TransactionCount int
}

// BudgetVsActualItem compares a budget limit with what was spent.
type BudgetVsActualItem struct {
	BudgetID      string
	CategoryID    string
	CategoryLabel string
	Limit         decimal.Decimal
	Spent         decimal.Decimal
	Remaining     decimal.Decimal
	PercentUsed   float64
	Status        BudgetStatus
	IsOverBudget  bool
}

// AllocationSummary reports how much of the income is allocated to budgets.
type AllocationSummary struct {
	Month                    string
	MonthlyIncome            decimal.Decimal
	TotalAllocated           decimal.Decimal
	TotalAllocatedPercentage float64
	Leftover                 decimal.Decimal
	OverAllocated            bool
}

// CalculateBudgetStatus determines the status of a budget based on its usage ratio.
func CalculateBudgetStatus(policy AllocationPolicy, limit, spent decimal.Decimal) BudgetStatus {
	if spent.GreaterThan(limit) {
		return BudgetStatusOver
	}
	if limit.IsZero() {
		return BudgetStatusOnTrack
	}
	if spent.Div(limit).GreaterThanOrEqual(policy.WarningUsage) {
		return BudgetStatusWarning
	}
	return BudgetStatusOnTrack
}

// FormatMonthDisplay formats a month key (YYYY-MM) for display (e.g., "Nov/2024").
func FormatMonthDisplay(month string) string {
	if len(month) != 7 || month[4] != '-' {
		return month
	}

	monthNames := []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}

	year := month[:4]
	m, err := strconv.Atoi(month[5:7])
	if err != nil || m < 1 || m > 12 {
		return month
	}

	return monthNames[m-1] + "/" + year
}

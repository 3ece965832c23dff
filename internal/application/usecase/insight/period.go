// Package insight contains read-only reporting use cases over the budget data.
package insight

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/service"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// resolveMonth returns the requested month key, or the current month when empty.
func resolveMonth(workspace *session.Workspace, month string) (string, error) {
	if month == "" {
		return workspace.CurrentMonth(), nil
	}
	if !entity.IsValidMonthKey(month) {
		return "", domainerror.NewInsightError(
			domainerror.ErrCodeInsightInvalidMonth,
			"month must use the YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}
	return month, nil
}

// monthTotals sums income and expenses of the transactions dated in a month.
func monthTotals(transactions []*entity.Transaction, month string) valueobject.MonthTotals {
	totals := valueobject.MonthTotals{
		Month:         month,
		DisplayName:   valueobject.FormatMonthDisplay(month),
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, t := range transactions {
		if t.Month() != month {
			continue
		}
		if t.IsExpense() {
			totals.TotalExpenses = totals.TotalExpenses.Add(t.Amount)
		} else {
			totals.TotalIncome = totals.TotalIncome.Add(t.Amount)
		}
	}

	totals.TotalIncome = service.Round2(totals.TotalIncome)
	totals.TotalExpenses = service.Round2(totals.TotalExpenses)
	totals.NetBalance = totals.TotalIncome.Sub(totals.TotalExpenses)
	return totals
}

// changePercent returns the relative change from previous to current, one decimal.
// Returns nil when there is no previous value to compare with.
func changePercent(current, previous decimal.Decimal) *float64 {
	if previous.IsZero() {
		return nil
	}
	change := service.RoundPercent(service.ShareOf(current.Sub(previous), previous))
	return &change
}

// spentIn sums the expenses of a category in a month.
func spentIn(transactions []*entity.Transaction, category, month string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.IsExpense() && t.Category == category && t.Month() == month {
			total = total.Add(t.Amount)
		}
	}
	return service.Round2(total)
}

package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

const testMonth = "2024-05"

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func decPtr(value string) *decimal.Decimal {
	d := dec(value)
	return &d
}

func pct(value float64) *float64 {
	return &value
}

func strPtr(value string) *string {
	return &value
}

func expense(category, amount string, date time.Time) *entity.Transaction {
	return entity.NewTransaction(entity.TransactionTypeExpense, dec(amount), category, date, "", "")
}

func income(category, amount string, date time.Time) *entity.Transaction {
	return entity.NewTransaction(entity.TransactionTypeIncome, dec(amount), category, date, "", "")
}

func mayDay(day int) time.Time {
	return time.Date(2024, time.May, day, 12, 0, 0, 0, time.UTC)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, dec(want).StringFixed(2), got.StringFixed(2), msgAndArgs...)
}

func findBudget(budgets []*entity.Budget, category, month string) *entity.Budget {
	for _, b := range budgets {
		if b.Category == category && b.Month == month {
			return b
		}
	}
	return nil
}

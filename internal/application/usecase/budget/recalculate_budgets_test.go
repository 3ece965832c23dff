package budget

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

func TestRecalculateBudgets_NoSecondWrite(t *testing.T) {
	f := newFixture()
	f.income(t, "2000")
	f.percentBudget(t, "groceries", 20)

	saves := f.store.SaveCount
	out, err := f.recalc.Execute(context.Background(), RecalculateBudgetsInput{OwnerID: owner})
	require.NoError(t, err)

	assert.False(t, out.Changed)
	assert.Equal(t, saves, f.store.SaveCount)
}

func TestRecalculateBudgets_RepairsStaleData(t *testing.T) {
	f := newFixture()
	income := decimal.NewFromInt(1000)
	p := 10.0

	data := entity.NewDefaultAppData()
	data.MonthlyIncome = &income
	data.Budgets = []*entity.Budget{
		// Stale limit and spent, no savings row
		entity.NewBudget("groceries", decimal.NewFromInt(5), &p, "2024-05"),
	}
	data.Transactions = []*entity.Transaction{
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(42), "groceries", now, "", ""),
	}
	f.store.Put(owner, data)

	out, err := f.recalc.Execute(context.Background(), RecalculateBudgetsInput{OwnerID: owner})
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, 1, f.store.SaveCount)

	stored := f.stored(t)
	assertLimit(t, stored, "groceries", "100")
	assertLimit(t, stored, "savings", "900")
	assert.Equal(t, "42.00", stored.FindBudget("groceries", "2024-05").Spent.StringFixed(2))

	// Converged
	out, err = f.recalc.Execute(context.Background(), RecalculateBudgetsInput{OwnerID: owner})
	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Equal(t, 1, f.store.SaveCount)
}

func TestListBudgets_DisplayPercentage(t *testing.T) {
	f := newFixture()
	f.income(t, "3000")
	limit := decimal.NewFromInt(1000)
	_, err := f.saveBudget.Execute(context.Background(), SaveBudgetInput{
		OwnerID:  owner,
		Category: "housing",
		Limit:    &limit,
	})
	require.NoError(t, err)

	out, err := f.list.Execute(context.Background(), ListBudgetsInput{OwnerID: owner})
	require.NoError(t, err)

	require.Len(t, out.Budgets, 2)
	assert.Equal(t, "housing", out.Budgets[0].Category)
	require.NotNil(t, out.Budgets[0].DisplayPercentage)
	assert.Equal(t, 33.3, *out.Budgets[0].DisplayPercentage)
	assert.Equal(t, "savings", out.Budgets[1].Category)
	assert.Equal(t, "1000.00", out.TotalAllocated.StringFixed(2))
	assert.Equal(t, "2000.00", out.Leftover.StringFixed(2))
}

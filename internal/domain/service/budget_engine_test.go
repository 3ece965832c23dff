package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

func TestRecomputeBudgets_PercentageLimitsAndSavings(t *testing.T) {
	budgets := []*entity.Budget{
		entity.NewBudget("groceries", dec("0"), pct(20), testMonth),
		entity.NewBudget("housing", dec("0"), pct(30), testMonth),
	}

	result := RecomputeBudgets(RecomputeInput{
		Budgets:       budgets,
		Categories:    entity.DefaultCategories(),
		MonthlyIncome: decPtr("2000"),
		Month:         testMonth,
	})

	require.True(t, result.Changed)
	require.Len(t, result.Budgets, 3)
	assertMoney(t, "400.00", findBudget(result.Budgets, "groceries", testMonth).Limit)
	assertMoney(t, "600.00", findBudget(result.Budgets, "housing", testMonth).Limit)

	savings := result.Budgets[2]
	assert.Equal(t, entity.SavingsCategoryID, savings.Category)
	assert.Equal(t, testMonth, savings.Month)
	assert.Nil(t, savings.Percentage)
	assertMoney(t, "1000.00", savings.Limit)
}

func TestRecomputeBudgets_SpentEqualsExpenseSum(t *testing.T) {
	budgets := []*entity.Budget{
		entity.NewBudget("groceries", dec("300"), nil, testMonth),
		entity.NewBudget("groceries", dec("300"), nil, "2024-04"),
		entity.NewBudget(entity.SavingsCategoryID, dec("0"), nil, testMonth),
	}
	transactions := []*entity.Transaction{
		expense("groceries", "50", mayDay(3)),
		expense("groceries", "25.55", mayDay(20)),
		expense("groceries", "10", time.Date(2024, time.April, 30, 23, 0, 0, 0, time.UTC)),
		expense("dining", "99", mayDay(4)),
		expense(entity.SavingsCategoryID, "120", mayDay(5)),
		income(entity.IncomeCategoryID, "2000", mayDay(1)),
	}

	result := RecomputeBudgets(RecomputeInput{
		Budgets:       budgets,
		Transactions:  transactions,
		Categories:    entity.DefaultCategories(),
		MonthlyIncome: decPtr("2000"),
		Month:         testMonth,
	})

	assertMoney(t, "75.55", findBudget(result.Budgets, "groceries", testMonth).Spent)
	assertMoney(t, "10.00", findBudget(result.Budgets, "groceries", "2024-04").Spent)
	assertMoney(t, "120.00", findBudget(result.Budgets, entity.SavingsCategoryID, testMonth).Spent)
	assertMoney(t, "1700.00", findBudget(result.Budgets, entity.SavingsCategoryID, testMonth).Limit,
		"previous month budgets must not reduce the savings of the target month")
}

func TestRecomputeBudgets_UnsetMonthFallsBackToTarget(t *testing.T) {
	legacy := entity.NewBudget("groceries", dec("100"), nil, "")

	result := RecomputeBudgets(RecomputeInput{
		Budgets:       []*entity.Budget{legacy},
		Transactions:  []*entity.Transaction{expense("groceries", "40", mayDay(2))},
		Categories:    entity.DefaultCategories(),
		MonthlyIncome: decPtr("500"),
		Month:         testMonth,
	})

	got := findBudget(result.Budgets, "groceries", "")
	require.NotNil(t, got)
	assertMoney(t, "40.00", got.Spent)
	assertMoney(t, "400.00", findBudget(result.Budgets, entity.SavingsCategoryID, testMonth).Limit)
}

func TestRecomputeBudgets_LeftoverClampedAtZero(t *testing.T) {
	budgets := []*entity.Budget{
		entity.NewBudget("housing", dec("1500"), nil, testMonth),
		entity.NewBudget("groceries", dec("0"), pct(40), testMonth),
	}

	result := RecomputeBudgets(RecomputeInput{
		Budgets:       budgets,
		Categories:    entity.DefaultCategories(),
		MonthlyIncome: decPtr("2000"),
		Month:         testMonth,
	})

	assertMoney(t, "1500.00", findBudget(result.Budgets, "housing", testMonth).Limit, "fixed limits are kept")
	assertMoney(t, "800.00", findBudget(result.Budgets, "groceries", testMonth).Limit)
	assertMoney(t, "0.00", findBudget(result.Budgets, entity.SavingsCategoryID, testMonth).Limit)
}

func TestRecomputeBudgets_SavingsPercentageIsCleared(t *testing.T) {
	savings := entity.NewBudget(entity.SavingsCategoryID, dec("5"), pct(10), testMonth)

	result := RecomputeBudgets(RecomputeInput{
		Budgets:       []*entity.Budget{savings},
		Categories:    entity.DefaultCategories(),
		MonthlyIncome: decPtr("1000"),
		Month:         testMonth,
	})

	require.Len(t, result.Budgets, 1)
	assert.Equal(t, savings.ID, result.Budgets[0].ID)
	assert.Nil(t, result.Budgets[0].Percentage)
	assertMoney(t, "1000.00", result.Budgets[0].Limit)
}

func TestRecomputeBudgets_NilIncomeDoesNotRun(t *testing.T) {
	budgets := []*entity.Budget{entity.NewBudget("groceries", dec("100"), nil, testMonth)}

	result := RecomputeBudgets(RecomputeInput{
		Budgets:      budgets,
		Transactions: []*entity.Transaction{expense("groceries", "40", mayDay(2))},
		Categories:   entity.DefaultCategories(),
		Month:        testMonth,
	})

	assert.False(t, result.Changed)
	assert.Equal(t, budgets, result.Budgets)
	assertMoney(t, "0.00", budgets[0].Spent)
}

func TestRecomputeBudgets_Idempotent(t *testing.T) {
	input := RecomputeInput{
		Budgets: []*entity.Budget{
			entity.NewBudget("transport", dec("0"), pct(12.5), testMonth),
			entity.NewBudget("groceries", dec("250"), nil, testMonth),
		},
		Transactions:  []*entity.Transaction{expense("groceries", "19.99", mayDay(9))},
		Categories:    entity.DefaultCategories(),
		MonthlyIncome: decPtr("3210.45"),
		Month:         testMonth,
	}

	first := RecomputeBudgets(input)
	require.True(t, first.Changed)

	input.Budgets = first.Budgets
	second := RecomputeBudgets(input)

	assert.False(t, second.Changed)
	assert.True(t, BudgetsEqual(first.Budgets, second.Budgets))
	assertMoney(t, "401.31", findBudget(second.Budgets, "transport", testMonth).Limit)
}

func TestRecomputeBudgets_DoesNotMutateInput(t *testing.T) {
	groceries := entity.NewBudget("groceries", dec("0"), pct(20), testMonth)

	RecomputeBudgets(RecomputeInput{
		Budgets:       []*entity.Budget{groceries},
		Transactions:  []*entity.Transaction{expense("groceries", "40", mayDay(2))},
		Categories:    entity.DefaultCategories(),
		MonthlyIncome: decPtr("2000"),
		Month:         testMonth,
	})

	assertMoney(t, "0.00", groceries.Limit)
	assertMoney(t, "0.00", groceries.Spent)
}

func TestSortBudgets(t *testing.T) {
	budgets := []*entity.Budget{
		entity.NewBudget(entity.SavingsCategoryID, dec("0"), nil, testMonth),
		entity.NewBudget("transport", dec("1"), nil, testMonth),
		entity.NewBudget("groceries", dec("1"), nil, "2024-04"),
		entity.NewBudget("unknown-id", dec("1"), nil, testMonth),
		entity.NewBudget("groceries", dec("1"), nil, testMonth),
		entity.NewBudget("bills", dec("1"), nil, testMonth),
	}

	SortBudgets(budgets, NewCategoryTree(entity.DefaultCategories()))

	got := make([]string, len(budgets))
	for i, b := range budgets {
		got[i] = b.Category + "@" + b.Month
	}
	assert.Equal(t, []string{
		"bills@2024-05",
		"groceries@2024-05",
		"groceries@2024-04",
		"transport@2024-05",
		"unknown-id@2024-05",
		"savings@2024-05",
	}, got)
}

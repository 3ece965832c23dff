package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// RecomputeInput holds everything the budget engine derives budgets from.
type RecomputeInput struct {
	Budgets       []*entity.Budget
	Transactions  []*entity.Transaction
	Categories    []*entity.Category
	MonthlyIncome *decimal.Decimal
	Month         string // target month, YYYY-MM
}

// RecomputeResult is the derived budget list and whether it differs from the input.
type RecomputeResult struct {
	Budgets []*entity.Budget
	Changed bool
}

type spentKey struct {
	category string
	month    string
}

// RecomputeBudgets derives spent, percentage limits and the savings budget of the target month.
// It never mutates its input and is idempotent: feeding its output back yields Changed=false.
// Without a configured income the input is returned unchanged.
func RecomputeBudgets(in RecomputeInput) RecomputeResult {
	if in.MonthlyIncome == nil {
		return RecomputeResult{Budgets: in.Budgets, Changed: false}
	}
	income := *in.MonthlyIncome

	spent := make(map[spentKey]decimal.Decimal)
	for _, t := range in.Transactions {
		if !t.IsExpense() {
			continue
		}
		key := spentKey{category: t.Category, month: t.Month()}
		spent[key] = spent[key].Add(t.Amount)
	}
	spentFor := func(b *entity.Budget) decimal.Decimal {
		return Round2(spent[spentKey{category: b.Category, month: b.EffectiveMonth(in.Month)}])
	}

	next := make([]*entity.Budget, 0, len(in.Budgets)+1)
	for _, b := range in.Budgets {
		clone := b.Clone()
		clone.Spent = spentFor(clone)
		if !clone.IsSavings() && clone.IsPercentageBased() {
			clone.Limit = PercentOf(*clone.Percentage, income)
		}
		next = append(next, clone)
	}

	leftover := MaxZero(income.Sub(AllocatedExcludingSavings(next, in.Month)))

	var savings *entity.Budget
	for _, b := range next {
		if b.IsSavings() && b.EffectiveMonth(in.Month) == in.Month {
			savings = b
			break
		}
	}
	if savings == nil {
		savings = entity.NewBudget(entity.SavingsCategoryID, leftover, nil, in.Month)
		next = append(next, savings)
	}
	savings.Limit = leftover
	savings.Percentage = nil
	savings.Spent = spentFor(savings)

	SortBudgets(next, NewCategoryTree(in.Categories))

	return RecomputeResult{Budgets: next, Changed: !BudgetsEqual(in.Budgets, next)}
}

// AllocatedExcludingSavings sums the limits of the non-savings budgets of a month.
func AllocatedExcludingSavings(budgets []*entity.Budget, month string) decimal.Decimal {
	total := decimal.Zero
	for _, b := range budgets {
		if b.IsSavings() || b.EffectiveMonth(month) != month {
			continue
		}
		total = total.Add(b.Limit)
	}
	return total
}

// SavingsLimit returns the limit of the savings budget of a month, or zero when absent.
func SavingsLimit(budgets []*entity.Budget, month string) decimal.Decimal {
	for _, b := range budgets {
		if b.IsSavings() && b.EffectiveMonth(month) == month {
			return b.Limit
		}
	}
	return decimal.Zero
}

// SortBudgets orders budgets with savings last, the rest by category label
// (case-insensitive), ties broken by month descending.
func SortBudgets(budgets []*entity.Budget, tree *CategoryTree) {
	sort.SliceStable(budgets, func(i, j int) bool {
		a, b := budgets[i], budgets[j]
		if a.IsSavings() != b.IsSavings() {
			return !a.IsSavings()
		}
		la, lb := strings.ToLower(tree.Label(a.Category)), strings.ToLower(tree.Label(b.Category))
		if la != lb {
			return la < lb
		}
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		return a.Category < b.Category
	})
}

// BudgetsEqual reports whether two budget lists are equal field by field, in order.
func BudgetsEqual(a, b []*entity.Budget) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Package insight contains read-only reporting use cases over the budget data.
package insight

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/service"
	"github.com/finance-tracker/planner/internal/domain/valueobject"
)

// GetCategoryBreakdownInput represents the input for getting category breakdown.
type GetCategoryBreakdownInput struct {
	OwnerID string
	Month   string // Optional, defaults to the current month
	RollUp  bool   // Aggregate subcategories into their top-level category
}

// GetCategoryBreakdownOutput represents the output of getting category breakdown.
type GetCategoryBreakdownOutput struct {
	Month         string
	DisplayName   string
	TotalExpenses decimal.Decimal
	Categories    []valueobject.CategoryBreakdownItem
}

// GetCategoryBreakdownUseCase handles getting spending breakdown by category.
type GetCategoryBreakdownUseCase struct {
	workspace *session.Workspace
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(workspace *session.Workspace) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		workspace: workspace,
	}
}

// Execute retrieves spending breakdown by category for the given month.
func (uc *GetCategoryBreakdownUseCase) Execute(
	ctx context.Context,
	input GetCategoryBreakdownInput,
) (*GetCategoryBreakdownOutput, error) {
	month, err := resolveMonth(uc.workspace, input.Month)
	if err != nil {
		return nil, err
	}

	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	tree := service.NewCategoryTree(data.Categories)

	// Group expenses by category
	items := make(map[string]*valueobject.CategoryBreakdownItem)
	totalExpenses := decimal.Zero
	for _, t := range data.Transactions {
		if !t.IsExpense() || t.Month() != month {
			continue
		}

		categoryID := t.Category
		if input.RollUp {
			if ancestors := tree.Ancestors(categoryID); len(ancestors) > 0 {
				categoryID = ancestors[len(ancestors)-1].ID
			}
		}

		item, ok := items[categoryID]
		if !ok {
			item = &valueobject.CategoryBreakdownItem{
				CategoryID:    categoryID,
				CategoryLabel: tree.Label(categoryID),
				Amount:        decimal.Zero,
			}
			items[categoryID] = item
		}
		item.Amount = item.Amount.Add(t.Amount)
		item.TransactionCount++
		totalExpenses = totalExpenses.Add(t.Amount)
	}

	categories := make([]valueobject.CategoryBreakdownItem, 0, len(items))
	for _, item := range items {
		item.Amount = service.Round2(item.Amount)
		item.Percentage = service.RoundPercent(service.ShareOf(item.Amount, totalExpenses))
		categories = append(categories, *item)
	}

	// Largest first, ties by label
	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Amount.Equal(categories[j].Amount) {
			return categories[i].Amount.GreaterThan(categories[j].Amount)
		}
		return categories[i].CategoryLabel < categories[j].CategoryLabel
	})

	return &GetCategoryBreakdownOutput{
		Month:         month,
		DisplayName:   valueobject.FormatMonthDisplay(month),
		TotalExpenses: service.Round2(totalExpenses),
		Categories:    categories,
	}, nil
}

// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	OwnerID        string
	ParentID       *string // Optional, lists only the direct children ("" lists the roots)
	SelectableOnly bool    // Only categories an expense or budget may target
	IncomeOnly     bool    // Only categories income may be logged against
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// CategoryOutput represents a single category with its position in the tree.
type CategoryOutput struct {
	*entity.Category
	Depth        int
	HasChildren  bool
	IsSelectable bool
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	workspace *session.Workspace
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(workspace *session.Workspace) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		workspace: workspace,
	}
}

// Execute lists categories in tree order, parents before their children.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	tree := service.NewCategoryTree(data.Categories)
	selectable := make(map[string]bool)
	for _, c := range tree.SelectableExpenseCategories() {
		selectable[c.ID] = true
	}

	var ordered []*entity.Category
	switch {
	case input.SelectableOnly:
		ordered = tree.SelectableExpenseCategories()
	case input.IncomeOnly:
		ordered = tree.IncomeSources()
	case input.ParentID != nil:
		ordered = tree.Children(*input.ParentID)
	default:
		ordered = walk(tree, "", map[string]bool{})
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, len(ordered)),
	}
	for i, c := range ordered {
		output.Categories[i] = &CategoryOutput{
			Category:     c.Clone(),
			Depth:        len(tree.Ancestors(c.ID)),
			HasChildren:  tree.HasChildren(c.ID),
			IsSelectable: selectable[c.ID],
		}
	}

	return output, nil
}

// walk returns the subtree below parentID depth first.
func walk(tree *service.CategoryTree, parentID string, visited map[string]bool) []*entity.Category {
	var out []*entity.Category
	for _, child := range tree.Children(parentID) {
		if visited[child.ID] {
			continue
		}
		visited[child.ID] = true
		out = append(out, child)
		out = append(out, walk(tree, child.ID, visited)...)
	}
	return out
}

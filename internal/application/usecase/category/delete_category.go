// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	OwnerID string
	ID      string
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	workspace *session.Workspace
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(workspace *session.Workspace) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		workspace: workspace,
	}
}

// Execute deletes the category once every guard passes. Nothing is written when a guard fails.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return err
	}

	category := data.FindCategory(input.ID)
	if category == nil {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			fmt.Sprintf("category %q does not exist", input.ID),
			domainerror.ErrCategoryNotFound,
		)
	}

	if category.IsProtected() || !category.IsDeletable {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeNotDeletable,
			fmt.Sprintf("category %q cannot be deleted", category.Label),
			domainerror.ErrNotDeletable,
		)
	}

	if service.NewCategoryTree(data.Categories).HasChildren(category.ID) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeHasChildren,
			fmt.Sprintf("category %q has subcategories", category.Label),
			domainerror.ErrHasChildren,
		)
	}

	if isReferenced(data, category.ID) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInUse,
			fmt.Sprintf("category %q is used by transactions or budgets", category.Label),
			domainerror.ErrInUse,
		)
	}

	next := data.Clone()
	remaining := make([]*entity.Category, 0, len(next.Categories)-1)
	for _, c := range next.Categories {
		if c.ID != category.ID {
			remaining = append(remaining, c)
		}
	}
	next.Categories = remaining

	uc.workspace.Recompute(next)
	return uc.workspace.Commit(ctx, input.OwnerID, next)
}

func isReferenced(data *entity.AppData, categoryID string) bool {
	for _, t := range data.Transactions {
		if t.Category == categoryID {
			return true
		}
	}
	for _, b := range data.Budgets {
		if b.Category == categoryID {
			return true
		}
	}
	return false
}

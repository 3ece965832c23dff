// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// ListParentOptionsInput represents the input for listing the parents a category may be moved under.
type ListParentOptionsInput struct {
	OwnerID   string
	ExcludeID string // The category being edited; empty for a new category
}

// ListParentOptionsOutput represents the output of listing parent options.
type ListParentOptionsOutput struct {
	Categories []*entity.Category
}

// ListParentOptionsUseCase lists valid parent categories.
type ListParentOptionsUseCase struct {
	workspace *session.Workspace
}

// NewListParentOptionsUseCase creates a new ListParentOptionsUseCase instance.
func NewListParentOptionsUseCase(workspace *session.Workspace) *ListParentOptionsUseCase {
	return &ListParentOptionsUseCase{
		workspace: workspace,
	}
}

// Execute lists every category except ExcludeID and its descendants.
func (uc *ListParentOptionsUseCase) Execute(ctx context.Context, input ListParentOptionsInput) (*ListParentOptionsOutput, error) {
	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	parents := service.NewCategoryTree(data.Categories).PotentialParents(input.ExcludeID)
	output := &ListParentOptionsOutput{
		Categories: make([]*entity.Category, len(parents)),
	}
	for i, c := range parents {
		output.Categories[i] = c.Clone()
	}
	return output, nil
}

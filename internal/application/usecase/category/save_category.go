// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/finance-tracker/planner/internal/application/session"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/service"
)

// MaxCategoryLabelLength is the maximum allowed length for category labels.
const MaxCategoryLabelLength = 50

// SaveCategoryInput represents the input for creating or updating a category.
type SaveCategoryInput struct {
	OwnerID        string
	ID             string // Empty creates a new category
	Label          string
	Icon           string // Optional, unknown names fall back to the default icon
	ParentID       *string
	IsIncomeSource bool
}

// SaveCategoryOutput represents the output of saving a category.
type SaveCategoryOutput struct {
	Category *entity.Category
	Created  bool
}

// SaveCategoryUseCase handles category creation and updates.
type SaveCategoryUseCase struct {
	workspace *session.Workspace
}

// NewSaveCategoryUseCase creates a new SaveCategoryUseCase instance.
func NewSaveCategoryUseCase(workspace *session.Workspace) *SaveCategoryUseCase {
	return &SaveCategoryUseCase{
		workspace: workspace,
	}
}

// Execute validates the category against the current tree and saves it.
func (uc *SaveCategoryUseCase) Execute(ctx context.Context, input SaveCategoryInput) (*SaveCategoryOutput, error) {
	label := strings.TrimSpace(input.Label)
	if label == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryLabelRequired,
			"category label is required",
			domainerror.ErrCategoryLabelRequired,
		)
	}
	if len(label) > MaxCategoryLabelLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryLabelTooLong,
			fmt.Sprintf("category label must not exceed %d characters", MaxCategoryLabelLength),
			domainerror.ErrValidation,
		)
	}

	data, err := uc.workspace.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	tree := service.NewCategoryTree(data.Categories)

	// An empty parent id means a root category
	var parentID *string
	if input.ParentID != nil && *input.ParentID != "" {
		id := *input.ParentID
		parentID = &id
		if !tree.Exists(id) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeParentNotFound,
				fmt.Sprintf("parent category %q does not exist", id),
				domainerror.ErrParentNotFound,
			)
		}
	}

	next := data.Clone()
	var category *entity.Category
	created := input.ID == ""

	if created {
		category = entity.NewCategory(label, entity.Icon(input.Icon), parentID, input.IsIncomeSource)
		next.Categories = append(next.Categories, category)
	} else {
		category = next.FindCategory(input.ID)
		if category == nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				fmt.Sprintf("category %q does not exist", input.ID),
				domainerror.ErrCategoryNotFound,
			)
		}
		if parentID != nil && tree.WouldCreateCycle(category.ID, *parentID) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryCycle,
				"a category cannot be moved under itself or one of its subcategories",
				domainerror.ErrCategoryCycle,
			)
		}
		if category.IsProtected() && parentID != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategory,
				"protected categories must stay at the root",
				domainerror.ErrInvalidCategory,
			)
		}
		mergeCategory(category, label, input, parentID)
	}

	uc.workspace.Recompute(next)
	if err := uc.workspace.Commit(ctx, input.OwnerID, next); err != nil {
		return nil, err
	}

	return &SaveCategoryOutput{
		Category: category.Clone(),
		Created:  created,
	}, nil
}

// mergeCategory applies user-editable fields, preserving the protected flags.
func mergeCategory(category *entity.Category, label string, input SaveCategoryInput, parentID *string) {
	category.Label = label
	if input.Icon != "" {
		category.Icon = entity.ResolveIcon(input.Icon)
	}
	category.ParentID = parentID
	if category.ID == entity.IncomeCategoryID {
		category.IsIncomeSource = true
	} else if category.ID != entity.SavingsCategoryID {
		category.IsIncomeSource = input.IsIncomeSource
	}
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-tracker/planner/internal/application/usecase/category"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// SaveCategoryRequest represents the request body for category creation and update.
type SaveCategoryRequest struct {
	Label          string  `json:"label" binding:"required"`
	Icon           string  `json:"icon,omitempty"`
	ParentID       *string `json:"parent_id,omitempty"`
	IsIncomeSource bool    `json:"is_income_source,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	Icon           string  `json:"icon"`
	ParentID       *string `json:"parent_id,omitempty"`
	IsDefault      bool    `json:"is_default"`
	IsDeletable    bool    `json:"is_deletable"`
	IsIncomeSource bool    `json:"is_income_source"`
	Depth          int     `json:"depth"`
	HasChildren    bool    `json:"has_children"`
	IsSelectable   bool    `json:"is_selectable"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:             cat.ID,
		Label:          cat.Label,
		Icon:           string(cat.Icon),
		ParentID:       cat.ParentID,
		IsDefault:      cat.IsDefault,
		IsDeletable:    cat.IsDeletable,
		IsIncomeSource: cat.IsIncomeSource,
	}
}

// ToCategoryListResponse converts tree-ordered category outputs to a CategoryListResponse.
func ToCategoryListResponse(outputs []*category.CategoryOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(outputs))
	for i, output := range outputs {
		response := ToCategoryResponse(output.Category)
		response.Depth = output.Depth
		response.HasChildren = output.HasChildren
		response.IsSelectable = output.IsSelectable
		categories[i] = response
	}
	return CategoryListResponse{Categories: categories}
}

// ToParentOptionsResponse converts parent candidates to a CategoryListResponse.
func ToParentOptionsResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{Categories: responses}
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/category"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase          *category.ListCategoriesUseCase
	parentOptionsUseCase *category.ListParentOptionsUseCase
	saveUseCase          *category.SaveCategoryUseCase
	deleteUseCase        *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	parentOptionsUseCase *category.ListParentOptionsUseCase,
	saveUseCase *category.SaveCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:          listUseCase,
		parentOptionsUseCase: parentOptionsUseCase,
		saveUseCase:          saveUseCase,
		deleteUseCase:        deleteUseCase,
	}
}

// List handles GET /categories requests.
// Query parameters: parent_id (direct children only, empty for the roots) and selectable.
func (c *CategoryController) List(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	input := category.ListCategoriesInput{
		OwnerID:        owner,
		SelectableOnly: ctx.Query("selectable") == "true",
		IncomeOnly:     ctx.Query("income") == "true",
	}
	if parentID, exists := ctx.GetQuery("parent_id"); exists {
		input.ParentID = &parentID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// ParentOptions handles GET /categories/parent-options requests.
func (c *CategoryController) ParentOptions(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	output, err := c.parentOptionsUseCase.Execute(ctx.Request.Context(), category.ListParentOptionsInput{
		OwnerID:   owner,
		ExcludeID: ctx.Query("exclude_id"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToParentOptionsResponse(output.Categories))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	c.save(ctx, "")
}

// Update handles PUT /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	c.save(ctx, ctx.Param("id"))
}

func (c *CategoryController) save(ctx *gin.Context, id string) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var req dto.SaveCategoryRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeCategoryLabelRequired)) {
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), category.SaveCategoryInput{
		OwnerID:        owner,
		ID:             id,
		Label:          req.Label,
		Icon:           req.Icon,
		ParentID:       req.ParentID,
		IsIncomeSource: req.IsIncomeSource,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		OwnerID: owner,
		ID:      ctx.Param("id"),
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

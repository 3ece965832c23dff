// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/insight"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// InsightController handles the read-only reporting endpoints.
// Every endpoint accepts an optional month query parameter (YYYY-MM).
type InsightController struct {
	comparisonUseCase     *insight.GetMonthComparisonUseCase
	breakdownUseCase      *insight.GetCategoryBreakdownUseCase
	budgetVsActualUseCase *insight.GetBudgetVsActualUseCase
	allocationUseCase     *insight.GetAllocationSummaryUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	comparisonUseCase *insight.GetMonthComparisonUseCase,
	breakdownUseCase *insight.GetCategoryBreakdownUseCase,
	budgetVsActualUseCase *insight.GetBudgetVsActualUseCase,
	allocationUseCase *insight.GetAllocationSummaryUseCase,
) *InsightController {
	return &InsightController{
		comparisonUseCase:     comparisonUseCase,
		breakdownUseCase:      breakdownUseCase,
		budgetVsActualUseCase: budgetVsActualUseCase,
		allocationUseCase:     allocationUseCase,
	}
}

// Comparison handles GET /insights/comparison requests.
func (c *InsightController) Comparison(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	output, err := c.comparisonUseCase.Execute(ctx.Request.Context(), insight.GetMonthComparisonInput{
		OwnerID: owner,
		Month:   ctx.Query("month"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthComparisonResponse(output.Comparison))
}

// Breakdown handles GET /insights/breakdown requests.
// With roll_up=true subcategory spending is reported under its top-level category.
func (c *InsightController) Breakdown(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), insight.GetCategoryBreakdownInput{
		OwnerID: owner,
		Month:   ctx.Query("month"),
		RollUp:  ctx.Query("roll_up") == "true",
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// BudgetVsActual handles GET /insights/budget-vs-actual requests.
func (c *InsightController) BudgetVsActual(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	output, err := c.budgetVsActualUseCase.Execute(ctx.Request.Context(), insight.GetBudgetVsActualInput{
		OwnerID: owner,
		Month:   ctx.Query("month"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetVsActualResponse(output))
}

// Allocation handles GET /insights/allocation requests.
func (c *InsightController) Allocation(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	output, err := c.allocationUseCase.Execute(ctx.Request.Context(), insight.GetAllocationSummaryInput{
		OwnerID: owner,
		Month:   ctx.Query("month"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAllocationSummaryResponse(output))
}

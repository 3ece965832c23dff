// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/budget"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// BudgetController handles budget and income endpoints.
type BudgetController struct {
	listUseCase        *budget.ListBudgetsUseCase
	saveUseCase        *budget.SaveBudgetUseCase
	setIncomeUseCase   *budget.SetMonthlyIncomeUseCase
	recalculateUseCase *budget.RecalculateBudgetsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	saveUseCase *budget.SaveBudgetUseCase,
	setIncomeUseCase *budget.SetMonthlyIncomeUseCase,
	recalculateUseCase *budget.RecalculateBudgetsUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:        listUseCase,
		saveUseCase:        saveUseCase,
		setIncomeUseCase:   setIncomeUseCase,
		recalculateUseCase: recalculateUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		OwnerID: owner,
		Month:   ctx.Query("month"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output))
}

// Save handles PUT /budgets requests. A budget for the same category and month is replaced.
func (c *BudgetController) Save(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var req dto.SaveBudgetRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeBudgetCategory)) {
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), budget.SaveBudgetInput{
		OwnerID:    owner,
		Category:   req.Category,
		Limit:      req.Limit,
		Percentage: req.Percentage,
		Month:      req.Month,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	status := http.StatusCreated
	if output.Replaced {
		status = http.StatusOK
	}
	ctx.JSON(status, dto.SaveBudgetResponse{
		Budget:       dto.ToBudgetResponse(output.Budget),
		Replaced:     output.Replaced,
		NeedsWarning: dto.ToNeedsWarningResponse(output.NeedsWarning),
	})
}

// SetIncome handles PUT /budgets/income requests.
func (c *BudgetController) SetIncome(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var req dto.SetIncomeRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeInvalidIncomeAmount)) {
		return
	}

	output, err := c.setIncomeUseCase.Execute(ctx.Request.Context(), budget.SetMonthlyIncomeInput{
		OwnerID:        owner,
		Amount:         req.Amount,
		SourceCategory: req.SourceCategory,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IncomeResponse{
		MonthlyIncome: dto.FormatMoney(output.MonthlyIncome),
		Transaction:   dto.ToTransactionResponse(output.Transaction),
		Budgets:       dto.ToBudgetResponses(output.Budgets),
	})
}

// Recalculate handles POST /budgets/recalculate requests.
func (c *BudgetController) Recalculate(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	output, err := c.recalculateUseCase.Execute(ctx.Request.Context(), budget.RecalculateBudgetsInput{OwnerID: owner})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RecalculateResponse{
		Changed: output.Changed,
		Budgets: dto.ToBudgetResponses(output.Budgets),
	})
}

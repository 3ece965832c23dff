// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/goal"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// GoalController handles saving goal endpoints.
type GoalController struct {
	listUseCase       *goal.ListGoalsUseCase
	getUseCase        *goal.GetGoalUseCase
	saveUseCase       *goal.SaveGoalUseCase
	deleteUseCase     *goal.DeleteGoalUseCase
	contributeUseCase *goal.ContributeToGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	getUseCase *goal.GetGoalUseCase,
	saveUseCase *goal.SaveGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	contributeUseCase *goal.ContributeToGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		saveUseCase:       saveUseCase,
		deleteUseCase:     deleteUseCase,
		contributeUseCase: contributeUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{OwnerID: owner})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		OwnerID: owner,
		ID:      ctx.Param("id"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := dto.ToGoalResponse(output.Goal)
	response.MonthsUntilTargetDate = output.MonthsUntilTargetDate
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	c.save(ctx, "", http.StatusCreated)
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	c.save(ctx, ctx.Param("id"), http.StatusOK)
}

func (c *GoalController) save(ctx *gin.Context, id string, status int) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var req dto.SaveGoalRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeGoalNameRequired)) {
		return
	}

	var targetDate *time.Time
	if req.TargetDate != nil && *req.TargetDate != "" {
		parsed, err := dto.ParseDate(*req.TargetDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Invalid request body",
				Code:    string(domainerror.ErrCodeGoalNameRequired),
				Details: "target_date must be YYYY-MM-DD",
			})
			return
		}
		targetDate = &parsed
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), goal.SaveGoalInput{
		OwnerID:              owner,
		ID:                   id,
		Name:                 req.Name,
		TargetAmount:         req.TargetAmount,
		SavedAmount:          req.SavedAmount,
		TargetDate:           targetDate,
		PercentageAllocation: req.PercentageAllocation,
		Description:          req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(status, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		OwnerID: owner,
		ID:      ctx.Param("id"),
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Contribute handles POST /goals/:id/contribute requests.
func (c *GoalController) Contribute(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var req dto.ContributeRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeInvalidContribution)) {
		return
	}

	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), goal.ContributeToGoalInput{
		OwnerID: owner,
		ID:      ctx.Param("id"),
		Amount:  req.Amount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

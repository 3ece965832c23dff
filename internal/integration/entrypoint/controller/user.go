package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/auth"
	"github.com/finance-tracker/planner/internal/application/usecase/data"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// UserController handles user management endpoints.
type UserController struct {
	getCurrentUserUseCase *auth.GetCurrentUserUseCase
	deleteAccountUseCase  *auth.DeleteAccountUseCase
	resetDataUseCase      *data.ResetDataUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getCurrentUserUseCase *auth.GetCurrentUserUseCase,
	deleteAccountUseCase *auth.DeleteAccountUseCase,
	resetDataUseCase *data.ResetDataUseCase,
) *UserController {
	return &UserController{
		getCurrentUserUseCase: getCurrentUserUseCase,
		deleteAccountUseCase:  deleteAccountUseCase,
		resetDataUseCase:      resetDataUseCase,
	}
}

// Me handles GET /users/me.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	user, err := c.getCurrentUserUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteAccount handles DELETE /users/me. The planner dataset goes with the account.
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.DeleteAccountRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingFields)) {
		return
	}

	err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), auth.DeleteAccountInput{
		UserID:       userID,
		Password:     req.Password,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ResetData handles DELETE /users/me/data. The account itself is kept.
func (c *UserController) ResetData(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	if err := c.resetDataUseCase.Execute(ctx.Request.Context(), data.ResetDataInput{OwnerID: owner}); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

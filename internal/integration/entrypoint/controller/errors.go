// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

// currentUser returns the authenticated account, answering 401 when there is none.
func currentUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return userID, ok
}

// ownerID resolves the dataset owner of the authenticated request.
func ownerID(ctx *gin.Context) (string, bool) {
	userID, ok := currentUser(ctx)
	if !ok {
		return "", false
	}
	return userID.String(), true
}

// bindJSON decodes the request body, answering 400 with code on failure.
func bindJSON(ctx *gin.Context, req any, code string) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    code,
			Details: err.Error(),
		})
		return false
	}
	return true
}

// respondError maps a use case error to an HTTP response.
func respondError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		status := authErrorStatus(authErr.Code)
		if status == http.StatusInternalServerError {
			slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
		}
		ctx.JSON(status, dto.ErrorResponse{Error: authErr.Message, Code: string(authErr.Code)})
		return
	}

	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) && goalErr.Code == domainerror.ErrCodeAllocationExceeded {
		maxAllowed := goalErr.MaxAllowed
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:      goalErr.Message,
			Code:       string(goalErr.Code),
			MaxAllowed: &maxAllowed,
		})
		return
	}

	status := domainErrorStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
		ctx.JSON(status, dto.ErrorResponse{Error: "An internal error occurred"})
		return
	}

	message, code := describeError(err)
	ctx.JSON(status, dto.ErrorResponse{Error: message, Code: code})
}

func domainErrorStatus(err error) int {
	switch {
	case errors.Is(err, domainerror.ErrCategoryNotFound),
		errors.Is(err, domainerror.ErrGoalNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerror.ErrNotDeletable),
		errors.Is(err, domainerror.ErrHasChildren),
		errors.Is(err, domainerror.ErrInUse):
		return http.StatusConflict
	case errors.Is(err, domainerror.ErrBudgetRequired),
		errors.Is(err, domainerror.ErrIncomeRequired),
		errors.Is(err, domainerror.ErrAllocationExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerror.ErrValidation),
		errors.Is(err, domainerror.ErrInvalidCategory),
		errors.Is(err, domainerror.ErrParentNotFound),
		errors.Is(err, domainerror.ErrNegativePercentage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// describeError extracts the message and code of a typed domain error.
func describeError(err error) (string, string) {
	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		return categoryErr.Message, string(categoryErr.Code)
	}
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		return transactionErr.Message, string(transactionErr.Code)
	}
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		return budgetErr.Message, string(budgetErr.Code)
	}
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		return goalErr.Message, string(goalErr.Code)
	}
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		return insightErr.Message, string(insightErr.Code)
	}
	return err.Error(), ""
}

func authErrorStatus(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists,
		domainerror.ErrCodeAlreadyVerified:
		return http.StatusConflict
	case domainerror.ErrCodeTermsNotAccepted,
		domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeInvalidResetToken,
		domainerror.ErrCodeExpiredResetToken,
		domainerror.ErrCodeInvalidConfirmation,
		domainerror.ErrCodeInvalidVerificationToken:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

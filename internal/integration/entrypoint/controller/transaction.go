// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/transaction"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /transactions requests.
// Query parameters: month (YYYY-MM), category, type, search, page and limit.
func (c *TransactionController) List(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	input := transaction.ListTransactionsInput{
		OwnerID:  owner,
		Month:    ctx.Query("month"),
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
		Page:     1,
		Limit:    20,
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		txType := entity.TransactionType(typeStr)
		if !txType.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "type must be income or expense",
				Code:  string(domainerror.ErrCodeInvalidTransactionType),
			})
			return
		}
		input.Type = &txType
	}
	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeInvalidAmount)) {
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := dto.ParseDate(req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "date must be YYYY-MM-DD or RFC 3339",
				Code:  string(domainerror.ErrCodeInvalidDateFilter),
			})
			return
		}
		date = parsed
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		OwnerID:     owner,
		Type:        entity.TransactionType(req.Type),
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
		ReceiptRef:  req.Receipt,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transaction: dto.ToTransactionResponse(output.Transaction),
		Budgets:     dto.ToBudgetResponses(output.Budgets),
	})
}

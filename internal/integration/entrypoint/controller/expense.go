package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/application/usecase/expense"
	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
	"github.com/expense-segmentation/backend/internal/integration/entrypoint/dto"
	"github.com/expense-segmentation/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense header endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	getUseCase    *expense.GetExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	getUseCase *expense.GetExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		Principal:   principal,
		Date:        date,
		Vendor:      req.Vendor,
		Amount:      req.Amount,
		Description: req.Description,
		Type:        entity.ExpenseType(req.Type),
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), expense.GetExpenseInput{
		ExpenseID: expenseID,
		Principal: principal,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		Principal: principal,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// handleExpenseError maps expense errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		status := http.StatusBadRequest
		switch expErr.Code {
		case domainerror.ErrCodeExpenseNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeNotAuthorizedExpense:
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// respondUnauthenticated writes the response for requests that reached a
// handler without a principal in context.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/application/usecase/category"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
	"github.com/expense-segmentation/backend/internal/integration/entrypoint/dto"
	"github.com/expense-segmentation/backend/internal/integration/entrypoint/middleware"
)

// CategoryController handles category registry endpoints.
type CategoryController struct {
	listUseCase       *category.ListCategoriesUseCase
	createUseCase     *category.CreateCategoryUseCase
	deactivateUseCase *category.DeactivateCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	deactivateUseCase *category.DeactivateCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		deactivateUseCase: deactivateUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCategoryNameRequired),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Principal:   principal,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Deactivate handles DELETE /categories/:id requests.
func (c *CategoryController) Deactivate(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID",
		})
		return
	}

	output, err := c.deactivateUseCase.Execute(ctx.Request.Context(), category.DeactivateCategoryInput{
		Principal:  principal,
		CategoryID: categoryID,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// handleCategoryError maps category registry errors to HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		status := http.StatusBadRequest
		switch catErr.Code {
		case domainerror.ErrCodeCategoryNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeCategoryNameExists:
			status = http.StatusConflict
		case domainerror.ErrCodeNotAuthorizedCategories:
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

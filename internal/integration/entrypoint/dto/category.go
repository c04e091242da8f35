package dto

import (
	"time"

	"github.com/expense-segmentation/backend/internal/application/usecase/category"
)

// CreateCategoryRequest represents the request body for adding a registry category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

// CategoryResponse represents a registry category in API responses.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryListResponse represents a list of categories in API responses.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a category use case output to a response DTO.
func ToCategoryResponse(output *category.CategoryOutput) CategoryResponse {
	return CategoryResponse{
		ID:          output.ID.String(),
		Name:        output.Name,
		Description: output.Description,
		Active:      output.Active,
		CreatedAt:   output.CreatedAt,
	}
}

// ToCategoryListResponse converts a list of category outputs to a response DTO.
func ToCategoryListResponse(outputs []*category.CategoryOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(outputs))
	for i, o := range outputs {
		categories[i] = ToCategoryResponse(o)
	}
	return CategoryListResponse{Categories: categories}
}

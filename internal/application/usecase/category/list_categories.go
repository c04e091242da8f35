package category

import (
	"context"
	"fmt"

	"github.com/expense-segmentation/backend/internal/application/adapter"
)

// ListCategoriesOutput represents the output of listing active categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// ListCategoriesUseCase lists the active registry categories ordered by name.
// Any authenticated user may list categories; they are needed to build segments.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo}
}

// Execute performs the listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active categories: %w", err)
	}

	return &ListCategoriesOutput{Categories: toOutputs(categories)}, nil
}

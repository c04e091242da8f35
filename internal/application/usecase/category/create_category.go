package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for adding a registry category.
type CreateCategoryInput struct {
	Principal   entity.Principal
	Name        string
	Description string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *CategoryOutput
}

// CreateCategoryUseCase adds a new active category to the registry.
// Names are unique case-insensitively among active categories.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	authorizer   adapter.ExpenseAuthorizer
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, authorizer adapter.ExpenseAuthorizer) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo, authorizer: authorizer}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if !uc.authorizer.CanManageCategories(input.Principal) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategories,
			"not authorized to manage categories",
			domainerror.ErrNotAuthorizedForCategories,
		)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	exists, err := uc.categoryRepo.ExistsActiveByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name %q: %w", name, err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			fmt.Sprintf("an active category named %q already exists", name),
			domainerror.ErrCategoryNameExists,
		)
	}

	category := entity.NewCategory(name, strings.TrimSpace(input.Description))
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	slog.Info("Created category", "categoryID", category.ID, "name", category.Name)

	return &CreateCategoryOutput{Category: toOutput(category)}, nil
}

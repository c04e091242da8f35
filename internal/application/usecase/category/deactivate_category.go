package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

// DeactivateCategoryInput represents the input for retiring a registry category.
type DeactivateCategoryInput struct {
	Principal  entity.Principal
	CategoryID uuid.UUID
}

// DeactivateCategoryOutput represents the output of category deactivation.
type DeactivateCategoryOutput struct {
	Category *CategoryOutput
}

// DeactivateCategoryUseCase retires a category from the registry. Existing
// segments keep referencing the retired name; only new segments are blocked.
type DeactivateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	authorizer   adapter.ExpenseAuthorizer
}

// NewDeactivateCategoryUseCase creates a new DeactivateCategoryUseCase instance.
func NewDeactivateCategoryUseCase(categoryRepo adapter.CategoryRepository, authorizer adapter.ExpenseAuthorizer) *DeactivateCategoryUseCase {
	return &DeactivateCategoryUseCase{categoryRepo: categoryRepo, authorizer: authorizer}
}

// Execute performs the deactivation. Deactivating an already inactive category
// is a no-op and succeeds.
func (uc *DeactivateCategoryUseCase) Execute(ctx context.Context, input DeactivateCategoryInput) (*DeactivateCategoryOutput, error) {
	if !uc.authorizer.CanManageCategories(input.Principal) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategories,
			"not authorized to manage categories",
			domainerror.ErrNotAuthorizedForCategories,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				fmt.Sprintf("category %s not found", input.CategoryID),
				err,
			)
		}
		return nil, fmt.Errorf("failed to find category %s: %w", input.CategoryID, err)
	}

	if category.Active {
		category.Active = false
		if err := uc.categoryRepo.Update(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to deactivate category %s: %w", category.ID, err)
		}

		slog.Info("Deactivated category", "categoryID", category.ID, "name", category.Name)
	}

	return &DeactivateCategoryOutput{Category: toOutput(category)}, nil
}

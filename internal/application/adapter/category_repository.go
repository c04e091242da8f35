package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category registry persistence.
type CategoryRepository interface {
	// Create creates a new category in the registry.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindActive retrieves all active categories ordered by name.
	FindActive(ctx context.Context) ([]*entity.Category, error)

	// ExistsActiveByName checks for an active category with the given name,
	// compared case-insensitively.
	ExistsActiveByName(ctx context.Context, name string) (bool, error)

	// Update persists changes to a category (used for deactivation).
	Update(ctx context.Context, category *entity.Category) error
}

// CategoryRegistry is the read-only lookup the segmentation engine consumes.
// Implementations may cache lookups; the repository remains the source of truth.
type CategoryRegistry interface {
	// IsValidCategory reports whether an active category with the given name
	// exists, compared case-insensitively.
	IsValidCategory(ctx context.Context, name string) (bool, error)
}

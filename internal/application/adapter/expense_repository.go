package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
// The segmentation engine only reads expense headers through FindByID.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByCreatedBy retrieves all expenses owned by the given user, newest first.
	FindByCreatedBy(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// SegmentRepository defines the interface for segment persistence operations.
//
// All mutating methods execute as a single atomic unit: either every proposed
// segment is committed or none are. Implementations serialize concurrent
// mutations of one expense's segment set (row-level lock on the parent
// expense) and surface store-level conflicts as ErrSegmentStoreConflict.
type SegmentRepository interface {
	// FindByExpense retrieves all segments of an expense in creation order.
	FindByExpense(ctx context.Context, expenseID uuid.UUID) ([]*entity.Segment, error)

	// FindByExpenseAndID retrieves one segment scoped to its parent expense.
	FindByExpenseAndID(ctx context.Context, expenseID, segmentID uuid.UUID) (*entity.Segment, error)

	// CreateIfNone inserts the given segments provided the expense currently has
	// zero segments. Returns ErrSegmentsAlreadyExist otherwise.
	CreateIfNone(ctx context.Context, expenseID uuid.UUID, segments []*entity.Segment) error

	// ReplaceByExpense atomically discards the expense's existing segment set
	// and persists the new one.
	ReplaceByExpense(ctx context.Context, expenseID uuid.UUID, segments []*entity.Segment) error

	// Update persists changes to a single existing segment.
	Update(ctx context.Context, segment *entity.Segment) error

	// DeleteByExpenseAndID removes one segment. Deleting the last segment of an
	// expense is permitted; the expense reverts to unsegmented.
	DeleteByExpenseAndID(ctx context.Context, expenseID, segmentID uuid.UUID) error
}

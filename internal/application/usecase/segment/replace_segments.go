package segment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// ReplaceSegmentsInput represents the input for replacing an expense's segment set.
type ReplaceSegmentsInput struct {
	ExpenseID uuid.UUID
	Principal entity.Principal
	Segments  []SegmentInput
}

// ReplaceSegmentsOutput represents the output of a segment set replacement.
type ReplaceSegmentsOutput struct {
	Segments []*SegmentOutput
}

// ReplaceSegmentsUseCase atomically replaces the whole segment set of an
// expense. On any validation failure the stored set is left untouched; on
// success the previous set is discarded and fresh identifiers are assigned.
type ReplaceSegmentsUseCase struct {
	expenseRepo adapter.ExpenseRepository
	segmentRepo adapter.SegmentRepository
	registry    adapter.CategoryRegistry
	authorizer  adapter.ExpenseAuthorizer
}

// NewReplaceSegmentsUseCase creates a new ReplaceSegmentsUseCase instance.
func NewReplaceSegmentsUseCase(
	expenseRepo adapter.ExpenseRepository,
	segmentRepo adapter.SegmentRepository,
	registry adapter.CategoryRegistry,
	authorizer adapter.ExpenseAuthorizer,
) *ReplaceSegmentsUseCase {
	return &ReplaceSegmentsUseCase{
		expenseRepo: expenseRepo,
		segmentRepo: segmentRepo,
		registry:    registry,
		authorizer:  authorizer,
	}
}

// Execute performs the segment set replacement.
func (uc *ReplaceSegmentsUseCase) Execute(ctx context.Context, input ReplaceSegmentsInput) (*ReplaceSegmentsOutput, error) {
	expense, err := loadExpenseForModify(ctx, uc.expenseRepo, uc.authorizer, input.ExpenseID, input.Principal)
	if err != nil {
		return nil, err
	}

	segments, err := validateSet(ctx, uc.registry, expense, input.Segments)
	if err != nil {
		return nil, err
	}

	if err := uc.segmentRepo.ReplaceByExpense(ctx, expense.ID, segments); err != nil {
		return nil, wrapStoreError(err, "replace segments")
	}

	slog.Info("Replaced segment set",
		"expenseID", expense.ID,
		"count", len(segments),
	)

	return &ReplaceSegmentsOutput{Segments: toOutputs(segments)}, nil
}

package segment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// CreateSegmentsInput represents the input for creating an expense's initial segment set.
type CreateSegmentsInput struct {
	ExpenseID uuid.UUID
	Principal entity.Principal
	Segments  []SegmentInput
}

// CreateSegmentsOutput represents the output of batch segment creation.
type CreateSegmentsOutput struct {
	Segments []*SegmentOutput
}

// CreateSegmentsUseCase creates the full segment set for an expense that has
// none yet. It runs the same validation pipeline as replace but rejects with
// a conflict when segments already exist.
type CreateSegmentsUseCase struct {
	expenseRepo adapter.ExpenseRepository
	segmentRepo adapter.SegmentRepository
	registry    adapter.CategoryRegistry
	authorizer  adapter.ExpenseAuthorizer
}

// NewCreateSegmentsUseCase creates a new CreateSegmentsUseCase instance.
func NewCreateSegmentsUseCase(
	expenseRepo adapter.ExpenseRepository,
	segmentRepo adapter.SegmentRepository,
	registry adapter.CategoryRegistry,
	authorizer adapter.ExpenseAuthorizer,
) *CreateSegmentsUseCase {
	return &CreateSegmentsUseCase{
		expenseRepo: expenseRepo,
		segmentRepo: segmentRepo,
		registry:    registry,
		authorizer:  authorizer,
	}
}

// Execute performs the batch segment creation.
func (uc *CreateSegmentsUseCase) Execute(ctx context.Context, input CreateSegmentsInput) (*CreateSegmentsOutput, error) {
	expense, err := loadExpenseForModify(ctx, uc.expenseRepo, uc.authorizer, input.ExpenseID, input.Principal)
	if err != nil {
		return nil, err
	}

	segments, err := validateSet(ctx, uc.registry, expense, input.Segments)
	if err != nil {
		return nil, err
	}

	// The zero-segments precondition is enforced inside the store transaction
	// so a concurrent create cannot slip between check and insert.
	if err := uc.segmentRepo.CreateIfNone(ctx, expense.ID, segments); err != nil {
		return nil, wrapStoreError(err, "create segments")
	}

	slog.Info("Created segment set",
		"expenseID", expense.ID,
		"count", len(segments),
	)

	return &CreateSegmentsOutput{Segments: toOutputs(segments)}, nil
}

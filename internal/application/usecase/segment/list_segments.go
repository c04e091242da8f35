package segment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// ListSegmentsInput represents the input for listing an expense's segments.
type ListSegmentsInput struct {
	ExpenseID uuid.UUID
	Principal entity.Principal
}

// ListSegmentsOutput represents the output of listing segments.
type ListSegmentsOutput struct {
	Segments []*SegmentOutput
}

// ListSegmentsUseCase returns all segments of an expense in creation order.
type ListSegmentsUseCase struct {
	expenseRepo adapter.ExpenseRepository
	segmentRepo adapter.SegmentRepository
	authorizer  adapter.ExpenseAuthorizer
}

// NewListSegmentsUseCase creates a new ListSegmentsUseCase instance.
func NewListSegmentsUseCase(
	expenseRepo adapter.ExpenseRepository,
	segmentRepo adapter.SegmentRepository,
	authorizer adapter.ExpenseAuthorizer,
) *ListSegmentsUseCase {
	return &ListSegmentsUseCase{
		expenseRepo: expenseRepo,
		segmentRepo: segmentRepo,
		authorizer:  authorizer,
	}
}

// Execute performs the segment listing.
func (uc *ListSegmentsUseCase) Execute(ctx context.Context, input ListSegmentsInput) (*ListSegmentsOutput, error) {
	expense, err := loadExpenseForView(ctx, uc.expenseRepo, uc.authorizer, input.ExpenseID, input.Principal)
	if err != nil {
		return nil, err
	}

	segments, err := uc.segmentRepo.FindByExpense(ctx, expense.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments for expense %s: %w", expense.ID, err)
	}

	return &ListSegmentsOutput{Segments: toOutputs(segments)}, nil
}

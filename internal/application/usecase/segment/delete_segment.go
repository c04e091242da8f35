package segment

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

// DeleteSegmentInput represents the input for deleting one segment.
type DeleteSegmentInput struct {
	ExpenseID uuid.UUID
	SegmentID uuid.UUID
	Principal entity.Principal
}

// DeleteSegmentOutput represents the output of a segment deletion.
type DeleteSegmentOutput struct{}

// DeleteSegmentUseCase removes one segment. Deleting the last remaining
// segment is allowed: the expense reverts to the unsegmented state.
type DeleteSegmentUseCase struct {
	expenseRepo adapter.ExpenseRepository
	segmentRepo adapter.SegmentRepository
	authorizer  adapter.ExpenseAuthorizer
}

// NewDeleteSegmentUseCase creates a new DeleteSegmentUseCase instance.
func NewDeleteSegmentUseCase(
	expenseRepo adapter.ExpenseRepository,
	segmentRepo adapter.SegmentRepository,
	authorizer adapter.ExpenseAuthorizer,
) *DeleteSegmentUseCase {
	return &DeleteSegmentUseCase{
		expenseRepo: expenseRepo,
		segmentRepo: segmentRepo,
		authorizer:  authorizer,
	}
}

// Execute performs the segment deletion.
func (uc *DeleteSegmentUseCase) Execute(ctx context.Context, input DeleteSegmentInput) (*DeleteSegmentOutput, error) {
	expense, err := loadExpenseForModify(ctx, uc.expenseRepo, uc.authorizer, input.ExpenseID, input.Principal)
	if err != nil {
		return nil, err
	}

	if _, err := uc.segmentRepo.FindByExpenseAndID(ctx, expense.ID, input.SegmentID); err != nil {
		if errors.Is(err, domainerror.ErrSegmentNotFound) {
			return nil, domainerror.NewSegmentError(
				domainerror.ErrCodeSegmentNotFound,
				fmt.Sprintf("segment %s not found", input.SegmentID),
				domainerror.ErrSegmentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load segment %s: %w", input.SegmentID, err)
	}

	if err := uc.segmentRepo.DeleteByExpenseAndID(ctx, expense.ID, input.SegmentID); err != nil {
		return nil, wrapStoreError(err, "delete segment")
	}

	slog.Info("Deleted segment",
		"segmentID", input.SegmentID,
		"expenseID", expense.ID,
	)

	return &DeleteSegmentOutput{}, nil
}

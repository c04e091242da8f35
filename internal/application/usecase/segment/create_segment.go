package segment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

// CreateSegmentInput represents the input for creating an expense's first segment.
type CreateSegmentInput struct {
	ExpenseID  uuid.UUID
	Principal  entity.Principal
	Category   string
	Amount     decimal.Decimal
	Percentage *decimal.Decimal
}

// CreateSegmentOutput represents the output of single segment creation.
type CreateSegmentOutput struct {
	Segment *SegmentOutput
}

// CreateSegmentUseCase creates the first and only segment of an expense.
// Because the sum invariant must hold after every successful mutation, the
// single segment must cover the full expense amount; partial first segments
// are rejected and callers must use the batch operations instead.
type CreateSegmentUseCase struct {
	expenseRepo adapter.ExpenseRepository
	segmentRepo adapter.SegmentRepository
	registry    adapter.CategoryRegistry
	authorizer  adapter.ExpenseAuthorizer
}

// NewCreateSegmentUseCase creates a new CreateSegmentUseCase instance.
func NewCreateSegmentUseCase(
	expenseRepo adapter.ExpenseRepository,
	segmentRepo adapter.SegmentRepository,
	registry adapter.CategoryRegistry,
	authorizer adapter.ExpenseAuthorizer,
) *CreateSegmentUseCase {
	return &CreateSegmentUseCase{
		expenseRepo: expenseRepo,
		segmentRepo: segmentRepo,
		registry:    registry,
		authorizer:  authorizer,
	}
}

// Execute performs the single segment creation.
func (uc *CreateSegmentUseCase) Execute(ctx context.Context, input CreateSegmentInput) (*CreateSegmentOutput, error) {
	expense, err := loadExpenseForModify(ctx, uc.expenseRepo, uc.authorizer, input.ExpenseID, input.Principal)
	if err != nil {
		return nil, err
	}

	existing, err := uc.segmentRepo.FindByExpense(ctx, expense.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load segments for expense %s: %w", expense.ID, err)
	}
	if len(existing) > 0 {
		return nil, domainerror.NewSegmentError(
			domainerror.ErrCodeSegmentsAlreadyExist,
			"expense already has segments, use replace instead",
			domainerror.ErrSegmentsAlreadyExist,
		)
	}

	category, err := validateCategory(ctx, uc.registry, input.Category)
	if err != nil {
		return nil, err
	}

	if err := validateAmount(input.Amount, expense.Amount); err != nil {
		return nil, err
	}

	if input.Amount.Sub(expense.Amount).Abs().GreaterThan(amountTolerance) {
		return nil, domainerror.NewSegmentError(
			domainerror.ErrCodeFirstSegmentNotTotal,
			fmt.Sprintf("amount %s must equal expense total %s when creating the first and only segment",
				input.Amount.StringFixed(2), expense.Amount.StringFixed(2)),
			domainerror.ErrSegmentSumMismatch,
		)
	}

	percentage := derivePercentage(input.Amount, expense.Amount)
	if err := checkSuppliedPercentage(input.Percentage, percentage); err != nil {
		return nil, err
	}

	seg := entity.NewSegment(expense.ID, category, input.Amount, percentage)
	if err := uc.segmentRepo.CreateIfNone(ctx, expense.ID, []*entity.Segment{seg}); err != nil {
		return nil, wrapStoreError(err, "create segment")
	}

	slog.Info("Created segment",
		"segmentID", seg.ID,
		"expenseID", expense.ID,
		"category", seg.Category,
	)

	return &CreateSegmentOutput{Segment: toOutput(seg)}, nil
}

package segment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

// UpdateSegmentInput represents the input for editing one segment in place.
type UpdateSegmentInput struct {
	ExpenseID  uuid.UUID
	SegmentID  uuid.UUID
	Principal  entity.Principal
	Category   string
	Amount     decimal.Decimal
	Percentage *decimal.Decimal
}

// UpdateSegmentOutput represents the output of a segment update.
type UpdateSegmentOutput struct {
	Segment *SegmentOutput
}

// UpdateSegmentUseCase edits one segment's category and amount in place. The
// whole-set sum invariant is re-validated: sibling amounts plus the new
// amount must still reconcile to the expense total, so an amount change is
// only accepted when it keeps the set complete (on a single-segment expense
// that means matching the total; on a multi-segment expense it effectively
// limits the edit to the category unless siblings already compensate).
type UpdateSegmentUseCase struct {
	expenseRepo adapter.ExpenseRepository
	segmentRepo adapter.SegmentRepository
	registry    adapter.CategoryRegistry
	authorizer  adapter.ExpenseAuthorizer
}

// NewUpdateSegmentUseCase creates a new UpdateSegmentUseCase instance.
func NewUpdateSegmentUseCase(
	expenseRepo adapter.ExpenseRepository,
	segmentRepo adapter.SegmentRepository,
	registry adapter.CategoryRegistry,
	authorizer adapter.ExpenseAuthorizer,
) *UpdateSegmentUseCase {
	return &UpdateSegmentUseCase{
		expenseRepo: expenseRepo,
		segmentRepo: segmentRepo,
		registry:    registry,
		authorizer:  authorizer,
	}
}

// Execute performs the segment update.
func (uc *UpdateSegmentUseCase) Execute(ctx context.Context, input UpdateSegmentInput) (*UpdateSegmentOutput, error) {
	expense, err := loadExpenseForModify(ctx, uc.expenseRepo, uc.authorizer, input.ExpenseID, input.Principal)
	if err != nil {
		return nil, err
	}

	seg, err := uc.findSegment(ctx, expense.ID, input.SegmentID)
	if err != nil {
		return nil, err
	}

	category, err := validateCategory(ctx, uc.registry, input.Category)
	if err != nil {
		return nil, err
	}

	if err := validateAmount(input.Amount, expense.Amount); err != nil {
		return nil, err
	}

	siblings, err := uc.segmentRepo.FindByExpense(ctx, expense.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load segments for expense %s: %w", expense.ID, err)
	}

	othersTotal := decimal.Zero
	newKey := strings.ToLower(category)
	for _, other := range siblings {
		if other.ID == seg.ID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(other.Category)) == newKey {
			return nil, domainerror.NewSegmentError(
				domainerror.ErrCodeDuplicateCategory,
				fmt.Sprintf("segment category '%s' already exists on this expense", category),
				domainerror.ErrDuplicateSegmentCategory,
			)
		}
		othersTotal = othersTotal.Add(other.Amount)
	}

	newTotal := othersTotal.Add(input.Amount)
	if newTotal.Sub(expense.Amount).Abs().GreaterThan(amountTolerance) {
		return nil, domainerror.NewSegmentError(
			domainerror.ErrCodeSumMismatch,
			fmt.Sprintf("updated amount %s plus other segments %s must equal expense total %s",
				input.Amount.StringFixed(2), othersTotal.StringFixed(2), expense.Amount.StringFixed(2)),
			domainerror.ErrSegmentSumMismatch,
		)
	}

	percentage := derivePercentage(input.Amount, expense.Amount)
	if err := checkSuppliedPercentage(input.Percentage, percentage); err != nil {
		return nil, err
	}

	seg.Category = category
	seg.Amount = input.Amount
	seg.Percentage = percentage
	seg.UpdatedAt = time.Now().UTC()

	if err := uc.segmentRepo.Update(ctx, seg); err != nil {
		return nil, wrapStoreError(err, "update segment")
	}

	slog.Info("Updated segment",
		"segmentID", seg.ID,
		"expenseID", expense.ID,
		"category", seg.Category,
	)

	return &UpdateSegmentOutput{Segment: toOutput(seg)}, nil
}

func (uc *UpdateSegmentUseCase) findSegment(ctx context.Context, expenseID, segmentID uuid.UUID) (*entity.Segment, error) {
	seg, err := uc.segmentRepo.FindByExpenseAndID(ctx, expenseID, segmentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSegmentNotFound) {
			return nil, domainerror.NewSegmentError(
				domainerror.ErrCodeSegmentNotFound,
				fmt.Sprintf("segment %s not found", segmentID),
				domainerror.ErrSegmentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load segment %s: %w", segmentID, err)
	}
	return seg, nil
}

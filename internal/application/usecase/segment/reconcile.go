package segment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

const (
	// MaxCategoryLength is the maximum allowed length for a segment category name.
	MaxCategoryLength = 100
)

var (
	// amountTolerance is the allowed absolute difference between the sum of
	// segment amounts and the expense total, in currency units.
	amountTolerance = decimal.RequireFromString("0.01")

	// percentageTolerance is the allowed absolute difference for percentage
	// checks, in percentage points.
	percentageTolerance = decimal.RequireFromString("0.01")

	hundred = decimal.NewFromInt(100)
)

// SegmentInput is one proposed segment in a batch operation. Percentage is
// optional: when supplied it is only checked against the derived value.
type SegmentInput struct {
	Category   string
	Amount     decimal.Decimal
	Percentage *decimal.Decimal
}

// derivePercentage computes a segment's share of the expense total, rounded
// half-up to two decimal places.
func derivePercentage(amount, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(hundred).Div(total).Round(2)
}

// validateCategory trims and checks a single category name against the registry.
// Returns the canonical (trimmed) name.
func validateCategory(ctx context.Context, registry adapter.CategoryRegistry, category string) (string, error) {
	name := strings.TrimSpace(category)
	if name == "" {
		return "", domainerror.NewSegmentError(
			domainerror.ErrCodeUnknownCategory,
			"category is required",
			domainerror.ErrUnknownSegmentCategory,
		)
	}
	if len(name) > MaxCategoryLength {
		return "", domainerror.NewSegmentError(
			domainerror.ErrCodeUnknownCategory,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrUnknownSegmentCategory,
		)
	}

	valid, err := registry.IsValidCategory(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to look up category %q: %w", name, err)
	}
	if !valid {
		return "", domainerror.NewSegmentError(
			domainerror.ErrCodeUnknownCategory,
			fmt.Sprintf("category '%s' is not in the registry", name),
			domainerror.ErrUnknownSegmentCategory,
		)
	}
	return name, nil
}

// validateAmount checks that a segment amount is positive and does not exceed
// the expense total.
func validateAmount(amount, total decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewSegmentError(
			domainerror.ErrCodeAmountOutOfRange,
			"segment amount must be positive",
			domainerror.ErrSegmentAmountOutOfRange,
		)
	}
	if amount.GreaterThan(total) {
		return domainerror.NewSegmentError(
			domainerror.ErrCodeAmountOutOfRange,
			fmt.Sprintf("segment amount %s exceeds expense total %s",
				amount.StringFixed(2), total.StringFixed(2)),
			domainerror.ErrSegmentAmountOutOfRange,
		)
	}
	return nil
}

// checkSuppliedPercentage verifies a caller-supplied percentage against the
// derived one. The derived value is always the one stored.
func checkSuppliedPercentage(supplied *decimal.Decimal, derived decimal.Decimal) error {
	if supplied == nil {
		return nil
	}
	if supplied.Sub(derived).Abs().GreaterThan(percentageTolerance) {
		return domainerror.NewSegmentError(
			domainerror.ErrCodePercentageMismatch,
			fmt.Sprintf("supplied percentage %s does not match derived percentage %s",
				supplied.StringFixed(2), derived.StringFixed(2)),
			domainerror.ErrSegmentPercentageMismatch,
		)
	}
	return nil
}

// validateSet runs the full batch validation pipeline against the parent
// expense and returns fresh segment entities in submitted order. No partial
// result is ever produced: the first violated rule aborts the whole set.
func validateSet(
	ctx context.Context,
	registry adapter.CategoryRegistry,
	expense *entity.Expense,
	inputs []SegmentInput,
) ([]*entity.Segment, error) {
	if len(inputs) == 0 {
		return nil, domainerror.NewSegmentError(
			domainerror.ErrCodeEmptySegmentSet,
			"at least one segment is required",
			domainerror.ErrEmptySegmentSet,
		)
	}

	seen := make(map[string]struct{}, len(inputs))
	segments := make([]*entity.Segment, 0, len(inputs))
	totalAmount := decimal.Zero
	totalPct := decimal.Zero

	for _, input := range inputs {
		name, err := validateCategory(ctx, registry, input.Category)
		if err != nil {
			return nil, err
		}

		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, domainerror.NewSegmentError(
				domainerror.ErrCodeDuplicateCategory,
				fmt.Sprintf("duplicate segment category '%s'", name),
				domainerror.ErrDuplicateSegmentCategory,
			)
		}
		seen[key] = struct{}{}

		if err := validateAmount(input.Amount, expense.Amount); err != nil {
			return nil, err
		}

		derived := derivePercentage(input.Amount, expense.Amount)
		if err := checkSuppliedPercentage(input.Percentage, derived); err != nil {
			return nil, err
		}

		totalAmount = totalAmount.Add(input.Amount)
		totalPct = totalPct.Add(derived)
		segments = append(segments, entity.NewSegment(expense.ID, name, input.Amount, derived))
	}

	if totalAmount.Sub(expense.Amount).Abs().GreaterThan(amountTolerance) {
		return nil, domainerror.NewSegmentError(
			domainerror.ErrCodeSumMismatch,
			fmt.Sprintf("segment amounts sum to %s but expense total is %s",
				totalAmount.StringFixed(2), expense.Amount.StringFixed(2)),
			domainerror.ErrSegmentSumMismatch,
		)
	}

	if totalPct.Sub(hundred).Abs().GreaterThan(percentageTolerance) {
		return nil, domainerror.NewSegmentError(
			domainerror.ErrCodeSumMismatch,
			fmt.Sprintf("segment percentages sum to %s instead of 100.00", totalPct.StringFixed(2)),
			domainerror.ErrSegmentSumMismatch,
		)
	}

	return segments, nil
}

// loadExpenseForView fetches the expense and enforces the view capability.
func loadExpenseForView(
	ctx context.Context,
	expenseRepo adapter.ExpenseRepository,
	authorizer adapter.ExpenseAuthorizer,
	expenseID uuid.UUID,
	principal entity.Principal,
) (*entity.Expense, error) {
	expense, err := expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewSegmentError(
				domainerror.ErrCodeSegmentExpenseNotFound,
				fmt.Sprintf("expense %s not found", expenseID),
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load expense %s: %w", expenseID, err)
	}

	if !authorizer.CanViewExpense(principal, expense) {
		return nil, domainerror.NewSegmentError(
			domainerror.ErrCodeNotAuthorizedSegments,
			"not authorized to view segments of this expense",
			domainerror.ErrNotAuthorizedForSegments,
		)
	}

	return expense, nil
}

// loadExpenseForModify fetches the expense and enforces the modify capability
// plus the editable-status precondition shared by all mutating operations.
func loadExpenseForModify(
	ctx context.Context,
	expenseRepo adapter.ExpenseRepository,
	authorizer adapter.ExpenseAuthorizer,
	expenseID uuid.UUID,
	principal entity.Principal,
) (*entity.Expense, error) {
	expense, err := expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewSegmentError(
				domainerror.ErrCodeSegmentExpenseNotFound,
				fmt.Sprintf("expense %s not found", expenseID),
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load expense %s: %w", expenseID, err)
	}

	if !authorizer.CanModifyExpense(principal, expense) {
		return nil, domainerror.NewSegmentError(
			domainerror.ErrCodeNotAuthorizedSegments,
			"not authorized to modify segments of this expense",
			domainerror.ErrNotAuthorizedForSegments,
		)
	}

	if !expense.Status.IsEditable() {
		return nil, domainerror.NewSegmentError(
			domainerror.ErrCodeExpenseNotEditable,
			fmt.Sprintf("expense in status '%s' cannot be segmented", expense.Status),
			domainerror.ErrExpenseNotEditable,
		)
	}

	return expense, nil
}

// wrapStoreError converts sentinel store failures into the error taxonomy.
// Transient conflicts keep their retryable code so callers can retry; the
// engine itself never retries to avoid masking concurrent-edit conflicts.
func wrapStoreError(err error, operation string) error {
	switch {
	case errors.Is(err, domainerror.ErrSegmentsAlreadyExist):
		return domainerror.NewSegmentError(
			domainerror.ErrCodeSegmentsAlreadyExist,
			"expense already has segments, use replace instead",
			domainerror.ErrSegmentsAlreadyExist,
		)
	case errors.Is(err, domainerror.ErrSegmentStoreConflict):
		return domainerror.NewSegmentError(
			domainerror.ErrCodeSegmentStoreConflict,
			"segment store conflict, retry the operation",
			domainerror.ErrSegmentStoreConflict,
		)
	default:
		return fmt.Errorf("failed to %s: %w", operation, err)
	}
}

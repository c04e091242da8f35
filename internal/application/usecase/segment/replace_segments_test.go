package segment

import (
	"context"
	"testing"

	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

func TestReplaceSegments_Success(t *testing.T) {
	expense := testExpense("100.00")
	expenseRepo := newFakeExpenseRepo(expense)
	segmentRepo := newFakeSegmentRepo()
	registry := newFakeRegistry("Travel", "Meals")
	uc := NewReplaceSegmentsUseCase(expenseRepo, segmentRepo, registry, allowAll())

	output, err := uc.Execute(context.Background(), ReplaceSegmentsInput{
		ExpenseID: expense.ID,
		Principal: testPrincipal(),
		Segments: []SegmentInput{
			{Category: "Travel", Amount: dec("60.00")},
			{Category: "Meals", Amount: dec("40.00")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(output.Segments))
	}

	// Canonical list preserves submitted order and carries derived percentages.
	if output.Segments[0].Category != "Travel" || !output.Segments[0].Percentage.Equal(dec("60")) {
		t.Errorf("expected Travel at 60%%, got %s at %s",
			output.Segments[0].Category, output.Segments[0].Percentage)
	}
	if output.Segments[1].Category != "Meals" || !output.Segments[1].Percentage.Equal(dec("40")) {
		t.Errorf("expected Meals at 40%%, got %s at %s",
			output.Segments[1].Category, output.Segments[1].Percentage)
	}
}

func TestReplaceSegments_DiscardsPreviousSet(t *testing.T) {
	expense := testExpense("100.00")
	expenseRepo := newFakeExpenseRepo(expense)
	segmentRepo := newFakeSegmentRepo()
	segmentRepo.seed(expense.ID,
		entity.NewSegment(expense.ID, "Lodging", dec("100.00"), dec("100")),
	)
	registry := newFakeRegistry("Travel", "Meals", "Lodging")
	uc := NewReplaceSegmentsUseCase(expenseRepo, segmentRepo, registry, allowAll())

	output, err := uc.Execute(context.Background(), ReplaceSegmentsInput{
		ExpenseID: expense.ID,
		Principal: testPrincipal(),
		Segments: []SegmentInput{
			{Category: "Travel", Amount: dec("60.00")},
			{Category: "Meals", Amount: dec("40.00")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(output.Segments))
	}

	stored, _ := segmentRepo.FindByExpense(context.Background(), expense.ID)
	if len(stored) != 2 {
		t.Fatalf("expected stored set replaced with 2 segments, got %d", len(stored))
	}
	for _, s := range stored {
		if s.Category == "Lodging" {
			t.Error("previous segment set should have been discarded")
		}
	}
}

func TestReplaceSegments_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		segments []SegmentInput
		code     domainerror.SegmentErrorCode
	}{
		{
			name: "sum below total beyond tolerance",
			segments: []SegmentInput{
				{Category: "Travel", Amount: dec("60.00")},
				{Category: "Meals", Amount: dec("30.00")},
			},
			code: domainerror.ErrCodeSumMismatch,
		},
		{
			name: "sum above total beyond tolerance",
			segments: []SegmentInput{
				{Category: "Travel", Amount: dec("80.00")},
				{Category: "Meals", Amount: dec("40.00")},
			},
			code: domainerror.ErrCodeSumMismatch,
		},
		{
			name: "duplicate category same case",
			segments: []SegmentInput{
				{Category: "Travel", Amount: dec("60.00")},
				{Category: "Travel", Amount: dec("40.00")},
			},
			code: domainerror.ErrCodeDuplicateCategory,
		},
		{
			name: "duplicate category different case",
			segments: []SegmentInput{
				{Category: "Travel", Amount: dec("60.00")},
				{Category: "travel", Amount: dec("40.00")},
			},
			code: domainerror.ErrCodeDuplicateCategory,
		},
		{
			name: "category not in registry",
			segments: []SegmentInput{
				{Category: "Entertainment", Amount: dec("100.00")},
			},
			code: domainerror.ErrCodeUnknownCategory,
		},
		{
			name: "blank category",
			segments: []SegmentInput{
				{Category: "   ", Amount: dec("100.00")},
			},
			code: domainerror.ErrCodeUnknownCategory,
		},
		{
			name: "zero amount",
			segments: []SegmentInput{
				{Category: "Travel", Amount: dec("0")},
				{Category: "Meals", Amount: dec("100.00")},
			},
			code: domainerror.ErrCodeAmountOutOfRange,
		},
		{
			name: "negative amount",
			segments: []SegmentInput{
				{Category: "Travel", Amount: dec("-10.00")},
				{Category: "Meals", Amount: dec("110.00")},
			},
			code: domainerror.ErrCodeAmountOutOfRange,
		},
		{
			name: "amount exceeds expense total",
			segments: []SegmentInput{
				{Category: "Travel", Amount: dec("150.00")},
			},
			code: domainerror.ErrCodeAmountOutOfRange,
		},
		{
			name: "supplied percentage disagrees with derived",
			segments: []SegmentInput{
				{Category: "Travel", Amount: dec("60.00"), Percentage: decPtr("50.00")},
				{Category: "Meals", Amount: dec("40.00")},
			},
			code: domainerror.ErrCodePercentageMismatch,
		},
		{
			name:     "empty set",
			segments: nil,
			code:     domainerror.ErrCodeEmptySegmentSet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense := testExpense("100.00")
			expenseRepo := newFakeExpenseRepo(expense)
			segmentRepo := newFakeSegmentRepo()
			previous := entity.NewSegment(expense.ID, "Lodging", dec("100.00"), dec("100"))
			segmentRepo.seed(expense.ID, previous)
			registry := newFakeRegistry("Travel", "Meals", "Lodging")
			uc := NewReplaceSegmentsUseCase(expenseRepo, segmentRepo, registry, allowAll())

			_, err := uc.Execute(context.Background(), ReplaceSegmentsInput{
				ExpenseID: expense.ID,
				Principal: testPrincipal(),
				Segments:  tt.segments,
			})
			assertSegmentErrorCode(t, err, tt.code)

			// The prior segment set must be left completely unchanged.
			stored, _ := segmentRepo.FindByExpense(context.Background(), expense.ID)
			if len(stored) != 1 || stored[0].ID != previous.ID {
				t.Error("stored segment set was mutated by a failed replace")
			}
		})
	}
}

func TestReplaceSegments_SuppliedPercentageWithinToleranceAccepted(t *testing.T) {
	expense := testExpense("100.00")
	expenseRepo := newFakeExpenseRepo(expense)
	segmentRepo := newFakeSegmentRepo()
	registry := newFakeRegistry("Travel", "Meals")
	uc := NewReplaceSegmentsUseCase(expenseRepo, segmentRepo, registry, allowAll())

	output, err := uc.Execute(context.Background(), ReplaceSegmentsInput{
		ExpenseID: expense.ID,
		Principal: testPrincipal(),
		Segments: []SegmentInput{
			{Category: "Travel", Amount: dec("60.00"), Percentage: decPtr("60.01")},
			{Category: "Meals", Amount: dec("40.00"), Percentage: decPtr("40.00")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The derived value is stored, not the supplied one.
	if !output.Segments[0].Percentage.Equal(dec("60")) {
		t.Errorf("expected derived percentage 60, got %s", output.Segments[0].Percentage)
	}
}

func TestReplaceSegments_ExpenseNotFound(t *testing.T) {
	expenseRepo := newFakeExpenseRepo()
	uc := NewReplaceSegmentsUseCase(expenseRepo, newFakeSegmentRepo(), newFakeRegistry("Travel"), allowAll())

	_, err := uc.Execute(context.Background(), ReplaceSegmentsInput{
		ExpenseID: testExpense("10.00").ID,
		Principal: testPrincipal(),
		Segments:  []SegmentInput{{Category: "Travel", Amount: dec("10.00")}},
	})
	assertSegmentErrorCode(t, err, domainerror.ErrCodeSegmentExpenseNotFound)
}

func TestReplaceSegments_Forbidden(t *testing.T) {
	expense := testExpense("100.00")
	uc := NewReplaceSegmentsUseCase(newFakeExpenseRepo(expense), newFakeSegmentRepo(), newFakeRegistry("Travel"), denyAll())

	_, err := uc.Execute(context.Background(), ReplaceSegmentsInput{
		ExpenseID: expense.ID,
		Principal: testPrincipal(),
		Segments:  []SegmentInput{{Category: "Travel", Amount: dec("100.00")}},
	})
	assertSegmentErrorCode(t, err, domainerror.ErrCodeNotAuthorizedSegments)
}

func TestReplaceSegments_FrozenExpenseRejected(t *testing.T) {
	expense := testExpense("100.00")
	expense.Status = entity.ExpenseStatusApproved
	uc := NewReplaceSegmentsUseCase(newFakeExpenseRepo(expense), newFakeSegmentRepo(), newFakeRegistry("Travel"), allowAll())

	_, err := uc.Execute(context.Background(), ReplaceSegmentsInput{
		ExpenseID: expense.ID,
		Principal: testPrincipal(),
		Segments:  []SegmentInput{{Category: "Travel", Amount: dec("100.00")}},
	})
	assertSegmentErrorCode(t, err, domainerror.ErrCodeExpenseNotEditable)
}

func TestReplaceSegments_StoreConflictSurfacesAsTransient(t *testing.T) {
	expense := testExpense("100.00")
	segmentRepo := newFakeSegmentRepo()
	segmentRepo.failWith = domainerror.ErrSegmentStoreConflict
	uc := NewReplaceSegmentsUseCase(newFakeExpenseRepo(expense), segmentRepo, newFakeRegistry("Travel"), allowAll())

	_, err := uc.Execute(context.Background(), ReplaceSegmentsInput{
		ExpenseID: expense.ID,
		Principal: testPrincipal(),
		Segments:  []SegmentInput{{Category: "Travel", Amount: dec("100.00")}},
	})
	assertSegmentErrorCode(t, err, domainerror.ErrCodeSegmentStoreConflict)
}

func TestReplaceSegments_IdempotentForIdenticalInput(t *testing.T) {
	expense := testExpense("100.00")
	expenseRepo := newFakeExpenseRepo(expense)
	segmentRepo := newFakeSegmentRepo()
	registry := newFakeRegistry("Travel", "Meals")
	uc := NewReplaceSegmentsUseCase(expenseRepo, segmentRepo, registry, allowAll())

	input := ReplaceSegmentsInput{
		ExpenseID: expense.ID,
		Principal: testPrincipal(),
		Segments: []SegmentInput{
			{Category: "Travel", Amount: dec("60.00")},
			{Category: "Meals", Amount: dec("40.00")},
		},
	}

	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error on first replace: %v", err)
	}
	second, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error on second replace: %v", err)
	}

	if len(first.Segments) != len(second.Segments) {
		t.Fatalf("expected same segment count, got %d and %d", len(first.Segments), len(second.Segments))
	}
	for i := range first.Segments {
		a, b := first.Segments[i], second.Segments[i]
		if a.Category != b.Category || !a.Amount.Equal(b.Amount) || !a.Percentage.Equal(b.Percentage) {
			t.Errorf("segment %d differs between identical replaces: %+v vs %+v", i, a, b)
		}
		// Fresh identifiers are assigned on every replace.
		if a.ID == b.ID {
			t.Errorf("segment %d kept its identifier across replaces", i)
		}
	}
}

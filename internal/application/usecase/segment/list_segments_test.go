package segment

import (
	"context"
	"testing"

	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

func TestListSegments_ReturnsCreationOrder(t *testing.T) {
	expense := testExpense("100.00")
	segmentRepo := newFakeSegmentRepo()
	travel := entity.NewSegment(expense.ID, "Travel", dec("60.00"), dec("60"))
	meals := entity.NewSegment(expense.ID, "Meals", dec("40.00"), dec("40"))
	segmentRepo.seed(expense.ID, travel, meals)
	uc := NewListSegmentsUseCase(newFakeExpenseRepo(expense), segmentRepo, allowAll())

	output, err := uc.Execute(context.Background(), ListSegmentsInput{
		ExpenseID: expense.ID,
		Principal: testPrincipal(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(output.Segments))
	}
	if output.Segments[0].ID != travel.ID || output.Segments[1].ID != meals.ID {
		t.Error("segments not returned in creation order")
	}
}

func TestListSegments_EmptyForUnsegmentedExpense(t *testing.T) {
	expense := testExpense("100.00")
	uc := NewListSegmentsUseCase(newFakeExpenseRepo(expense), newFakeSegmentRepo(), allowAll())

	output, err := uc.Execute(context.Background(), ListSegmentsInput{
		ExpenseID: expense.ID,
		Principal: testPrincipal(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Segments) != 0 {
		t.Errorf("expected empty list, got %d segments", len(output.Segments))
	}
}

func TestListSegments_Forbidden(t *testing.T) {
	expense := testExpense("100.00")
	uc := NewListSegmentsUseCase(newFakeExpenseRepo(expense), newFakeSegmentRepo(), denyAll())

	_, err := uc.Execute(context.Background(), ListSegmentsInput{
		ExpenseID: expense.ID,
		Principal: testPrincipal(),
	})
	assertSegmentErrorCode(t, err, domainerror.ErrCodeNotAuthorizedSegments)
}

func TestListSegments_ExpenseNotFound(t *testing.T) {
	uc := NewListSegmentsUseCase(newFakeExpenseRepo(), newFakeSegmentRepo(), allowAll())

	_, err := uc.Execute(context.Background(), ListSegmentsInput{
		ExpenseID: testExpense("10.00").ID,
		Principal: testPrincipal(),
	})
	assertSegmentErrorCode(t, err, domainerror.ErrCodeSegmentExpenseNotFound)
}

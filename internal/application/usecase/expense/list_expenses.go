package expense

import (
	"context"
	"fmt"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing the requester's own expenses.
type ListExpensesInput struct {
	Principal entity.Principal
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListExpensesUseCase lists the expenses owned by the requesting user, newest first.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute performs the listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByCreatedBy(ctx, input.Principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for user %s: %w", input.Principal.UserID, err)
	}

	return &ListExpensesOutput{Expenses: toOutputs(expenses)}, nil
}

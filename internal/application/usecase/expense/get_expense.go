package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

// GetExpenseInput represents the input for fetching a single expense.
type GetExpenseInput struct {
	ExpenseID uuid.UUID
	Principal entity.Principal
}

// GetExpenseOutput represents the output of fetching a single expense.
type GetExpenseOutput struct {
	Expense *ExpenseOutput
}

// GetExpenseUseCase fetches one expense header, subject to the view capability.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	authorizer  adapter.ExpenseAuthorizer
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository, authorizer adapter.ExpenseAuthorizer) *GetExpenseUseCase {
	return &GetExpenseUseCase{expenseRepo: expenseRepo, authorizer: authorizer}
}

// Execute performs the expense lookup.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				fmt.Sprintf("expense %s not found", input.ExpenseID),
				err,
			)
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", input.ExpenseID, err)
	}

	if !uc.authorizer.CanViewExpense(input.Principal, expense) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNotAuthorizedExpense,
			"not authorized to view this expense",
			domainerror.ErrNotAuthorizedToViewExpense,
		)
	}

	return &GetExpenseOutput{Expense: toOutput(expense)}, nil
}

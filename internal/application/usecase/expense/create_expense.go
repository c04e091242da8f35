package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for submitting a new expense.
type CreateExpenseInput struct {
	Principal   entity.Principal
	Date        time.Time
	Vendor      string
	Amount      decimal.Decimal
	Description string
	Type        entity.ExpenseType
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *ExpenseOutput
}

// CreateExpenseUseCase submits a new expense owned by the requesting user.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	vendor := strings.TrimSpace(input.Vendor)
	if vendor == "" || input.Date.IsZero() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"date and vendor are required",
			nil,
		)
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseType,
			fmt.Sprintf("expense type must be %s or %s", entity.ExpenseTypeExpense, entity.ExpenseTypeInvoice),
			domainerror.ErrInvalidExpenseType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	expense := entity.NewExpense(input.Date, vendor, input.Amount, input.Description, input.Type, input.Principal.UserID)
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	slog.Info("Created expense",
		"expenseID", expense.ID,
		"type", expense.Type,
		"createdBy", expense.CreatedBy,
	)

	return &CreateExpenseOutput{Expense: toOutput(expense)}, nil
}

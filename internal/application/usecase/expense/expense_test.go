package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepo(expenses ...*entity.Expense) *fakeExpenseRepo {
	repo := &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
	for _, e := range expenses {
		repo.expenses[e.ID] = e
	}
	return repo
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	return expense, nil
}

func (r *fakeExpenseRepo) FindByCreatedBy(_ context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var result []*entity.Expense
	for _, e := range r.expenses {
		if e.CreatedBy == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

type fakeAuthorizer struct {
	view   bool
	modify bool
}

func (a *fakeAuthorizer) CanViewExpense(entity.Principal, *entity.Expense) bool   { return a.view }
func (a *fakeAuthorizer) CanModifyExpense(entity.Principal, *entity.Expense) bool { return a.modify }
func (a *fakeAuthorizer) CanManageCategories(entity.Principal) bool               { return a.modify }

func testPrincipal() entity.Principal {
	return entity.Principal{UserID: uuid.New(), Email: "user@example.com", Role: entity.RoleEmployee}
}

func assertExpenseErrorCode(t *testing.T, err error, want domainerror.ExpenseErrorCode) {
	t.Helper()
	var expErr *domainerror.ExpenseError
	if !errors.As(err, &expErr) {
		t.Fatalf("expected ExpenseError, got %v", err)
	}
	if expErr.Code != want {
		t.Errorf("expected error code %s, got %s", want, expErr.Code)
	}
}

func TestCreateExpense_Success(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := NewCreateExpenseUseCase(repo)
	principal := testPrincipal()

	output, err := uc.Execute(context.Background(), CreateExpenseInput{
		Principal:   principal,
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Vendor:      "Acme Travel",
		Amount:      decimal.RequireFromString("250.00"),
		Description: "Client visit",
		Type:        entity.ExpenseTypeExpense,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Expense.Status != entity.ExpenseStatusSubmitted {
		t.Errorf("expected submitted status, got %s", output.Expense.Status)
	}
	if output.Expense.CreatedBy != principal.UserID {
		t.Error("expense not attributed to the requesting user")
	}
	if _, ok := repo.expenses[output.Expense.ID]; !ok {
		t.Error("expense was not persisted")
	}
}

func TestCreateExpense_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input CreateExpenseInput
		code  domainerror.ExpenseErrorCode
	}{
		{
			name: "missing vendor",
			input: CreateExpenseInput{
				Date:   time.Now(),
				Vendor: "  ",
				Amount: decimal.RequireFromString("10.00"),
				Type:   entity.ExpenseTypeExpense,
			},
			code: domainerror.ErrCodeMissingExpenseFields,
		},
		{
			name: "missing date",
			input: CreateExpenseInput{
				Vendor: "Acme",
				Amount: decimal.RequireFromString("10.00"),
				Type:   entity.ExpenseTypeExpense,
			},
			code: domainerror.ErrCodeMissingExpenseFields,
		},
		{
			name: "unknown type",
			input: CreateExpenseInput{
				Date:   time.Now(),
				Vendor: "Acme",
				Amount: decimal.RequireFromString("10.00"),
				Type:   entity.ExpenseType("receipt"),
			},
			code: domainerror.ErrCodeInvalidExpenseType,
		},
		{
			name: "non-positive amount",
			input: CreateExpenseInput{
				Date:   time.Now(),
				Vendor: "Acme",
				Amount: decimal.Zero,
				Type:   entity.ExpenseTypeInvoice,
			},
			code: domainerror.ErrCodeInvalidExpenseAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateExpenseUseCase(newFakeExpenseRepo())
			tt.input.Principal = testPrincipal()
			_, err := uc.Execute(context.Background(), tt.input)
			assertExpenseErrorCode(t, err, tt.code)
		})
	}
}

func TestGetExpense_NotFound(t *testing.T) {
	uc := NewGetExpenseUseCase(newFakeExpenseRepo(), &fakeAuthorizer{view: true})

	_, err := uc.Execute(context.Background(), GetExpenseInput{
		ExpenseID: uuid.New(),
		Principal: testPrincipal(),
	})
	assertExpenseErrorCode(t, err, domainerror.ErrCodeExpenseNotFound)
}

func TestGetExpense_Forbidden(t *testing.T) {
	expense := entity.NewExpense(time.Now(), "Acme", decimal.RequireFromString("10.00"), "", entity.ExpenseTypeExpense, uuid.New())
	uc := NewGetExpenseUseCase(newFakeExpenseRepo(expense), &fakeAuthorizer{})

	_, err := uc.Execute(context.Background(), GetExpenseInput{
		ExpenseID: expense.ID,
		Principal: testPrincipal(),
	})
	assertExpenseErrorCode(t, err, domainerror.ErrCodeNotAuthorizedExpense)
}

func TestListExpenses_ReturnsOnlyOwn(t *testing.T) {
	principal := testPrincipal()
	mine := entity.NewExpense(time.Now(), "Acme", decimal.RequireFromString("10.00"), "", entity.ExpenseTypeExpense, principal.UserID)
	other := entity.NewExpense(time.Now(), "Globex", decimal.RequireFromString("20.00"), "", entity.ExpenseTypeInvoice, uuid.New())
	uc := NewListExpensesUseCase(newFakeExpenseRepo(mine, other))

	output, err := uc.Execute(context.Background(), ListExpensesInput{Principal: principal})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Expenses) != 1 || output.Expenses[0].ID != mine.ID {
		t.Errorf("expected only the requester's expense, got %d expenses", len(output.Expenses))
	}
}

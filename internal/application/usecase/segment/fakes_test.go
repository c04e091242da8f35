package segment

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

// fakeExpenseRepo is an in-memory ExpenseRepository for use case tests.
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

// fakeSegmentRepo is an in-memory SegmentRepository preserving insertion order.
// failWith, when set, is returned by every mutating method to simulate store
// failures without touching stored state.
type fakeSegmentRepo struct {
	segments map[uuid.UUID][]*entity.Segment
	failWith error
}

func newFakeSegmentRepo() *fakeSegmentRepo {
	return &fakeSegmentRepo{segments: make(map[uuid.UUID][]*entity.Segment)}
}

func (r *fakeSegmentRepo) FindByExpense(_ context.Context, expenseID uuid.UUID) ([]*entity.Segment, error) {
	stored := r.segments[expenseID]
	result := make([]*entity.Segment, len(stored))
	copy(result, stored)
	return result, nil
}

func (r *fakeSegmentRepo) FindByExpenseAndID(_ context.Context, expenseID, segmentID uuid.UUID) (*entity.Segment, error) {
	for _, s := range r.segments[expenseID] {
		if s.ID == segmentID {
			return s, nil
		}
	}
	return nil, domainerror.ErrSegmentNotFound
}

func (r *fakeSegmentRepo) CreateIfNone(_ context.Context, expenseID uuid.UUID, segments []*entity.Segment) error {
	if r.failWith != nil {
		return r.failWith
	}
	if len(r.segments[expenseID]) > 0 {
		return domainerror.ErrSegmentsAlreadyExist
	}
	r.segments[expenseID] = append([]*entity.Segment(nil), segments...)
	return nil
}

func (r *fakeSegmentRepo) ReplaceByExpense(_ context.Context, expenseID uuid.UUID, segments []*entity.Segment) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.segments[expenseID] = append([]*entity.Segment(nil), segments...)
	return nil
}

func (r *fakeSegmentRepo) Update(_ context.Context, segment *entity.Segment) error {
	if r.failWith != nil {
		return r.failWith
	}
	stored := r.segments[segment.ExpenseID]
	for i, s := range stored {
		if s.ID == segment.ID {
			stored[i] = segment
			return nil
		}
	}
	return domainerror.ErrSegmentNotFound
}

func (r *fakeSegmentRepo) DeleteByExpenseAndID(_ context.Context, expenseID, segmentID uuid.UUID) error {
	if r.failWith != nil {
		return r.failWith
	}
	stored := r.segments[expenseID]
	for i, s := range stored {
		if s.ID == segmentID {
			r.segments[expenseID] = append(stored[:i:i], stored[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrSegmentNotFound
}

// seed stores segments directly, bypassing validation.
func (r *fakeSegmentRepo) seed(expenseID uuid.UUID, segments ...*entity.Segment) {
	r.segments[expenseID] = append(r.segments[expenseID], segments...)
}

// fakeRegistry accepts a fixed set of category names, case-insensitively.
type fakeRegistry struct {
	names map[string]struct{}
}

func newFakeRegistry(names ...string) *fakeRegistry {
	registry := &fakeRegistry{names: make(map[string]struct{})}
	for _, n := range names {
		registry.names[strings.ToLower(n)] = struct{}{}
	}
	return registry
}

func (r *fakeRegistry) IsValidCategory(_ context.Context, name string) (bool, error) {
	_, ok := r.names[strings.ToLower(name)]
	return ok, nil
}

// fakeAuthorizer grants or denies capabilities uniformly.
type fakeAuthorizer struct {
	view   bool
	modify bool
}

func allowAll() *fakeAuthorizer {
	return &fakeAuthorizer{view: true, modify: true}
}

func denyAll() *fakeAuthorizer {
	return &fakeAuthorizer{}
}

func (a *fakeAuthorizer) CanViewExpense(entity.Principal, *entity.Expense) bool   { return a.view }
func (a *fakeAuthorizer) CanModifyExpense(entity.Principal, *entity.Expense) bool { return a.modify }
func (a *fakeAuthorizer) CanManageCategories(entity.Principal) bool               { return a.modify }

// Test fixture helpers.

func testExpense(amount string) *entity.Expense {
	return &entity.Expense{
		ID:        uuid.New(),
		Vendor:    "Acme Travel",
		Amount:    decimal.RequireFromString(amount),
		Type:      entity.ExpenseTypeExpense,
		CreatedBy: uuid.New(),
		Status:    entity.ExpenseStatusSubmitted,
	}
}

func testPrincipal() entity.Principal {
	return entity.Principal{UserID: uuid.New(), Email: "user@example.com", Role: entity.RoleEmployee}
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func decPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

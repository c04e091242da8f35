package adapter

import "github.com/expense-segmentation/backend/internal/domain/entity"

// ExpenseAuthorizer computes capability decisions from requester identity,
// role, and expense ownership. Use cases consume only these yes/no answers
// and never branch on role literals themselves.
type ExpenseAuthorizer interface {
	// CanViewExpense reports whether the principal may read the expense and
	// its segments: the owner, or any manager, finance, or admin user.
	CanViewExpense(principal entity.Principal, expense *entity.Expense) bool

	// CanModifyExpense reports whether the principal may mutate the expense's
	// segment set: the owner, or any finance or admin user.
	CanModifyExpense(principal entity.Principal, expense *entity.Expense) bool

	// CanManageCategories reports whether the principal may create or
	// deactivate registry categories: manager, finance, or admin.
	CanManageCategories(principal entity.Principal) bool
}

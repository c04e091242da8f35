package adapters

import (
	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// expenseAuthorizer implements the adapter.ExpenseAuthorizer interface with
// role and ownership rules.
type expenseAuthorizer struct{}

// NewExpenseAuthorizer creates a new expense authorizer instance.
func NewExpenseAuthorizer() adapter.ExpenseAuthorizer {
	return &expenseAuthorizer{}
}

// CanViewExpense grants view access to the owner and to manager, finance, and
// admin users.
func (a *expenseAuthorizer) CanViewExpense(principal entity.Principal, expense *entity.Expense) bool {
	if expense.CreatedBy == principal.UserID {
		return true
	}
	switch principal.Role {
	case entity.RoleManager, entity.RoleFinance, entity.RoleAdmin:
		return true
	}
	return false
}

// CanModifyExpense grants modify access to the owner and to finance and admin
// users. Managers may view but not modify.
func (a *expenseAuthorizer) CanModifyExpense(principal entity.Principal, expense *entity.Expense) bool {
	if expense.CreatedBy == principal.UserID {
		return true
	}
	switch principal.Role {
	case entity.RoleFinance, entity.RoleAdmin:
		return true
	}
	return false
}

// CanManageCategories grants registry management to manager, finance, and
// admin users.
func (a *expenseAuthorizer) CanManageCategories(principal entity.Principal) bool {
	switch principal.Role {
	case entity.RoleManager, entity.RoleFinance, entity.RoleAdmin:
		return true
	}
	return false
}

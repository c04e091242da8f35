package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseType represents the kind of spend record (expense or invoice).
type ExpenseType string

const (
	ExpenseTypeExpense ExpenseType = "expense"
	ExpenseTypeInvoice ExpenseType = "invoice"
)

// IsValid reports whether the expense type is known.
func (t ExpenseType) IsValid() bool {
	return t == ExpenseTypeExpense || t == ExpenseTypeInvoice
}

// ExpenseStatus represents the approval workflow state of an expense.
type ExpenseStatus string

const (
	ExpenseStatusSubmitted     ExpenseStatus = "submitted"
	ExpenseStatusPendingReview ExpenseStatus = "pending_review"
	ExpenseStatusApproved      ExpenseStatus = "approved"
	ExpenseStatusRejected      ExpenseStatus = "rejected"
)

// IsEditable reports whether segments of an expense in this status may be mutated.
// Approved and rejected expenses are frozen.
func (s ExpenseStatus) IsEditable() bool {
	return s == ExpenseStatusSubmitted || s == ExpenseStatusPendingReview
}

// Expense represents a submitted spend record with a total amount, owner, and status.
type Expense struct {
	ID          uuid.UUID
	Date        time.Time
	Vendor      string
	Amount      decimal.Decimal
	Description string
	Type        ExpenseType
	CreatedBy   uuid.UUID
	Status      ExpenseStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity in the submitted state.
func NewExpense(
	date time.Time,
	vendor string,
	amount decimal.Decimal,
	description string,
	expenseType ExpenseType,
	createdBy uuid.UUID,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		Date:        date,
		Vendor:      vendor,
		Amount:      amount,
		Description: description,
		Type:        expenseType,
		CreatedBy:   createdBy,
		Status:      ExpenseStatusSubmitted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Segment represents one named-category slice of an expense's total amount.
// The percentage is always derived from amount and the parent expense total;
// it is stored for read convenience, never as the source of truth.
type Segment struct {
	ID         uuid.UUID
	ExpenseID  uuid.UUID
	Category   string
	Amount     decimal.Decimal
	Percentage decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSegment creates a new Segment entity for the given expense.
func NewSegment(expenseID uuid.UUID, category string, amount, percentage decimal.Decimal) *Segment {
	now := time.Now().UTC()

	return &Segment{
		ID:         uuid.New(),
		ExpenseID:  expenseID,
		Category:   category,
		Amount:     amount,
		Percentage: percentage,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

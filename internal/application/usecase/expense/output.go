// Package expense contains the expense header use cases.
package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// ExpenseOutput represents one expense header in use case outputs.
type ExpenseOutput struct {
	ID          uuid.UUID
	Date        time.Time
	Vendor      string
	Amount      decimal.Decimal
	Description string
	Type        entity.ExpenseType
	Status      entity.ExpenseStatus
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toOutput(e *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:          e.ID,
		Date:        e.Date,
		Vendor:      e.Vendor,
		Amount:      e.Amount,
		Description: e.Description,
		Type:        e.Type,
		Status:      e.Status,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toOutputs(expenses []*entity.Expense) []*ExpenseOutput {
	outputs := make([]*ExpenseOutput, len(expenses))
	for i, e := range expenses {
		outputs[i] = toOutput(e)
	}
	return outputs
}

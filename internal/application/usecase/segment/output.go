// Package segment contains the expense segmentation engine use cases.
package segment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// SegmentOutput represents one segment in use case outputs.
type SegmentOutput struct {
	ID         uuid.UUID
	ExpenseID  uuid.UUID
	Category   string
	Amount     decimal.Decimal
	Percentage decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// toOutput converts a domain Segment entity to a SegmentOutput.
func toOutput(s *entity.Segment) *SegmentOutput {
	return &SegmentOutput{
		ID:         s.ID,
		ExpenseID:  s.ExpenseID,
		Category:   s.Category,
		Amount:     s.Amount,
		Percentage: s.Percentage,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// toOutputs converts a list of domain Segment entities to SegmentOutputs.
func toOutputs(segments []*entity.Segment) []*SegmentOutput {
	outputs := make([]*SegmentOutput, len(segments))
	for i, s := range segments {
		outputs[i] = toOutput(s)
	}
	return outputs
}

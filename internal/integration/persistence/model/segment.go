package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// SegmentModel represents the expense_segments table in the database.
type SegmentModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ExpenseID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category   string          `gorm:"type:varchar(100);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(19,2);not null"`
	Percentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt  time.Time       `gorm:"not null;index"`
	UpdatedAt  time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Expense *ExpenseModel `gorm:"foreignKey:ExpenseID;references:ID"`
}

// TableName returns the table name for the SegmentModel.
func (SegmentModel) TableName() string {
	return "expense_segments"
}

// ToEntity converts a SegmentModel to a domain Segment entity.
func (m *SegmentModel) ToEntity() *entity.Segment {
	return &entity.Segment{
		ID:         m.ID,
		ExpenseID:  m.ExpenseID,
		Category:   m.Category,
		Amount:     m.Amount,
		Percentage: m.Percentage,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// SegmentFromEntity creates a SegmentModel from a domain Segment entity.
func SegmentFromEntity(segment *entity.Segment) *SegmentModel {
	return &SegmentModel{
		ID:         segment.ID,
		ExpenseID:  segment.ExpenseID,
		Category:   segment.Category,
		Amount:     segment.Amount,
		Percentage: segment.Percentage,
		CreatedAt:  segment.CreatedAt,
		UpdatedAt:  segment.UpdatedAt,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Vendor      string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(19,2);not null"`
	Description string          `gorm:"type:text"`
	Type        string          `gorm:"type:varchar(10);not null"`
	CreatedBy   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Owner *UserModel `gorm:"foreignKey:CreatedBy;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		Date:        m.Date,
		Vendor:      m.Vendor,
		Amount:      m.Amount,
		Description: m.Description,
		Type:        entity.ExpenseType(m.Type),
		CreatedBy:   m.CreatedBy,
		Status:      entity.ExpenseStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		Date:        expense.Date,
		Vendor:      expense.Vendor,
		Amount:      expense.Amount,
		Description: expense.Description,
		Type:        string(expense.Type),
		CreatedBy:   expense.CreatedBy,
		Status:      string(expense.Status),
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-segmentation/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for submitting an expense.
type CreateExpenseRequest struct {
	Date        string          `json:"date" binding:"required"`
	Vendor      string          `json:"vendor" binding:"required,min=1,max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Type        string          `json:"type" binding:"required"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Vendor      string          `json:"vendor"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExpenseListResponse represents a list of expenses in API responses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts an expense use case output to a response DTO.
func ToExpenseResponse(output *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:          output.ID.String(),
		Date:        output.Date.Format("2006-01-02"),
		Vendor:      output.Vendor,
		Amount:      output.Amount,
		Description: output.Description,
		Type:        string(output.Type),
		Status:      string(output.Status),
		CreatedBy:   output.CreatedBy.String(),
		CreatedAt:   output.CreatedAt,
		UpdatedAt:   output.UpdatedAt,
	}
}

// ToExpenseListResponse converts a list of expense outputs to a response DTO.
func ToExpenseListResponse(outputs []*expense.ExpenseOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(outputs))
	for i, o := range outputs {
		expenses[i] = ToExpenseResponse(o)
	}
	return ExpenseListResponse{Expenses: expenses}
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-segmentation/backend/internal/application/usecase/segment"
)

// SegmentRequest represents one segment in create and replace request bodies.
// Percentage is optional; when present it is checked against the value derived
// from amount and expense total.
type SegmentRequest struct {
	Category   string           `json:"category" binding:"required"`
	Amount     decimal.Decimal  `json:"amount" binding:"required"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
}

// CreateSegmentsRequest represents the request body for batch segment creation.
type CreateSegmentsRequest struct {
	Segments []SegmentRequest `json:"segments" binding:"required"`
}

// ReplaceSegmentsRequest represents the request body for segment set replacement.
type ReplaceSegmentsRequest struct {
	Segments []SegmentRequest `json:"segments" binding:"required"`
}

// UpdateSegmentRequest represents the request body for updating one segment.
type UpdateSegmentRequest struct {
	Category   string           `json:"category" binding:"required"`
	Amount     decimal.Decimal  `json:"amount" binding:"required"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
}

// SegmentResponse represents a segment in API responses.
type SegmentResponse struct {
	ID         string          `json:"id"`
	ExpenseID  string          `json:"expense_id"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// SegmentListResponse represents a segment set in API responses.
type SegmentListResponse struct {
	Segments []SegmentResponse `json:"segments"`
}

// ToSegmentInput converts a SegmentRequest to a use case SegmentInput.
func (r SegmentRequest) ToSegmentInput() segment.SegmentInput {
	return segment.SegmentInput{
		Category:   r.Category,
		Amount:     r.Amount,
		Percentage: r.Percentage,
	}
}

// ToSegmentInputs converts segment requests to use case inputs.
func ToSegmentInputs(requests []SegmentRequest) []segment.SegmentInput {
	inputs := make([]segment.SegmentInput, len(requests))
	for i, r := range requests {
		inputs[i] = r.ToSegmentInput()
	}
	return inputs
}

// ToSegmentResponse converts a segment use case output to a response DTO.
func ToSegmentResponse(output *segment.SegmentOutput) SegmentResponse {
	return SegmentResponse{
		ID:         output.ID.String(),
		ExpenseID:  output.ExpenseID.String(),
		Category:   output.Category,
		Amount:     output.Amount,
		Percentage: output.Percentage,
		CreatedAt:  output.CreatedAt,
		UpdatedAt:  output.UpdatedAt,
	}
}

// ToSegmentListResponse converts a list of segment outputs to a response DTO.
func ToSegmentListResponse(outputs []*segment.SegmentOutput) SegmentListResponse {
	segments := make([]SegmentResponse, len(outputs))
	for i, o := range outputs {
		segments[i] = ToSegmentResponse(o)
	}
	return SegmentListResponse{Segments: segments}
}

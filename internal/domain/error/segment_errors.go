// Package error defines domain-specific errors for the expense segmentation application.
package error

import "errors"

// Segment domain errors.
var (
	// ErrSegmentNotFound is returned when a segment is not found under the given expense.
	ErrSegmentNotFound = errors.New("segment not found")

	// ErrSegmentsAlreadyExist is returned when creating segments for an expense that already has some.
	ErrSegmentsAlreadyExist = errors.New("expense already has segments")

	// ErrEmptySegmentSet is returned when a batch operation receives no segments.
	ErrEmptySegmentSet = errors.New("segment set cannot be empty")

	// ErrDuplicateSegmentCategory is returned when two segments of one expense share a category.
	ErrDuplicateSegmentCategory = errors.New("segment categories must be unique within an expense")

	// ErrUnknownSegmentCategory is returned when a segment references a category absent from the registry.
	ErrUnknownSegmentCategory = errors.New("category not found in registry")

	// ErrSegmentAmountOutOfRange is returned when a segment amount is not positive or exceeds the expense total.
	ErrSegmentAmountOutOfRange = errors.New("segment amount out of range")

	// ErrSegmentSumMismatch is returned when segment amounts do not reconcile to the expense total.
	ErrSegmentSumMismatch = errors.New("segment amounts do not sum to expense total")

	// ErrSegmentPercentageMismatch is returned when a supplied percentage disagrees with the derived one.
	ErrSegmentPercentageMismatch = errors.New("supplied percentage does not match derived percentage")

	// ErrExpenseNotEditable is returned when segments of a frozen expense are mutated.
	ErrExpenseNotEditable = errors.New("expense is not in an editable status")

	// ErrNotAuthorizedForSegments is returned when the requester lacks the needed capability.
	ErrNotAuthorizedForSegments = errors.New("not authorized to access segments of this expense")

	// ErrSegmentStoreConflict is returned when the backing store reports a transient
	// conflict or timeout. The caller may retry; the engine never retries internally.
	ErrSegmentStoreConflict = errors.New("segment store conflict")
)

// SegmentErrorCode defines error codes for segment errors.
// Format: SEG-XXYYYY where XX is category and YYYY is specific error.
type SegmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSegmentNotFound         SegmentErrorCode = "SEG-010001"
	ErrCodeSegmentsAlreadyExist    SegmentErrorCode = "SEG-010002"
	ErrCodeEmptySegmentSet         SegmentErrorCode = "SEG-010003"
	ErrCodeDuplicateCategory       SegmentErrorCode = "SEG-010004"
	ErrCodeUnknownCategory         SegmentErrorCode = "SEG-010005"
	ErrCodeAmountOutOfRange        SegmentErrorCode = "SEG-010006"
	ErrCodeSumMismatch             SegmentErrorCode = "SEG-010007"
	ErrCodePercentageMismatch      SegmentErrorCode = "SEG-010008"
	ErrCodeFirstSegmentNotTotal    SegmentErrorCode = "SEG-010009"
	ErrCodeExpenseNotEditable      SegmentErrorCode = "SEG-010010"
	ErrCodeNotAuthorizedSegments   SegmentErrorCode = "SEG-010011"
	ErrCodeSegmentExpenseNotFound  SegmentErrorCode = "SEG-010012"

	// Store errors (02XXXX), retryable by the caller
	ErrCodeSegmentStoreConflict SegmentErrorCode = "SEG-020001"
)

// SegmentError represents a segment error with code and message.
type SegmentError struct {
	Code    SegmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SegmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SegmentError) Unwrap() error {
	return e.Err
}

// NewSegmentError creates a new SegmentError with the given code and message.
func NewSegmentError(code SegmentErrorCode, message string, err error) *SegmentError {
	return &SegmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

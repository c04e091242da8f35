package error

import "errors"

// Category registry domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the registry.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when creating a category whose name is taken.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameRequired is returned when a category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrNotAuthorizedForCategories is returned when the requester may not manage categories.
	ErrNotAuthorizedForCategories = errors.New("not authorized to manage categories")
)

// CategoryErrorCode defines error codes for category registry errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound        CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameExists      CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameRequired    CategoryErrorCode = "CAT-010003"
	ErrCodeNotAuthorizedCategories CategoryErrorCode = "CAT-010004"
)

// CategoryError represents a category registry error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a registry-controlled spending label (e.g. "Travel", "Meals").
// Segments may only reference active categories.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
}

// NewCategory creates a new active Category entity.
func NewCategory(name, description string) *Category {
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}
}

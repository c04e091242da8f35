// Package category contains the category registry use cases.
package category

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// CategoryOutput represents one registry category in use case outputs.
type CategoryOutput struct {
	ID          uuid.UUID
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
}

func toOutput(c *entity.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
	}
}

func toOutputs(categories []*entity.Category) []*CategoryOutput {
	outputs := make([]*CategoryOutput, len(categories))
	for i, c := range categories {
		outputs[i] = toOutput(c)
	}
	return outputs
}

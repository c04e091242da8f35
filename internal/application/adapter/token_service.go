package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/domain/entity"
)

// TokenClaims represents validated token claims.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      entity.Role
	ExpiresAt time.Time
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// GenerateAccessToken generates a signed access token carrying the user's
	// ID, email, and role.
	GenerateAccessToken(ctx context.Context, user *entity.User) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/application/adapter"
	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of a successful login.
type LoginUserOutput struct {
	AccessToken string
	UserID      uuid.UUID
	Name        string
	Email       string
	Role        entity.Role
}

// LoginUserUseCase authenticates a user and issues an access token.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the login. Unknown emails and wrong passwords produce the
// same error so the endpoint does not leak which emails are registered.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, invalidCredentials(err)
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	if !user.Active {
		return nil, invalidCredentials(domainerror.ErrInvalidCredentials)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials(err)
	}

	accessToken, err := uc.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	slog.Info("User logged in", "userID", user.ID, "role", user.Role)

	return &LoginUserOutput{
		AccessToken: accessToken,
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
	}, nil
}

func invalidCredentials(err error) error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		err,
	)
}

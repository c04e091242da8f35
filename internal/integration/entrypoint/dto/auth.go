package dto

import (
	"github.com/expense-segmentation/backend/internal/application/usecase/auth"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RegisterResponse represents the response for user registration.
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// LoginResponse represents the response for user login.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// ToRegisterResponse converts a register use case output to a response DTO.
func ToRegisterResponse(output *auth.RegisterUserOutput) RegisterResponse {
	return RegisterResponse{
		User: UserResponse{
			ID:    output.UserID.String(),
			Name:  output.Name,
			Email: output.Email,
			Role:  string(output.Role),
		},
	}
}

// ToLoginResponse converts a login use case output to a response DTO.
func ToLoginResponse(output *auth.LoginUserOutput) LoginResponse {
	return LoginResponse{
		AccessToken: output.AccessToken,
		User: UserResponse{
			ID:    output.UserID.String(),
			Name:  output.Name,
			Email: output.Email,
			Role:  string(output.Role),
		},
	}
}

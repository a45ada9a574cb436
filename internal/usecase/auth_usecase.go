// Package usecase defines the application use cases and their inputs.
// Implementations live in the impl package.
package usecase

import (
	"context"

	"solarjuice/internal/domain/entity"
	"solarjuice/internal/domain/service"

	"github.com/google/uuid"
)

// SignupInput represents the input for creating an account
type SignupInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
}

// LoginInput represents the input for signing in under one role
type LoginInput struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
}

// AuthResult is returned by every successful sign-in
type AuthResult struct {
	User        *entity.User       `json:"user"`
	Tokens      *service.TokenPair `json:"tokens"`
	LandingPath string             `json:"landing_path"` // Dashboard for the user's role
}

// AuthUsecase defines account and session use cases
type AuthUsecase interface {
	// Signup creates a customer or shopkeeper account and signs it in.
	Signup(ctx context.Context, input *SignupInput) (*AuthResult, error)

	// Login signs in an existing account. The role must match the account's role.
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)

	// Refresh exchanges a refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)

	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

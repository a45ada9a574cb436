package service

import (
	"time"

	"solarjuice/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in Claims.Type.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID   `json:"uid"`
	Role   entity.Role `json:"role"`
	Type   string      `json:"typ"`
	jwt.RegisteredClaims
}

// TokenPair is what a successful sign-in returns.
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, role entity.Role) (*TokenPair, error)

	// ValidateAccessToken parses an access token and rejects refresh tokens.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken parses a refresh token and rejects access tokens.
	ValidateRefreshToken(tokenString string) (*Claims, error)
}

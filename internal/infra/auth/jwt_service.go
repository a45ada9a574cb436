package auth

import (
	"time"

	"solarjuice/config"
	"solarjuice/internal/domain/entity"
	"solarjuice/internal/domain/service"
	"solarjuice/internal/errors"

	"github.com/facebookgo/clock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "solarjuice"

// ErrInvalidToken is returned for any token that fails parsing, signature, expiry or type checks.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	cfg           config.AuthConfig
	clock         clock.Clock
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, clk clock.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		cfg:           cfg.Auth,
		clock:         clk,
	}, nil
}

func (s *jwtService) GenerateTokens(userID uuid.UUID, role entity.Role) (*service.TokenPair, error) {
	now := s.clock.Now()
	accessExp := now.Add(s.cfg.AccessTTL)
	refreshExp := now.Add(s.cfg.RefreshTTL)

	access, err := s.sign(userID, role, service.TokenTypeAccess, accessExp, s.accessSecret)
	if err != nil {
		return nil, err
	}

	refresh, err := s.sign(userID, role, service.TokenTypeRefresh, refreshExp, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, s.accessSecret, service.TokenTypeAccess)
}

func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, s.refreshSecret, service.TokenTypeRefresh)
}

func (s *jwtService) sign(userID uuid.UUID, role entity.Role, tokenType string, exp time.Time, secret []byte) (string, error) {
	claims := service.Claims{
		UserID: userID,
		Role:   role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(s.clock.Now()),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func (s *jwtService) parse(tokenString string, secret []byte, tokenType string) (*service.Claims, error) {
	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	if !token.Valid || claims.Type != tokenType || !claims.Role.IsValid() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

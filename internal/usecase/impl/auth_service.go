package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	deliverycontext "solarjuice/internal/delivery/context"
	"solarjuice/internal/domain/entity"
	domainerrors "solarjuice/internal/domain/errors"
	"solarjuice/internal/domain/repository"
	"solarjuice/internal/domain/service"
	"solarjuice/internal/errors"
	"solarjuice/internal/usecase"

	"github.com/facebookgo/clock"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const minPasswordLength = 6

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	clock        clock.Clock
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Clock        clock.Clock
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

// Signup creates a customer or shopkeeper. Admin accounts are seeded only.
func (s *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthResult, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}
	if input.Role != entity.RoleCustomer && input.Role != entity.RoleShopkeeper {
		return nil, domainerrors.ErrRoleNotAllowed.WithDetails("only customer and shopkeeper accounts can sign up")
	}

	name := strings.TrimSpace(input.Name)
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 6 characters")
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, translate(err, "find user")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Role:         input.Role,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, translate(err, "create user")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("user signed up",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return s.signIn(user)
}

// Login finds the account by email and role together, so a shopkeeper cannot
// sign in to the customer dashboard with the same credentials.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmailAndRole(ctx, strings.TrimSpace(input.Email), input.Role)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, translate(err, "find user")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.signIn(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthResult, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails("invalid refresh token")
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, translate(err, "find user")
	}

	return s.signIn(user)
}

func (s *authService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err, "find user")
	}

	return user, nil
}

func (s *authService) signIn(user *entity.User) (*usecase.AuthResult, error) {
	tokens, err := s.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "generate tokens")
	}

	return &usecase.AuthResult{
		User:        user,
		Tokens:      tokens,
		LandingPath: user.Role.LandingPath(),
	}, nil
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil || addr.Address != strings.TrimSpace(raw) {
		return "", domainerrors.ErrValidationFailed.WithDetails("a valid email is required")
	}

	return strings.ToLower(addr.Address), nil
}

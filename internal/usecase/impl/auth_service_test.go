package impl

import (
	"testing"
	"time"

	"solarjuice/config"
	"solarjuice/internal/domain/entity"
	domainerrors "solarjuice/internal/domain/errors"
	"solarjuice/internal/infra/auth"
	"solarjuice/internal/infra/persistence/memory"
	"solarjuice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) (usecase.AuthUsecase, *testEnv) {
	t.Helper()

	env := newTestEnv(t)
	tokens, err := auth.NewJWTService(&config.Config{
		SecretKey: config.SecretKeyConfig{Access: "access-secret", Refresh: "refresh-secret"},
		Auth:      config.AuthConfig{AccessTTL: 15 * time.Minute, RefreshTTL: 24 * time.Hour},
	}, env.clock)
	require.NoError(t, err)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     env.users,
		Hasher:       plainHasher{},
		TokenService: tokens,
		Clock:        env.clock,
		Logger:       env.logger,
	})

	return svc, env
}

func TestAuthService_Signup(t *testing.T) {
	svc, env := createTestAuthService(t)

	result, err := svc.Signup(t.Context(), &usecase.SignupInput{
		Name:     "  New Customer ",
		Email:    "New@Example.com",
		Password: "secret1",
		Role:     entity.RoleCustomer,
	})
	require.NoError(t, err)

	assert.Equal(t, "New Customer", result.User.Name)
	assert.Equal(t, "new@example.com", result.User.Email)
	assert.Equal(t, "/customer", result.LandingPath)
	assert.Equal(t, env.clock.Now(), result.User.CreatedAt)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)

	stored, err := env.users.FindByID(t.Context(), result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:secret1", stored.PasswordHash)
}

func TestAuthService_Signup_Errors(t *testing.T) {
	svc, _ := createTestAuthService(t)

	tests := []struct {
		name  string
		input usecase.SignupInput
		want  error
	}{
		{
			name:  "admin role",
			input: usecase.SignupInput{Name: "A", Email: "a@example.com", Password: "secret1", Role: entity.RoleAdmin},
			want:  domainerrors.ErrRoleNotAllowed,
		},
		{
			name:  "duplicate email across roles",
			input: usecase.SignupInput{Name: "A", Email: "customer1@example.com", Password: "secret1", Role: entity.RoleShopkeeper},
			want:  domainerrors.ErrUserAlreadyExists,
		},
		{
			name:  "bad email",
			input: usecase.SignupInput{Name: "A", Email: "not-an-email", Password: "secret1", Role: entity.RoleCustomer},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "short password",
			input: usecase.SignupInput{Name: "A", Email: "a@example.com", Password: "123", Role: entity.RoleCustomer},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "blank name",
			input: usecase.SignupInput{Name: "  ", Email: "a@example.com", Password: "secret1", Role: entity.RoleCustomer},
			want:  domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(t.Context(), &tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_NilInput(t *testing.T) {
	svc, _ := createTestAuthService(t)

	_, err := svc.Signup(t.Context(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.Login(t.Context(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := createTestAuthService(t)

	result, err := svc.Login(t.Context(), &usecase.LoginInput{
		Email:    "shop1@example.com",
		Password: "password",
		Role:     entity.RoleShopkeeper,
	})
	require.NoError(t, err)
	assert.Equal(t, memory.SeedShopkeeper1ID, result.User.ID)
	assert.Equal(t, "/shopkeeper", result.LandingPath)

	t.Run("wrong role", func(t *testing.T) {
		_, err := svc.Login(t.Context(), &usecase.LoginInput{
			Email:    "shop1@example.com",
			Password: "password",
			Role:     entity.RoleCustomer,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(t.Context(), &usecase.LoginInput{
			Email:    "shop1@example.com",
			Password: "nope",
			Role:     entity.RoleShopkeeper,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	svc, env := createTestAuthService(t)

	login, err := svc.Login(t.Context(), &usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "password",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	env.clock.Add(time.Hour)

	refreshed, err := svc.Refresh(t.Context(), login.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, memory.SeedAdminID, refreshed.User.ID)
	assert.Equal(t, "/admin", refreshed.LandingPath)
	assert.True(t, refreshed.Tokens.AccessExpiresAt.After(login.Tokens.AccessExpiresAt))

	_, err = svc.Refresh(t.Context(), login.Tokens.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	svc, _ := createTestAuthService(t)

	user, err := svc.GetCurrentUser(t.Context(), memory.SeedCustomer2ID)
	require.NoError(t, err)
	assert.Equal(t, "customer2@example.com", user.Email)

	_, err = svc.GetCurrentUser(t.Context(), memory.SeedShop1ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

package handler

import (
	"log/slog"
	"net/http"

	"solarjuice/internal/delivery/api/response"
	deliverycontext "solarjuice/internal/delivery/context"
	"solarjuice/internal/domain/entity"
	"solarjuice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves signup, login and the current user
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignupRequest represents the request body for creating an account
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=customer shopkeeper"`
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=customer shopkeeper admin"`
}

// RefreshRequest represents the request body for renewing tokens
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// MeResponse is the signed-in user and where their dashboard is
type MeResponse struct {
	User        *entity.User `json:"user"`
	LandingPath string       `json:"landing_path"`
}

// Signup handles account creation
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return response.ValidationError(c, err.Error())
	}

	result, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// Login handles sign in under one role
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return response.ValidationError(c, err.Error())
	}

	result, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("user logged in",
		slog.String("user_id", result.User.ID.String()),
		slog.String("role", result.User.Role.String()),
	)

	return response.Success(c, http.StatusOK, result)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Me returns the authenticated user
func (h *AuthHandler) Me(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}

	user, err := h.authUC.GetCurrentUser(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MeResponse{
		User:        user,
		LandingPath: user.Role.LandingPath(),
	})
}

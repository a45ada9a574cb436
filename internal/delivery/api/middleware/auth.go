package middleware

import (
	"slices"
	"strings"

	"solarjuice/internal/delivery/api/response"
	deliverycontext "solarjuice/internal/delivery/context"
	"solarjuice/internal/domain/entity"
	"solarjuice/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HeaderXLandingPath tells a client turned away by RequireRole where the
// caller's own dashboard lives.
const HeaderXLandingPath = "X-Landing-Path"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the caller in the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		deliverycontext.SetActor(c, deliverycontext.Actor{
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		return next(c)
	}
}

// RequireRole admits only the given roles. It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := deliverycontext.GetActor(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}

			if !slices.Contains(roles, actor.Role) {
				c.Response().Header().Set(HeaderXLandingPath, actor.Role.LandingPath())
				return response.Forbidden(c, "FORBIDDEN", "Permission denied for role "+actor.Role.String())
			}

			return next(c)
		}
	}
}

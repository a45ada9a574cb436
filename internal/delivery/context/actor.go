package context

import (
	"log/slog"

	"solarjuice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Actor is the authenticated caller of a request.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// SetActor stores the authenticated caller in echo.Context and tags the
// request-scoped logger, when present, with the caller's id and role.
func SetActor(c echo.Context, actor Actor) {
	c.Set(keyActor, actor)

	ctx := c.Request().Context()
	if logger := GetLogger(ctx); logger != nil {
		logger = logger.With(
			slog.String("user_id", actor.UserID.String()),
			slog.String("role", actor.Role.String()),
		)
		c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger)))
	}
}

// GetActor returns the authenticated caller, if any.
func GetActor(c echo.Context) (Actor, bool) {
	actor, ok := c.Get(keyActor).(Actor)

	return actor, ok
}

// Package handler contains the HTTP handlers for the API.
package handler

import (
	"net/http"
	"strconv"

	"solarjuice/internal/delivery/api/response"
	"solarjuice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request body into req and runs its validate tags.
// On failure the error response has already been written and ok is false.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err.Error())
	}

	return true, nil
}

// unauthenticated is written when a protected handler runs without a caller.
func unauthenticated(c echo.Context) error {
	return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
}

// pathID parses the named path parameter as a uuid.
func pathID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}

func invalidID(c echo.Context, name string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+name)
}

// queryLocation reads ?lat=&lng=. Missing or unparsable values give nil so
// the use case falls back to its default location.
func queryLocation(c echo.Context) *entity.Location {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return nil
	}

	return &entity.Location{Lat: lat, Lng: lng}
}

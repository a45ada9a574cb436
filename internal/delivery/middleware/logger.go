package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"solarjuice/config"
	deliverycontext "solarjuice/internal/delivery/context"
	domainerrors "solarjuice/internal/domain/errors"
	"solarjuice/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs every request when debug is enabled, and failed
// requests always.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		if m.debug || err != nil || c.Response().Status >= http.StatusInternalServerError {
			m.logRequest(c, start, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	status := res.Status
	if err != nil && !res.Committed {
		// The error handler has not written the response yet.
		status = statusOf(err)
	}

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if actor, ok := deliverycontext.GetActor(c); ok {
		fields = append(fields, slog.String("user_id", actor.UserID.String()), slog.String("role", actor.Role.String()))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}

// statusOf predicts the status the error handler will write for err.
func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

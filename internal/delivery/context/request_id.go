// Package context carries request-scoped values between delivery and use case layers.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID carries the request id in both directions.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echo.Context keys
const (
	keyRequestID = "request_id"
	keyActor     = "actor"
)

// SetRequestID records the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(keyRequestID, requestID)
}

// GetRequestID returns the id stored by SetRequestID. Requests that never
// passed the request id middleware get a fresh one so error bodies always
// carry an id.
func GetRequestID(c echo.Context) string {
	if id, _ := c.Get(keyRequestID).(string); id != "" {
		return id
	}

	return uuid.NewString()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault is GetLogger with a fallback for background work such
// as simulator ticks.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

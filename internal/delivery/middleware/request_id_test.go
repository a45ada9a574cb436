package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "solarjuice/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewRequestIDMiddleware(logger)

	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "reuses client id", incoming: "abc-123", reuse: true},
		{name: "generates when missing", incoming: "", reuse: false},
		{name: "replaces oversized id", incoming: strings.Repeat("x", 200), reuse: false},
		{name: "replaces id with control characters", incoming: "bad\nid", reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenCtxID string
			var hasLogger bool
			handler := mw.Process(func(c echo.Context) error {
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, seenCtxID)
			assert.True(t, hasLogger)
			if tt.reuse {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

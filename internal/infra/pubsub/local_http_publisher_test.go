package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solarjuice/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.DomainEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        service.EventOrderCreated,
		AggregateID: "order-1",
		OccurredAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Attributes:  map[string]string{"shop_id": "shop-1"},
	}

	require.NoError(t, publisher.Publish(t.Context(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "2024-01-02T03:04:05Z", received.Message.PublishTime)
	assert.Equal(t, service.EventOrderCreated, received.Message.Attributes["event_type"])
	assert.Equal(t, "shop-1", received.Message.Attributes["shop_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "order-1", decoded.AggregateID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.Publish(t.Context(), &service.DomainEvent{EventID: "evt-2"})
	assert.ErrorContains(t, err, "503")
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(discardLogger())

	assert.NoError(t, publisher.Publish(t.Context(), &service.DomainEvent{EventID: "evt-3"}))
	assert.NoError(t, publisher.Close())
}

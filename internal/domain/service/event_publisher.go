package service

import (
	"context"
	"time"
)

// Event types published by the use cases.
const (
	EventOrderCreated          = "order.created"
	EventOrderStatusChanged    = "order.status_changed"
	EventRegistrationSubmitted = "registration.submitted"
	EventRegistrationReviewed  = "registration.reviewed"
)

// DomainEvent is a state change other systems may subscribe to.
type DomainEvent struct {
	RequestID   string            `json:"request_id,omitempty"` // For distributed tracing
	EventID     string            `json:"event_id"`
	Type        string            `json:"type"`
	AggregateID string            `json:"aggregate_id"` // Id of the order or registration that changed
	OccurredAt  time.Time         `json:"occurred_at"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends the event. Delivery is at most once.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

package service

import (
	"context"

	"github.com/google/uuid"
)

// Toast is a short message surfaced to one user.
type Toast struct {
	RecipientID uuid.UUID
	Title       string
	Description string
	Data        map[string]string
}

// Notifier delivers toasts. Delivery is fire-and-forget: there is no
// acknowledgement and callers never retry.
type Notifier interface {
	Notify(ctx context.Context, toast *Toast) error
}

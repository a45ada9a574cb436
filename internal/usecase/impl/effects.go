// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "solarjuice/internal/delivery/context"
	domainerrors "solarjuice/internal/domain/errors"
	"solarjuice/internal/domain/repository"
	"solarjuice/internal/domain/service"
	"solarjuice/internal/errors"

	"github.com/facebookgo/clock"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// EffectsParams holds dependencies for outbound side effects, injected by Fx.
type EffectsParams struct {
	fx.In

	Notifier  service.Notifier
	Publisher service.EventPublisher
	Clock     clock.Clock
	Logger    *slog.Logger
}

// Effects sends toasts and domain events. Both are best effort: failures
// are logged and never fail the operation that triggered them.
type Effects struct {
	notifier  service.Notifier
	publisher service.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

// NewEffects is the constructor for Effects.
func NewEffects(params EffectsParams) *Effects {
	return &Effects{
		notifier:  params.Notifier,
		publisher: params.Publisher,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func (e *Effects) toast(ctx context.Context, recipientID uuid.UUID, title, description string, data map[string]string) {
	err := e.notifier.Notify(ctx, &service.Toast{
		RecipientID: recipientID,
		Title:       title,
		Description: description,
		Data:        data,
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("failed to deliver toast",
			slog.String("recipient_id", recipientID.String()),
			slog.String("title", title),
			slog.Any("error", err),
		)
	}
}

func (e *Effects) publish(ctx context.Context, eventType string, aggregateID uuid.UUID, attributes map[string]string) {
	event := &service.DomainEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		Type:        eventType,
		AggregateID: aggregateID.String(),
		OccurredAt:  e.clock.Now(),
		Attributes:  attributes,
	}

	if err := e.publisher.Publish(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("failed to publish event",
			slog.String("event_type", eventType),
			slog.String("aggregate_id", event.AggregateID),
			slog.Any("error", err),
		)
	}
}

// translate maps repository sentinels onto application errors.
// Errors that already are application errors pass through unchanged.
func translate(err error, message string) error {
	var appErr domainerrors.AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrUserEmailTaken):
		return domainerrors.ErrUserAlreadyExists
	case errors.Is(err, repository.ErrShopNotFound):
		return domainerrors.ErrShopNotFound
	case errors.Is(err, repository.ErrMachineNotFound):
		return domainerrors.ErrMachineNotFound
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrOrderNotFound
	case errors.Is(err, repository.ErrRegistrationNotFound):
		return domainerrors.ErrRegistrationNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(err, message)
	default:
		return domainerrors.NewStoreExecuteError(err, message)
	}
}

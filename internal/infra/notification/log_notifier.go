// Package notification delivers toasts to users.
package notification

import (
	"context"
	"log/slog"

	"solarjuice/internal/domain/service"
)

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier writes every toast to the logger. It never fails.
func NewLogNotifier(logger *slog.Logger) service.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, toast *service.Toast) error {
	n.logger.InfoContext(ctx, "toast",
		slog.String("recipient_id", toast.RecipientID.String()),
		slog.String("title", toast.Title),
		slog.String("description", toast.Description),
	)

	return nil
}

package notification

import (
	"context"
	"log/slog"

	"solarjuice/internal/domain/service"
	"solarjuice/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messageSender is the part of the FCM client the notifier uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseNotifier struct {
	client messageSender
	logger *slog.Logger
}

// NewFirebaseNotifier creates a notifier sending FCM topic messages
func NewFirebaseNotifier(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.Notifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseNotifier{client: client, logger: logger}, nil
}

// UserTopic is the FCM topic every client of a user subscribes to.
func UserTopic(toast *service.Toast) string {
	return "user-" + toast.RecipientID.String()
}

// Notify sends the toast as a notification to the recipient's topic
func (n *firebaseNotifier) Notify(ctx context.Context, toast *service.Toast) error {
	message := &messaging.Message{
		Topic: UserTopic(toast),
		Notification: &messaging.Notification{
			Title: toast.Title,
			Body:  toast.Description,
		},
		Data: toast.Data,
	}

	messageID, err := n.client.Send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	n.logger.Debug("toast sent",
		slog.String("message_id", messageID),
		slog.String("recipient_id", toast.RecipientID.String()),
	)

	return nil
}

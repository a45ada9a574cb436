package notification

import (
	"context"
	"log/slog"

	"solarjuice/config"
	"solarjuice/internal/domain/constants"
	"solarjuice/internal/domain/service"
	"solarjuice/internal/errors"

	"go.uber.org/fx"
)

// NotifierParams holds dependencies for Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier selects the toast provider from configuration
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Notifier

	switch cfg.Provider {
	case constants.NotifierProviderLog, "":
		return NewLogNotifier(params.Logger), nil
	case constants.NotifierProviderFirebase:
		params.Logger.Info("Using Firebase notifier", slog.String("project_id", cfg.ProjectID))

		return NewFirebaseNotifier(params.Ctx, cfg.ProjectID, cfg.CredentialsPath, params.Logger)
	default:
		return nil, errors.Errorf("unknown notifier provider: %s", cfg.Provider)
	}
}

// Module provides the notifier FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)

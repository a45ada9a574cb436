package main

import (
	"context"
	"log/slog"
	"os"

	"solarjuice/config"
	"solarjuice/internal/delivery"
	"solarjuice/internal/delivery/api"
	apimiddleware "solarjuice/internal/delivery/api/middleware"
	"solarjuice/internal/delivery/api/router/handler"
	"solarjuice/internal/delivery/simulator"
	"solarjuice/internal/domain/constants"
	"solarjuice/internal/domain/service"
	"solarjuice/internal/errors"
	"solarjuice/internal/infra/auth"
	logs "solarjuice/internal/infra/log"
	"solarjuice/internal/infra/notification"
	"solarjuice/internal/infra/persistence/memory"
	"solarjuice/internal/infra/pubsub"
	"solarjuice/internal/infra/qrcode"
	"solarjuice/internal/usecase/impl"

	"github.com/facebookgo/clock"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Store  *memory.Store
	Hasher service.PasswordHasher
	Clock  clock.Clock
	Logger *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedStore,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newClock,
			memory.NewStore,
		),
		notification.Module,
		pubsub.Module,
	)
}

func newClock() clock.Clock {
	return clock.New()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewUserRepository,
			memory.NewShopRepository,
			memory.NewMachineRepository,
			memory.NewOrderRepository,
			memory.NewRegistrationRepository,
			memory.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEffects,
			impl.NewAuthService,
			impl.NewShopService,
			impl.NewMachineService,
			impl.NewOrderService,
			impl.NewRegistrationService,
			impl.NewSimulationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewShopHandler,
			handler.NewMachineHandler,
			handler.NewOrderHandler,
			handler.NewRegistrationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				simulator.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedStore loads the demo data set outside production.
func seedStore(params seedParams) error {
	if !params.Config.Seed.Enabled {
		return nil
	}
	if params.Config.Env.Env == constants.EnvProduction {
		params.Logger.Warn("Seed data is disabled in production")

		return nil
	}

	if err := memory.Seed(params.Ctx, params.Store, params.Hasher, params.Clock, params.Config.Seed.DemoPassword); err != nil {
		return errors.Wrap(err, "seed store")
	}
	params.Logger.Info("Seeded demo data")

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"coach/config"
	"coach/internal/delivery"
	"coach/internal/delivery/api"
	apimiddleware "coach/internal/delivery/api/middleware"
	"coach/internal/delivery/api/router/handler"
	"coach/internal/domain/service"
	"coach/internal/infra/auth"
	"coach/internal/infra/garmin"
	logs "coach/internal/infra/log"
	"coach/internal/infra/pubsub"
	"coach/internal/infra/secrets"
	"coach/internal/infra/tokenstore"
	"coach/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newServerApp wires the long-running HTTP service.
func newServerApp() *fx.App {
	return fx.New(
		injectInfra(logs.New),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	)
}

// injectInfra provides the config, the logger built by newLogger and the
// root context.
func injectInfra(newLogger any) fx.Option {
	return fx.Provide(
		config.New,
		newLogger,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				secrets.NewCache,
				fx.As(new(service.SecretCache)),
			),
			secrets.NewSecretManagerStore,
			secrets.NewMetadataProjectSource,
			tokenstore.New,
			garmin.NewClientFactory,
			auth.NewJWTService,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
			impl.NewSessionService,
			impl.NewMetricsService,
			impl.NewBriefService,
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
			handler.NewSessionHandler,
			handler.NewMetricsHandler,
			handler.NewBriefHandler,
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
		),
	)
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

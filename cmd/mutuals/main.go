package main

import (
	"context"
	"log/slog"
	"os"

	"mutuals/config"
	"mutuals/internal/delivery"
	"mutuals/internal/delivery/api"
	"mutuals/internal/delivery/api/middleware"
	"mutuals/internal/delivery/api/router/handler"
	"mutuals/internal/infra/auth"
	logs "mutuals/internal/infra/log"
	"mutuals/internal/infra/persistence"
	"mutuals/internal/infra/pubsub"
	"mutuals/internal/infra/qrcode"
	"mutuals/internal/infra/sms"
	"mutuals/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		clockwork.NewRealClock,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewSessionVerifier,
			sms.NewSMSNotifier,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewDiscoveryService,
			impl.NewLikeService,
			impl.NewContactService,
			impl.NewNotificationService,
			impl.NewProfileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSearchHandler,
			handler.NewLikeHandler,
			handler.NewContactHandler,
			handler.NewProfileHandler,
			handler.NewNotificationHandler,
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

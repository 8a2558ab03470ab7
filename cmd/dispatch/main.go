package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dispatch/config"
	"dispatch/internal/delivery"
	"dispatch/internal/delivery/http"
	"dispatch/internal/delivery/http/middleware"
	"dispatch/internal/delivery/http/router/handler"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/infra/auth"
	"dispatch/internal/infra/blob"
	logs "dispatch/internal/infra/log"
	"dispatch/internal/infra/persistence/postgres"
	"dispatch/internal/infra/pubsub"
	"dispatch/internal/infra/qrcode"
	"dispatch/internal/usecase"
	"dispatch/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeliveryRepository,
			postgres.NewRiderRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
			newImageStore,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newImageStore opens the blob bucket holding package images
func newImageStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.ImageStore, error) {
	if cfg.ImageStore == nil {
		return nil, fmt.Errorf("imageStore configuration is required")
	}

	store, err := blob.NewBucketImageStore(ctx, cfg.ImageStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open image bucket: %w", err)
	}

	return store, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatchService,
			newDeliveryService,
			impl.NewRiderService,
		),
	)
}

// newDeliveryService builds the delivery lifecycle usecase from configuration
func newDeliveryService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	dispatchUC usecase.DispatchUsecase,
	publisher service.EventPublisher,
	qrcodeSvc service.QRCodeService,
	imageStore service.ImageStore,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return impl.NewDeliveryService(
		txManager,
		dispatchUC,
		publisher,
		qrcodeSvc,
		imageStore,
		cfg.Dispatch.CodeAttempts,
		logger,
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
			handler.NewDeliveryHandler,
			handler.NewRiderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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

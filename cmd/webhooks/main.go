package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/config"
	"github.com/piresc/dispatch/internal/pkg/health"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/metrics"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	natspkg "github.com/piresc/dispatch/internal/pkg/nats"
	"github.com/piresc/dispatch/internal/pkg/server"
	"github.com/piresc/dispatch/internal/pkg/webhook"
	"github.com/piresc/dispatch/services/webhooks/handler"
	natsHandler "github.com/piresc/dispatch/services/webhooks/handler/nats"
)

func main() {
	appName := "dispatch-webhooks"
	configPath := "config/webhooks.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, appName)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	if configs.NATS.URL == "" {
		zapLogger.Fatal("NATS_URL is required for the webhook worker")
	}

	metrics.Register()
	healthService := health.NewService()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName, natspkg.WebhookStream())
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	healthService.AddChecker("nats", health.CheckerFunc(natsClient.Ping))

	// Exhausted deliveries are published back to the dead-letter subject
	deliverer := webhook.NewDeliverer(webhook.ConfigFromModel(configs.Webhook), natsClient, zapLogger)
	outbound := natsHandler.NewOutboundHandler(deliverer, natsClient, configs.Webhook.Workers)
	Handler := handler.NewHandler(nil, outbound)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := Handler.InitNATSConsumers(ctx); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("webhook-workers", func(ctx context.Context) error {
		Handler.Stop()
		return nil
	})
	shutdown.Register("nats", func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(metrics.NewHTTPMetrics(appName).Middleware())

	health.RegisterHealthEndpoints(e, appName, healthService)
	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))

	srv := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Failed to start server",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}

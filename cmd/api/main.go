package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/config"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/health"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/metrics"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	natspkg "github.com/piresc/dispatch/internal/pkg/nats"
	"github.com/piresc/dispatch/internal/pkg/server"
	"github.com/piresc/dispatch/internal/pkg/webhook"
	agentHandler "github.com/piresc/dispatch/services/agents/handler"
	agentHTTP "github.com/piresc/dispatch/services/agents/handler/http"
	agentRepository "github.com/piresc/dispatch/services/agents/repository"
	agentUsecase "github.com/piresc/dispatch/services/agents/usecase"
	orderGateway "github.com/piresc/dispatch/services/orders/gateway"
	orderHandler "github.com/piresc/dispatch/services/orders/handler"
	orderHTTP "github.com/piresc/dispatch/services/orders/handler/http"
	orderRepository "github.com/piresc/dispatch/services/orders/repository"
	orderUsecase "github.com/piresc/dispatch/services/orders/usecase"
	riderGateway "github.com/piresc/dispatch/services/riders/gateway"
	riderHandler "github.com/piresc/dispatch/services/riders/handler"
	riderHTTP "github.com/piresc/dispatch/services/riders/handler/http"
	riderRepository "github.com/piresc/dispatch/services/riders/repository"
	riderUsecase "github.com/piresc/dispatch/services/riders/usecase"
	tenantHandler "github.com/piresc/dispatch/services/tenants/handler"
	tenantHTTP "github.com/piresc/dispatch/services/tenants/handler/http"
	tenantRepository "github.com/piresc/dispatch/services/tenants/repository"
	tenantUsecase "github.com/piresc/dispatch/services/tenants/usecase"
	webhookHandler "github.com/piresc/dispatch/services/webhooks/handler"
	webhookHTTP "github.com/piresc/dispatch/services/webhooks/handler/http"
	webhookUsecase "github.com/piresc/dispatch/services/webhooks/usecase"
)

func main() {
	appName := "dispatch-api"
	configPath := "config/api.env"
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

	metrics.Register()
	shutdown := server.NewShutdownManager(zapLogger)
	healthService := health.NewService()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	healthService.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))

	// Outbound webhooks go through NATS when configured, otherwise they are
	// delivered from this process
	var queue webhook.Queue
	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(configs.NATS.URL, appName, natspkg.WebhookStream())
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		healthService.AddChecker("nats", health.CheckerFunc(natsClient.Ping))
		queue = webhook.NewNATSQueue(natsClient)
	} else {
		zapLogger.Warn("NATS_URL is empty, delivering webhooks in-process")
		deliverer := webhook.NewDeliverer(webhook.ConfigFromModel(configs.Webhook), nil, zapLogger)
		inProcess := webhook.NewInProcessQueue(deliverer, configs.Webhook.Workers)
		shutdown.Register("webhook-queue", func(ctx context.Context) error {
			timeout := 10 * time.Second
			if deadline, ok := ctx.Deadline(); ok {
				timeout = time.Until(deadline)
			}
			if !inProcess.Wait(timeout) {
				return fmt.Errorf("webhook deliveries still running after %s", timeout)
			}
			return nil
		})
		queue = inProcess
	}

	// Initialize repositories
	tenantRepo := tenantRepository.NewTenantRepo(configs, postgresClient.GetDB())
	riderRepo := riderRepository.NewRiderRepo(configs, postgresClient.GetDB())
	orderRepo := orderRepository.NewOrderRepo(configs, postgresClient.GetDB())
	agentRepo := agentRepository.NewAgentRepo(configs, postgresClient.GetDB())

	// Initialize gateways
	riderGW := riderGateway.NewGeoIndex(redisClient)
	orderGW := orderGateway.NewWebhookGW(queue)

	// Initialize usecases
	tenantUC := tenantUsecase.NewTenantUC(tenantRepo, configs)
	riderUC := riderUsecase.NewRiderUC(riderRepo, riderGW, configs)
	orderUC := orderUsecase.NewOrderUC(orderRepo, orderGW, configs)
	agentUC := agentUsecase.NewAgentUC(agentRepo, riderUC, orderUC, configs)
	webhookUC := webhookUsecase.NewWebhookUC(riderUC, orderUC, configs)

	// Initialize handlers
	tenants := tenantHandler.NewHandler(
		tenantHTTP.NewAuthHandler(tenantUC),
		tenantHTTP.NewCompanyHandler(tenantUC),
	)
	riders := riderHandler.NewHandler(riderHTTP.NewRiderHandler(riderUC))
	orders := orderHandler.NewHandler(orderHTTP.NewOrderHandler(orderUC))
	agents := agentHandler.NewHandler(
		agentHTTP.NewAuthHandler(agentUC),
		agentHTTP.NewAgentHandler(agentUC),
		agentHTTP.NewAdminHandler(agentUC),
	)
	webhooks := webhookHandler.NewHandler(webhookHTTP.NewInboundHandler(webhookUC, tenantUC), nil)

	mw := middleware.NewMiddleware(middleware.Config{
		APIKeys:   tenantUC,
		Sessions:  agentUC,
		Counter:   redisClient,
		RateLimit: configs.RateLimit,
	})

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(metrics.NewHTTPMetrics(appName).Middleware())

	// Register health and metrics endpoints
	health.RegisterHealthEndpoints(e, appName, healthService)
	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))

	// Register service routes
	tenants.RegisterRoutes(e, mw)
	riders.RegisterRoutes(e, mw)
	orders.RegisterRoutes(e, mw)
	agents.RegisterRoutes(e, mw)
	webhooks.RegisterRoutes(e)

	// Connections close after in-flight requests and queued deliveries
	if natsClient != nil {
		shutdown.Register("nats", func(ctx context.Context) error {
			natsClient.Close()
			return nil
		})
	}
	shutdown.Register("redis", func(ctx context.Context) error { return redisClient.Close() })
	shutdown.Register("postgres", func(ctx context.Context) error { return postgresClient.Close() })

	srv := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Failed to start server",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	catalogmemory "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/adapters/memory"
	customersmemory "github.com/Apurer/go-gin-bookstore/internal/domains/customers/adapters/memory"
	ordersmemory "github.com/Apurer/go-gin-bookstore/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/go-gin-bookstore/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/Apurer/go-gin-bookstore/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/Apurer/go-gin-bookstore/internal/domains/orders/application"
	ordersports "github.com/Apurer/go-gin-bookstore/internal/domains/orders/ports"
	platformmigrations "github.com/Apurer/go-gin-bookstore/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-gin-bookstore/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-bookstore/internal/platform/postgres"
	orderactivities "github.com/Apurer/go-gin-bookstore/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/go-gin-bookstore/internal/platform/temporal/workflows/orders"
)

func main() {
	ctx := context.Background()
	const serviceName = "bookstore-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	orderService, cleanupRepo := buildOrderService(ctx, logger)
	defer cleanupRepo()
	orderService = ordersobs.New(
		orderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	activities := orderactivities.NewActivities(orderService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderPlacementTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderPlacementWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderPlacementWorkflowName})
	w.RegisterActivityWithOptions(activities.PlaceOrder, activity.RegisterOptions{Name: orderactivities.PlaceOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderPlacementTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildOrderService(ctx context.Context, logger *slog.Logger) (ordersports.Service, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		catalogRepo := catalogmemory.NewRepository()
		customerRepo := customersmemory.NewRepository()
		orderStore := ordersmemory.NewStore(catalogRepo, customerRepo)
		return ordersapp.NewService(orderStore, orderStore), cleanup
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Error("failed to run migrations", slog.String("error", err.Error()))
	}
	uow := orderspostgres.NewUnitOfWork(db)
	logger.Info("worker order repository configured with postgres")
	return ordersapp.NewService(uow, uow), cleanup
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	bookstoreserver "github.com/Apurer/go-gin-bookstore/go"

	catalogmemory "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/application"
	customersmemory "github.com/Apurer/go-gin-bookstore/internal/domains/customers/adapters/memory"
	customerspostgres "github.com/Apurer/go-gin-bookstore/internal/domains/customers/adapters/persistence/postgres"
	customersapp "github.com/Apurer/go-gin-bookstore/internal/domains/customers/application"
	ordersmemory "github.com/Apurer/go-gin-bookstore/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/go-gin-bookstore/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/Apurer/go-gin-bookstore/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/Apurer/go-gin-bookstore/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/Apurer/go-gin-bookstore/internal/domains/orders/application"
	ordersports "github.com/Apurer/go-gin-bookstore/internal/domains/orders/ports"
	platformmigrations "github.com/Apurer/go-gin-bookstore/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-gin-bookstore/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-bookstore/internal/platform/postgres"
)

// Run boots the bookstore HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "bookstore-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	services, cleanupRepos := buildServices(ctx, logger)
	defer cleanupRepos()

	orderService := ordersobs.New(
		services.orders,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	var orderWorkflows ordersports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := connectTemporalClient(instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline order placement", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = ordersworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace)))
	}

	handlers := bookstoreserver.ApiHandleFunctions{
		OrderAPI:    bookstoreserver.NewOrderAPI(orderService, orderWorkflows),
		BookAPI:     bookstoreserver.NewBookAPI(services.catalog),
		AuthorAPI:   bookstoreserver.NewAuthorAPI(services.catalog),
		CategoryAPI: bookstoreserver.NewCategoryAPI(services.catalog),
		CustomerAPI: bookstoreserver.NewCustomerAPI(services.customers),
	}

	router := bookstoreserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}
	logger.Info("Bookstore API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("Bookstore API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

type boundedServices struct {
	orders    ordersports.Service
	catalog   *catalogapp.Service
	customers *customersapp.Service
}

// buildServices wires each bounded context against PostgreSQL when a DSN is
// configured, or against shared in-memory repositories otherwise.
func buildServices(ctx context.Context, logger *slog.Logger) (boundedServices, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		catalogRepo := catalogmemory.NewRepository()
		customerRepo := customersmemory.NewRepository()
		orderStore := ordersmemory.NewStore(catalogRepo, customerRepo)
		return boundedServices{
			orders:    ordersapp.NewService(orderStore, orderStore),
			catalog:   catalogapp.NewService(catalogRepo.Books(), catalogRepo.Authors(), catalogRepo.Categories()),
			customers: customersapp.NewService(customerRepo),
		}, cleanup
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Error("failed to run migrations", slog.String("error", err.Error()))
	}
	ordersUoW := orderspostgres.NewUnitOfWork(db)
	return boundedServices{
		orders: ordersapp.NewService(ordersUoW, ordersUoW),
		catalog: catalogapp.NewService(
			catalogpostgres.NewBookRepository(db),
			catalogpostgres.NewAuthorRepository(db),
			catalogpostgres.NewCategoryRepository(db),
		),
		customers: customersapp.NewService(customerspostgres.NewRepository(db)),
	}, cleanup
}

func connectTemporalClient(instruments *platformobservability.Instruments) (client.Client, error) {
	if os.Getenv("TEMPORAL_DISABLED") == "1" {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	address := os.Getenv("TEMPORAL_ADDRESS")
	if address == "" {
		address = client.DefaultHostPort
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  address,
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

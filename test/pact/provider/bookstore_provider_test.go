//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/Apurer/go-gin-bookstore/test/pact"

	bookstoreserver "github.com/Apurer/go-gin-bookstore/go"
	catalogmemory "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/application"
	catalogdomain "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/domain"
	customersmemory "github.com/Apurer/go-gin-bookstore/internal/domains/customers/adapters/memory"
	customersapp "github.com/Apurer/go-gin-bookstore/internal/domains/customers/application"
	customersdomain "github.com/Apurer/go-gin-bookstore/internal/domains/customers/domain"
	ordersmemory "github.com/Apurer/go-gin-bookstore/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/go-gin-bookstore/internal/domains/orders/adapters/observability"
	ordersworkflows "github.com/Apurer/go-gin-bookstore/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/Apurer/go-gin-bookstore/internal/domains/orders/application"
	orderstypes "github.com/Apurer/go-gin-bookstore/internal/domains/orders/application/types"
	ordersports "github.com/Apurer/go-gin-bookstore/internal/domains/orders/ports"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestBookstoreProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateCatalogSeeded: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateOrderExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedOrder(t)
			}
			return nil, nil
		},
		pacttest.StateOrderMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	catalog   *catalogmemory.Repository
	customers *customersmemory.Repository
	orders    ordersports.Service
	server    *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	catalogRepo := catalogmemory.NewRepository()
	customerRepo := customersmemory.NewRepository()
	orderStore := ordersmemory.NewStore(catalogRepo, customerRepo)

	orderService := ordersobs.New(ordersapp.NewService(orderStore, orderStore))
	workflows := ordersworkflows.NewInlineOrderWorkflows(orderService)
	catalogService := catalogapp.NewService(catalogRepo.Books(), catalogRepo.Authors(), catalogRepo.Categories())
	customerService := customersapp.NewService(customerRepo)

	handlers := bookstoreserver.ApiHandleFunctions{
		OrderAPI:    bookstoreserver.NewOrderAPI(orderService, workflows),
		BookAPI:     bookstoreserver.NewBookAPI(catalogService),
		AuthorAPI:   bookstoreserver.NewAuthorAPI(catalogService),
		CategoryAPI: bookstoreserver.NewCategoryAPI(catalogService),
		CustomerAPI: bookstoreserver.NewCustomerAPI(customerService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = bookstoreserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		catalog:   catalogRepo,
		customers: customerRepo,
		orders:    orderService,
		server:    server,
	}
}

// reset clears orders and reseeds the catalog and customer fixtures so every
// interaction starts from the same stock counts.
func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	ctx := context.Background()

	listings, err := a.orders.ListOrders(ctx)
	require.NoError(t, err)
	for _, listing := range listings {
		require.NoError(t, a.orders.DeleteOrder(ctx, listing.OrderID))
	}

	_, err = a.catalog.Books().Save(ctx, &catalogdomain.Book{
		ID:    pacttest.SeededBookID,
		Title: "The Go Programming Language",
		Price: 39.99,
		Stock: 10,
	})
	require.NoError(t, err)
	_, err = a.customers.Save(ctx, &customersdomain.Customer{
		ID:    pacttest.SeededCustomerID,
		Name:  "Alice Smith",
		Email: "alice@example.com",
	})
	require.NoError(t, err)
}

func (a *contractProviderApp) seedOrder(t testing.TB) {
	t.Helper()
	_, err := a.orders.CreateOrder(context.Background(), orderstypes.CreateOrderInput{
		CustomerID: pacttest.SeededCustomerID,
		Items:      []orderstypes.OrderItemInput{{BookID: pacttest.SeededBookID, Quantity: 2, Price: 39.99}},
	})
	require.NoError(t, err)
}

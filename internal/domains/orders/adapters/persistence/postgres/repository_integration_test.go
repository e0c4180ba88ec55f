//go:build integration

package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/application"
	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-bookstore/internal/platform/migrations"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("bookstore_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func seedBookstore(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO customers (id, name, email, phone) VALUES (1, 'Alice Smith', 'alice@example.com', '555-0100')",
	).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO books (id, title, price, stock) VALUES (1, 'The Go Programming Language', 39.99, 10), (2, 'Designing Data-Intensive Applications', 45.50, 5)",
	).Error)
}

func bookStock(t *testing.T, db *gorm.DB, bookID int64) int32 {
	t.Helper()
	var stock int32
	require.NoError(t, db.Raw("SELECT stock FROM books WHERE id = ?", bookID).Scan(&stock).Error)
	return stock
}

func TestUnitOfWork_CreateOrderCommitsAtomically(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()
	seedBookstore(t, db)

	uow := NewUnitOfWork(db)
	svc := application.NewService(uow, uow)
	ctx := context.Background()

	orderID, err := svc.CreateOrder(ctx, types.CreateOrderInput{
		CustomerID: 1,
		Items: []types.OrderItemInput{
			{BookID: 1, Quantity: 2, Price: 39.99},
			{BookID: 2, Quantity: 1, Price: 45.50},
		},
	})
	require.NoError(t, err)
	require.Positive(t, orderID)

	assert.Equal(t, int32(8), bookStock(t, db, 1))
	assert.Equal(t, int32(4), bookStock(t, db, 2))

	listings, err := uow.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, orderID, listings[0].OrderID)
	assert.Equal(t, "Alice Smith", listings[0].CustomerName)
	assert.InDelta(t, 125.48, listings[0].TotalAmount, 0.001)
	assert.Equal(t, "The Go Programming Language (2 x $39.99), Designing Data-Intensive Applications (1 x $45.50)", listings[0].Items)
}

func TestUnitOfWork_ErrorRollsBackAllWrites(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()
	seedBookstore(t, db)

	uow := NewUnitOfWork(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := uow.WithinTx(ctx, func(tx ports.TxScope) error {
		id, err := tx.Orders().InsertOrder(ctx, &domain.Order{
			CustomerID:  1,
			OrderDate:   time.Now(),
			TotalAmount: 79.98,
			Status:      domain.StatusPending,
		})
		if err != nil {
			return err
		}
		if err := tx.Orders().InsertItem(ctx, &domain.OrderItem{OrderID: id, BookID: 1, Quantity: 2, Price: 39.99}); err != nil {
			return err
		}
		if err := tx.Stock().AdjustStock(ctx, 1, -2); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, int32(10), bookStock(t, db, 1))
	var orderCount int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM orders").Scan(&orderCount).Error)
	assert.Zero(t, orderCount)
	var itemCount int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM order_items").Scan(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestUnitOfWork_UpdateReplacesItemsWithNetStockDelta(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()
	seedBookstore(t, db)

	uow := NewUnitOfWork(db)
	svc := application.NewService(uow, uow)
	ctx := context.Background()

	orderID, err := svc.CreateOrder(ctx, types.CreateOrderInput{
		CustomerID: 1,
		Items: []types.OrderItemInput{
			{BookID: 1, Quantity: 2, Price: 39.99},
			{BookID: 2, Quantity: 1, Price: 45.50},
		},
	})
	require.NoError(t, err)

	err = svc.UpdateOrder(ctx, types.UpdateOrderInput{
		OrderID:    orderID,
		CustomerID: 1,
		Items:      []types.OrderItemInput{{BookID: 1, Quantity: 5, Price: 39.99}},
		Status:     string(domain.StatusProcessing),
	})
	require.NoError(t, err)

	assert.Equal(t, int32(5), bookStock(t, db, 1))
	assert.Equal(t, int32(5), bookStock(t, db, 2))

	listings, err := uow.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, string(domain.StatusProcessing), listings[0].Status)
	assert.InDelta(t, 199.95, listings[0].TotalAmount, 0.001)
	assert.Equal(t, "The Go Programming Language (5 x $39.99)", listings[0].Items)
}

func TestUnitOfWork_UpdateMissingOrderReturnsNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()
	seedBookstore(t, db)

	uow := NewUnitOfWork(db)
	svc := application.NewService(uow, uow)

	err := svc.UpdateOrder(context.Background(), types.UpdateOrderInput{
		OrderID:    42,
		CustomerID: 1,
		Items:      []types.OrderItemInput{{BookID: 1, Quantity: 1, Price: 39.99}},
	})
	require.ErrorIs(t, err, ports.ErrNotFound)
	assert.Equal(t, int32(10), bookStock(t, db, 1))
}

func TestUnitOfWork_DeleteRestoresStock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()
	seedBookstore(t, db)

	uow := NewUnitOfWork(db)
	svc := application.NewService(uow, uow)
	ctx := context.Background()

	orderID, err := svc.CreateOrder(ctx, types.CreateOrderInput{
		CustomerID: 1,
		Items:      []types.OrderItemInput{{BookID: 2, Quantity: 4, Price: 45.50}},
	})
	require.NoError(t, err)
	require.Equal(t, int32(1), bookStock(t, db, 2))

	require.NoError(t, svc.DeleteOrder(ctx, orderID))
	assert.Equal(t, int32(5), bookStock(t, db, 2))

	require.ErrorIs(t, svc.DeleteOrder(ctx, orderID), ports.ErrNotFound)
}

func TestUnitOfWork_ConcurrentCreatesLoseNoStockUpdate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()
	seedBookstore(t, db)

	uow := NewUnitOfWork(db)
	svc := application.NewService(uow, uow)
	ctx := context.Background()

	const workers = 4
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateOrder(ctx, types.CreateOrderInput{
				CustomerID: 1,
				Items:      []types.OrderItemInput{{BookID: 1, Quantity: 2, Price: 39.99}},
			})
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		require.NoError(t, err, "create %d", i)
	}

	assert.Equal(t, int32(10-2*workers), bookStock(t, db, 1))

	listings, err := uow.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, listings, workers)
}

func TestUnitOfWork_ListingIncludesOrderWithoutItems(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()
	seedBookstore(t, db)

	uow := NewUnitOfWork(db)
	require.NoError(t, db.Exec(
		"INSERT INTO orders (id, customer_id, order_date, total_amount, status) VALUES (1, 1, now(), 0, 'Pending')",
	).Error)

	listings, err := uow.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Alice Smith", listings[0].CustomerName)
	assert.Empty(t, listings[0].Items)
	assert.Zero(t, listings[0].TotalAmount)
}

func TestUnitOfWork_ListingSurvivesMissingCustomer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()
	seedBookstore(t, db)

	uow := NewUnitOfWork(db)
	svc := application.NewService(uow, uow)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, types.CreateOrderInput{
		CustomerID: 1,
		Items:      []types.OrderItemInput{{BookID: 1, Quantity: 1, Price: 39.99}},
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec("DELETE FROM customers WHERE id = 1").Error)

	listings, err := uow.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Empty(t, listings[0].CustomerName)
}

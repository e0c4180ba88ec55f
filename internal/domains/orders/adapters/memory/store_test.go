package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/ports"
)

type stubCatalog struct {
	stock  map[int64]int32
	titles map[int64]string
}

func (s *stubCatalog) AdjustStock(bookID int64, delta int32) bool {
	if _, ok := s.stock[bookID]; !ok {
		return false
	}
	s.stock[bookID] += delta
	return true
}

func (s *stubCatalog) BookTitle(bookID int64) (string, bool) {
	title, ok := s.titles[bookID]
	return title, ok
}

type stubDirectory map[int64]string

func (d stubDirectory) CustomerName(id int64) (string, bool) {
	name, ok := d[id]
	return name, ok
}

func newTestStore() (*Store, *stubCatalog) {
	catalog := &stubCatalog{
		stock:  map[int64]int32{1: 10, 2: 5},
		titles: map[int64]string{1: "Clean Code", 2: "The Pragmatic Programmer"},
	}
	return NewStore(catalog, stubDirectory{7: "Bob Jones"}), catalog
}

func placeOrder(t *testing.T, store *Store, date time.Time, items ...domain.OrderItem) int64 {
	t.Helper()
	var orderID int64
	err := store.WithinTx(context.Background(), func(tx ports.TxScope) error {
		id, err := tx.Orders().InsertOrder(context.Background(), &domain.Order{
			CustomerID:  7,
			OrderDate:   date,
			TotalAmount: domain.TotalAmount(items),
			Status:      domain.StatusPending,
		})
		if err != nil {
			return err
		}
		for i := range items {
			item := items[i]
			item.OrderID = id
			if err := tx.Orders().InsertItem(context.Background(), &item); err != nil {
				return err
			}
			if err := tx.Stock().AdjustStock(context.Background(), item.BookID, -item.Quantity); err != nil {
				return err
			}
		}
		orderID = id
		return nil
	})
	require.NoError(t, err)
	return orderID
}

func TestWithinTx_ErrorReplaysUndoJournalInReverse(t *testing.T) {
	store, catalog := newTestStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.WithinTx(ctx, func(tx ports.TxScope) error {
		id, err := tx.Orders().InsertOrder(ctx, &domain.Order{CustomerID: 7, Status: domain.StatusPending})
		if err != nil {
			return err
		}
		if err := tx.Orders().InsertItem(ctx, &domain.OrderItem{OrderID: id, BookID: 1, Quantity: 4, Price: 9.99}); err != nil {
			return err
		}
		if err := tx.Stock().AdjustStock(ctx, 1, -4); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, int32(10), catalog.stock[1])
	listings, err := store.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestWithinTx_PanicReplaysUndoJournalAndRepanics(t *testing.T) {
	store, catalog := newTestStore()
	ctx := context.Background()

	recovered := func() (r any) {
		defer func() { r = recover() }()
		_ = store.WithinTx(ctx, func(tx ports.TxScope) error {
			id, err := tx.Orders().InsertOrder(ctx, &domain.Order{CustomerID: 7, Status: domain.StatusPending})
			if err != nil {
				return err
			}
			if err := tx.Orders().InsertItem(ctx, &domain.OrderItem{OrderID: id, BookID: 1, Quantity: 4, Price: 9.99}); err != nil {
				return err
			}
			if err := tx.Stock().AdjustStock(ctx, 1, -4); err != nil {
				return err
			}
			panic("mid-unit failure")
		})
		return nil
	}()
	require.Equal(t, "mid-unit failure", recovered)

	assert.Equal(t, int32(10), catalog.stock[1])
	listings, err := store.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)

	// The lock must be released so later units still run.
	placeOrder(t, store, time.Now(), domain.OrderItem{BookID: 1, Quantity: 1, Price: 5})
}

func TestWithinTx_UnknownBookFailsAdjust(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	err := store.WithinTx(ctx, func(tx ports.TxScope) error {
		return tx.Stock().AdjustStock(ctx, 404, -1)
	})
	require.ErrorIs(t, err, ports.ErrBookNotFound)
}

func TestUpdateOrder_MissingRowReturnsNotFound(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	err := store.WithinTx(ctx, func(tx ports.TxScope) error {
		return tx.Orders().UpdateOrder(ctx, &domain.Order{ID: 42, CustomerID: 7, Status: domain.StatusPending})
	})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestListOrders_FormatsItemsAndSortsNewestFirst(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	older := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)
	first := placeOrder(t, store, older, domain.OrderItem{BookID: 1, Quantity: 2, Price: 12.5})
	second := placeOrder(t, store, newer,
		domain.OrderItem{BookID: 1, Quantity: 1, Price: 12.5},
		domain.OrderItem{BookID: 2, Quantity: 3, Price: 20},
	)

	listings, err := store.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, second, listings[0].OrderID)
	assert.Equal(t, "Bob Jones", listings[0].CustomerName)
	assert.Equal(t, "Clean Code (1 x $12.50), The Pragmatic Programmer (3 x $20.00)", listings[0].Items)
	assert.InDelta(t, 72.5, listings[0].TotalAmount, 0.001)

	assert.Equal(t, first, listings[1].OrderID)
	assert.Equal(t, "Clean Code (2 x $12.50)", listings[1].Items)
}

func TestListOrders_TieBreaksByOrderID(t *testing.T) {
	store, _ := newTestStore()
	when := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	first := placeOrder(t, store, when, domain.OrderItem{BookID: 1, Quantity: 1, Price: 5})
	second := placeOrder(t, store, when, domain.OrderItem{BookID: 2, Quantity: 1, Price: 5})

	listings, err := store.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, second, listings[0].OrderID)
	assert.Equal(t, first, listings[1].OrderID)
}

func TestListOrders_OrderWithoutItemsHasEmptyItemsString(t *testing.T) {
	store, _ := newTestStore()
	orderID := placeOrder(t, store, time.Now())

	listings, err := store.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, orderID, listings[0].OrderID)
	assert.Equal(t, "Bob Jones", listings[0].CustomerName)
	assert.Empty(t, listings[0].Items)
	assert.Zero(t, listings[0].TotalAmount)
}

func TestItemsByOrder_ReturnsDetachedCopy(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()
	orderID := placeOrder(t, store, time.Now(), domain.OrderItem{BookID: 1, Quantity: 2, Price: 5})

	err := store.WithinTx(ctx, func(tx ports.TxScope) error {
		items, err := tx.Orders().ItemsByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		require.Len(t, items, 1)
		items[0].Quantity = 99
		again, err := tx.Orders().ItemsByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		assert.Equal(t, int32(2), again[0].Quantity)
		return nil
	})
	require.NoError(t, err)
}

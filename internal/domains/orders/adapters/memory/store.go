package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/ports"
)

var (
	_ ports.UnitOfWork    = (*Store)(nil)
	_ ports.ListingReader = (*Store)(nil)
)

// BookCatalog is the slice of the catalog context the order store needs:
// stock adjustment and titles for the listing.
type BookCatalog interface {
	// AdjustStock applies a signed delta and reports whether the book exists.
	AdjustStock(bookID int64, delta int32) bool
	// BookTitle returns the display title for a book.
	BookTitle(bookID int64) (string, bool)
}

// CustomerDirectory resolves customer names for the listing.
type CustomerDirectory interface {
	CustomerName(id int64) (string, bool)
}

// Store is an in-memory order persistence adapter. A unit of work holds the
// store lock for its whole duration and keeps an undo journal, so a failed
// unit restores every row and stock count to its pre-call value.
type Store struct {
	mu          sync.Mutex
	orders      map[int64]orderRow
	items       map[int64][]domain.OrderItem
	books       BookCatalog
	customers   CustomerDirectory
	nextOrderID int64
	nextItemID  int64
}

type orderRow struct {
	ID          int64
	CustomerID  int64
	OrderDate   time.Time
	TotalAmount float64
	Status      string
}

func NewStore(books BookCatalog, customers CustomerDirectory) *Store {
	return &Store{
		orders:    map[int64]orderRow{},
		items:     map[int64][]domain.OrderItem{},
		books:     books,
		customers: customers,
	}
}

// WithinTx serializes units of work under the store lock. On error or panic
// the undo journal replays in reverse, leaving the store exactly as before
// the call; a panic is re-raised after rollback.
func (s *Store) WithinTx(_ context.Context, fn func(tx ports.TxScope) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	scope := &txScope{store: s}
	defer func() {
		if r := recover(); r != nil {
			scope.rollback()
			panic(r)
		}
	}()
	if err := fn(scope); err != nil {
		scope.rollback()
		return err
	}
	return nil
}

type txScope struct {
	store   *Store
	journal []func()
}

func (t *txScope) Orders() ports.OrderWriter { return (*orderWriter)(t) }
func (t *txScope) Stock() ports.StockLedger  { return (*stockLedger)(t) }

func (t *txScope) record(undo func()) {
	t.journal = append(t.journal, undo)
}

func (t *txScope) rollback() {
	for i := len(t.journal) - 1; i >= 0; i-- {
		t.journal[i]()
	}
	t.journal = nil
}

type orderWriter txScope

func (w *orderWriter) InsertOrder(_ context.Context, order *domain.Order) (int64, error) {
	s := w.store
	s.nextOrderID++
	id := s.nextOrderID
	s.orders[id] = orderRow{
		ID:          id,
		CustomerID:  order.CustomerID,
		OrderDate:   order.OrderDate,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
	}
	(*txScope)(w).record(func() { delete(s.orders, id) })
	return id, nil
}

func (w *orderWriter) UpdateOrder(_ context.Context, order *domain.Order) error {
	s := w.store
	previous, ok := s.orders[order.ID]
	if !ok {
		return ports.ErrNotFound
	}
	s.orders[order.ID] = orderRow{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		OrderDate:   previous.OrderDate,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
	}
	(*txScope)(w).record(func() { s.orders[previous.ID] = previous })
	return nil
}

func (w *orderWriter) DeleteOrder(_ context.Context, orderID int64) error {
	s := w.store
	previous, ok := s.orders[orderID]
	if !ok {
		return ports.ErrNotFound
	}
	delete(s.orders, orderID)
	(*txScope)(w).record(func() { s.orders[previous.ID] = previous })
	return nil
}

func (w *orderWriter) InsertItem(_ context.Context, item *domain.OrderItem) error {
	s := w.store
	s.nextItemID++
	stored := *item
	stored.ID = s.nextItemID
	item.ID = stored.ID
	s.items[stored.OrderID] = append(s.items[stored.OrderID], stored)
	(*txScope)(w).record(func() {
		current := s.items[stored.OrderID]
		if len(current) > 0 {
			s.items[stored.OrderID] = current[:len(current)-1]
		}
	})
	return nil
}

func (w *orderWriter) ItemsByOrder(_ context.Context, orderID int64) ([]domain.OrderItem, error) {
	items := w.store.items[orderID]
	clone := make([]domain.OrderItem, len(items))
	copy(clone, items)
	return clone, nil
}

func (w *orderWriter) DeleteItemsByOrder(_ context.Context, orderID int64) error {
	s := w.store
	previous := s.items[orderID]
	delete(s.items, orderID)
	(*txScope)(w).record(func() { s.items[orderID] = previous })
	return nil
}

type stockLedger txScope

func (l *stockLedger) AdjustStock(_ context.Context, bookID int64, delta int32) error {
	if !l.store.books.AdjustStock(bookID, delta) {
		return ports.ErrBookNotFound
	}
	(*txScope)(l).record(func() { l.store.books.AdjustStock(bookID, -delta) })
	return nil
}

// ListOrders assembles the denormalized listing from separate reads, newest
// first, mirroring the shape of the SQL aggregate.
func (s *Store) ListOrders(_ context.Context) ([]types.OrderListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	listings := make([]types.OrderListing, 0, len(s.orders))
	for _, order := range s.orders {
		listing := types.OrderListing{
			OrderID:     order.ID,
			OrderDate:   order.OrderDate,
			TotalAmount: order.TotalAmount,
			Status:      order.Status,
			Items:       s.formatItems(order.ID),
		}
		if s.customers != nil {
			if name, ok := s.customers.CustomerName(order.CustomerID); ok {
				listing.CustomerName = name
			}
		}
		listings = append(listings, listing)
	}
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].OrderDate.Equal(listings[j].OrderDate) {
			return listings[i].OrderID > listings[j].OrderID
		}
		return listings[i].OrderDate.After(listings[j].OrderDate)
	})
	return listings, nil
}

func (s *Store) formatItems(orderID int64) string {
	var parts []string
	for _, item := range s.items[orderID] {
		title := fmt.Sprintf("book %d", item.BookID)
		if s.books != nil {
			if name, ok := s.books.BookTitle(item.BookID); ok {
				title = name
			}
		}
		parts = append(parts, fmt.Sprintf("%s (%d x $%.2f)", title, item.Quantity, item.Price))
	}
	return strings.Join(parts, ", ")
}

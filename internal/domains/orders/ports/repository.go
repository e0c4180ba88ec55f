package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/domain"
)

var (
	// ErrNotFound signals the targeted order does not exist.
	ErrNotFound = errors.New("order not found")
	// ErrBookNotFound signals a stock adjustment referenced a missing book.
	ErrBookNotFound = errors.New("book not found")
)

// UnitOfWork runs fn within one atomic transaction. The scope's writes become
// visible all at once on commit; any error (or panic) rolls everything back,
// and the transaction resource is released on every exit path. The error
// returned by fn propagates to the caller unmodified.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(tx TxScope) error) error
}

// TxScope exposes the write collaborators bound to one open transaction.
type TxScope interface {
	Orders() OrderWriter
	Stock() StockLedger
}

// OrderWriter holds the order persistence primitives driven by the
// transaction coordinator. It carries no cross-entity logic.
type OrderWriter interface {
	InsertOrder(ctx context.Context, order *domain.Order) (int64, error)
	// UpdateOrder rewrites CustomerID, TotalAmount, and Status by order id.
	// Returns ErrNotFound when no row matches.
	UpdateOrder(ctx context.Context, order *domain.Order) error
	// DeleteOrder removes the order row. Returns ErrNotFound when no row matches.
	DeleteOrder(ctx context.Context, orderID int64) error
	InsertItem(ctx context.Context, item *domain.OrderItem) error
	ItemsByOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	DeleteItemsByOrder(ctx context.Context, orderID int64) error
}

// StockLedger adjusts a book's stock count by a signed delta under the
// caller's transaction: negative when items are committed, positive when
// they are reversed. Stock may go negative; a backordered count is a valid
// ledger state. Returns ErrBookNotFound when the book row does not exist.
type StockLedger interface {
	AdjustStock(ctx context.Context, bookID int64, delta int32) error
}

// ListingReader serves the read-only order listing outside the write path.
type ListingReader interface {
	ListOrders(ctx context.Context) ([]types.OrderListing, error)
}

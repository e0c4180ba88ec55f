package ports

import (
	"context"

	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/application/types"
)

// Service exposes the order use cases to adapters. Each mutation executes as
// one atomic unit of work spanning the order rows and the stock ledger.
type Service interface {
	CreateOrder(ctx context.Context, input types.CreateOrderInput) (int64, error)
	UpdateOrder(ctx context.Context, input types.UpdateOrderInput) error
	DeleteOrder(ctx context.Context, orderID int64) error
	ListOrders(ctx context.Context) ([]types.OrderListing, error)
}

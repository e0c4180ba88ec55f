package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	ordersapp "github.com/Apurer/go-gin-bookstore/internal/domains/orders/application"
	orderstypes "github.com/Apurer/go-gin-bookstore/internal/domains/orders/application/types"
	ordersports "github.com/Apurer/go-gin-bookstore/internal/domains/orders/ports"
)

const (
	// PlaceOrderActivityName commits an order as one atomic unit of work.
	PlaceOrderActivityName = "orders.activities.PlaceOrder"
	// InvalidOrderInputErrorType marks validation failures as non-retryable.
	InvalidOrderInputErrorType = "InvalidOrderInput"
)

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service ordersports.Service
}

// NewActivities wires the orders service into the Temporal activities bundle.
func NewActivities(service ordersports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrder runs the atomic order placement and returns the new order id.
// Rollback on failure is handled entirely by the service's unit of work, so a
// retried attempt always starts from clean state.
func (a *Activities) PlaceOrder(ctx context.Context, input orderstypes.CreateOrderInput) (int64, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order placement activity not initialized", "customerId", input.CustomerID)
		return 0, errors.New("order placement activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "customerId", input.CustomerID)
	orderID, err := a.service.CreateOrder(ctx, input)
	if err != nil {
		if errors.Is(err, ordersapp.ErrInvalidInput) {
			logger.Error("PlaceOrder activity rejected input", "customerId", input.CustomerID, "error", err)
			return 0, temporal.NewNonRetryableApplicationError(err.Error(), InvalidOrderInputErrorType, err)
		}
		logger.Error("PlaceOrder activity failed", "customerId", input.CustomerID, "error", err)
		return 0, err
	}
	logger.Info("PlaceOrder activity completed", "orderId", orderID)
	return orderID, nil
}

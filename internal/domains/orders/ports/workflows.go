package ports

import (
	"context"

	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/application/types"
)

// WorkflowOrchestrator starts the durable order placement flow. Implementations
// may run inline against the service or hand off to a workflow engine.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, input types.CreateOrderInput) (int64, error)
}

package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderstypes "github.com/Apurer/go-gin-bookstore/internal/domains/orders/application/types"
	orderactivities "github.com/Apurer/go-gin-bookstore/internal/platform/temporal/activities/orders"
)

// RunOrderPlacementSequence executes the activity that commits an order as one
// atomic unit. Validation failures are not retried; transient failures are.
func RunOrderPlacementSequence(ctx workflow.Context, input orderstypes.CreateOrderInput) (int64, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order placement sequence started", "customerId", input.CustomerID)
	placeOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        2 * time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        10 * time.Second,
			MaximumAttempts:        5,
			NonRetryableErrorTypes: []string{orderactivities.InvalidOrderInputErrorType},
		},
	}

	var orderID int64
	err := workflow.ExecuteActivity(
		workflow.WithActivityOptions(ctx, placeOptions),
		orderactivities.PlaceOrderActivityName,
		input,
	).Get(ctx, &orderID)
	if err != nil {
		logger.Error("order placement sequence failed", "customerId", input.CustomerID, "error", err)
		return 0, err
	}
	logger.Info("order placement sequence committed", "orderId", orderID)
	return orderID, nil
}

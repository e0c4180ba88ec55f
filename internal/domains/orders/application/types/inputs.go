package types

// OrderItemInput carries one requested line item.
type OrderItemInput struct {
	BookID   int64
	Quantity int32
	Price    float64
}

// CreateOrderInput captures a request to place a new order.
// Status is optional and defaults to Pending.
type CreateOrderInput struct {
	CustomerID int64
	Items      []OrderItemInput
	Status     string
}

// UpdateOrderInput captures a request to replace an order's customer,
// status, and entire item set.
type UpdateOrderInput struct {
	OrderID    int64
	CustomerID int64
	Items      []OrderItemInput
	Status     string
}

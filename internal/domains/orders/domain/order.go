package domain

import (
	"errors"
	"time"
)

// Status enumerates order progression.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

var (
	ErrInvalidOrderID    = errors.New("order id must be greater than zero")
	ErrInvalidCustomerID = errors.New("customer id must be greater than zero")
	ErrNoItems           = errors.New("order requires at least one item")
	ErrInvalidBookID     = errors.New("book id must be greater than zero")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrInvalidStatus     = errors.New("order status is invalid")
)

// Order models the customer order aggregate. Items are managed as a unit
// with the order: they are created with it, wholesale replaced on update,
// and removed with it on delete.
type Order struct {
	ID          int64
	CustomerID  int64
	OrderDate   time.Time
	TotalAmount float64
	Status      Status
	Items       []OrderItem
}

// OrderItem is a line item with the unit price snapshotted at order time.
type OrderItem struct {
	ID       int64
	OrderID  int64
	BookID   int64
	Quantity int32
	Price    float64
}

// NewOrder validates and constructs an Order with its total derived from the items.
func NewOrder(customerID int64, items []OrderItem, status Status) (*Order, error) {
	order := &Order{
		CustomerID: customerID,
		Items:      items,
	}
	if err := order.UpdateStatus(status); err != nil {
		return nil, err
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	order.TotalAmount = TotalAmount(items)
	return order, nil
}

// TotalAmount sums quantity times unit price over the given items.
func TotalAmount(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if o.CustomerID <= 0 {
		return ErrInvalidCustomerID
	}
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range o.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// Validate enforces invariants on a single line item.
func (i OrderItem) Validate() error {
	if i.BookID <= 0 {
		return ErrInvalidBookID
	}
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if i.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// UpdateStatus ensures only known states are accepted and defaults to Pending.
func (o *Order) UpdateStatus(status Status) error {
	if status == "" {
		status = StatusPending
	}
	if !isValidStatus(status) {
		return ErrInvalidStatus
	}
	o.Status = status
	return nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

package mapper

import (
	"time"

	orderstypes "github.com/Apurer/go-gin-bookstore/internal/domains/orders/application/types"
)

// OrderItemPayload is the transport-layer shape of one requested line item.
type OrderItemPayload struct {
	BookID   int64   `json:"bookId" binding:"required"`
	Quantity int32   `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateOrderPayload is the request body for placing an order.
type CreateOrderPayload struct {
	CustomerID int64              `json:"customerId"`
	Items      []OrderItemPayload `json:"items"`
	Status     string             `json:"status"`
}

// UpdateOrderPayload is the request body for replacing an order.
type UpdateOrderPayload struct {
	CustomerID int64              `json:"customerId"`
	Items      []OrderItemPayload `json:"items"`
	Status     string             `json:"status"`
}

// OrderListingView is the denormalized listing row returned to clients.
type OrderListingView struct {
	OrderID      int64     `json:"orderId"`
	OrderDate    time.Time `json:"orderDate"`
	TotalAmount  float64   `json:"totalAmount"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customerName"`
	Items        string    `json:"items"`
}

// ToCreateInput converts a transport payload into the application input.
func ToCreateInput(payload CreateOrderPayload) orderstypes.CreateOrderInput {
	return orderstypes.CreateOrderInput{
		CustomerID: payload.CustomerID,
		Items:      toItemInputs(payload.Items),
		Status:     payload.Status,
	}
}

// ToUpdateInput converts a transport payload plus path id into the application input.
func ToUpdateInput(orderID int64, payload UpdateOrderPayload) orderstypes.UpdateOrderInput {
	return orderstypes.UpdateOrderInput{
		OrderID:    orderID,
		CustomerID: payload.CustomerID,
		Items:      toItemInputs(payload.Items),
		Status:     payload.Status,
	}
}

// FromListing converts application listings to the transport representation.
func FromListing(listings []orderstypes.OrderListing) []OrderListingView {
	views := make([]OrderListingView, 0, len(listings))
	for _, listing := range listings {
		views = append(views, OrderListingView{
			OrderID:      listing.OrderID,
			OrderDate:    listing.OrderDate,
			TotalAmount:  listing.TotalAmount,
			Status:       listing.Status,
			CustomerName: listing.CustomerName,
			Items:        listing.Items,
		})
	}
	return views
}

func toItemInputs(items []OrderItemPayload) []orderstypes.OrderItemInput {
	inputs := make([]orderstypes.OrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, orderstypes.OrderItemInput{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return inputs
}

package types

import "time"

// OrderListing is a denormalized order view for display: the customer name
// comes from a left join, and Items concatenates each line item as
// "Title (quantity x $price)".
type OrderListing struct {
	OrderID      int64
	OrderDate    time.Time
	TotalAmount  float64
	Status       string
	CustomerName string
	Items        string
}

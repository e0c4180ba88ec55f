package mapper

import (
	customersdomain "github.com/Apurer/go-gin-bookstore/internal/domains/customers/domain"
)

// CustomerPayload is the transport-layer shape of a customer mutation.
type CustomerPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerView is the customer representation returned to clients.
type CustomerView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ToCustomer converts a transport payload into the domain entity.
func ToCustomer(payload CustomerPayload) *customersdomain.Customer {
	return &customersdomain.Customer{
		ID:    payload.ID,
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	}
}

// FromCustomer converts a customer into its transport view.
func FromCustomer(customer *customersdomain.Customer) CustomerView {
	if customer == nil {
		return CustomerView{}
	}
	return CustomerView{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
		Phone: customer.Phone,
	}
}

// FromCustomerList converts customers into transport views.
func FromCustomerList(customers []*customersdomain.Customer) []CustomerView {
	views := make([]CustomerView, 0, len(customers))
	for _, customer := range customers {
		views = append(views, FromCustomer(customer))
	}
	return views
}

package ports

import (
	"context"

	"github.com/Apurer/go-gin-bookstore/internal/domains/customers/domain"
)

// Service exposes customer use cases to adapters.
type Service interface {
	SaveCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
}

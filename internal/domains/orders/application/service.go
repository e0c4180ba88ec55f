package application

import (
	"context"
	"time"

	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/ports"
)

// Service coordinates order mutations as atomic units spanning the order
// rows and the book stock ledger. Listings bypass the write path entirely.
type Service struct {
	uow      ports.UnitOfWork
	listings ports.ListingReader
	now      func() time.Time
}

func NewService(uow ports.UnitOfWork, listings ports.ListingReader) *Service {
	return &Service{uow: uow, listings: listings, now: time.Now}
}

// CreateOrder places a new order: the order row, its items, and the stock
// decrements for each referenced book commit together or not at all.
func (s *Service) CreateOrder(ctx context.Context, input types.CreateOrderInput) (int64, error) {
	order, err := buildOrder(input.CustomerID, input.Items, input.Status)
	if err != nil {
		return 0, mapError(err)
	}
	order.OrderDate = s.now()

	var orderID int64
	err = s.uow.WithinTx(ctx, func(tx ports.TxScope) error {
		id, err := tx.Orders().InsertOrder(ctx, order)
		if err != nil {
			return err
		}
		for i := range order.Items {
			item := order.Items[i]
			item.OrderID = id
			if err := tx.Orders().InsertItem(ctx, &item); err != nil {
				return err
			}
			if err := tx.Stock().AdjustStock(ctx, item.BookID, -item.Quantity); err != nil {
				return err
			}
		}
		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// UpdateOrder replaces the order's customer, status, and entire item set by
// fully reversing the prior stock effect before applying the new one. The
// restore-then-reapply sequence yields the true net stock delta even when a
// book appears in both the old and new item sets, and no intermediate state
// is observable outside the transaction.
func (s *Service) UpdateOrder(ctx context.Context, input types.UpdateOrderInput) error {
	if input.OrderID <= 0 {
		return mapError(domain.ErrInvalidOrderID)
	}
	order, err := buildOrder(input.CustomerID, input.Items, input.Status)
	if err != nil {
		return mapError(err)
	}
	order.ID = input.OrderID

	return s.uow.WithinTx(ctx, func(tx ports.TxScope) error {
		current, err := tx.Orders().ItemsByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		for _, item := range current {
			if err := tx.Stock().AdjustStock(ctx, item.BookID, item.Quantity); err != nil {
				return err
			}
		}
		if err := tx.Orders().DeleteItemsByOrder(ctx, order.ID); err != nil {
			return err
		}
		if err := tx.Orders().UpdateOrder(ctx, order); err != nil {
			return err
		}
		for i := range order.Items {
			item := order.Items[i]
			item.OrderID = order.ID
			if err := tx.Orders().InsertItem(ctx, &item); err != nil {
				return err
			}
			if err := tx.Stock().AdjustStock(ctx, item.BookID, -item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteOrder removes the order and its items, restoring each referenced
// book's stock by the committed quantity.
func (s *Service) DeleteOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return mapError(domain.ErrInvalidOrderID)
	}
	return s.uow.WithinTx(ctx, func(tx ports.TxScope) error {
		items, err := tx.Orders().ItemsByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Stock().AdjustStock(ctx, item.BookID, item.Quantity); err != nil {
				return err
			}
		}
		if err := tx.Orders().DeleteItemsByOrder(ctx, orderID); err != nil {
			return err
		}
		return tx.Orders().DeleteOrder(ctx, orderID)
	})
}

// ListOrders returns the denormalized order listing, newest first.
func (s *Service) ListOrders(ctx context.Context) ([]types.OrderListing, error) {
	return s.listings.ListOrders(ctx)
}

func buildOrder(customerID int64, items []types.OrderItemInput, status string) (*domain.Order, error) {
	domainItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		domainItems = append(domainItems, domain.OrderItem{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return domain.NewOrder(customerID, domainItems, domain.Status(status))
}

var _ ports.Service = (*Service)(nil)

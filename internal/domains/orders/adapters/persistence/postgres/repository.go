package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-bookstore/internal/domains/orders/ports"
)

var (
	_ ports.UnitOfWork    = (*UnitOfWork)(nil)
	_ ports.ListingReader = (*UnitOfWork)(nil)
)

// UnitOfWork opens atomic transactions over the orders, order_items, and
// books tables in PostgreSQL using GORM, and serves the read-only listing.
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork wires a PostgreSQL-backed unit of work. Caller manages DB lifecycle.
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	uow := &UnitOfWork{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{}, &orderItemRecord{})
	}
	return uow
}

// orderRecord maps the order aggregate root to its relational table.
type orderRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	CustomerID  int64     `gorm:"column:customer_id;index"`
	OrderDate   time.Time `gorm:"column:order_date;index"`
	TotalAmount float64   `gorm:"column:total_amount;type:numeric(10,2)"`
	Status      string    `gorm:"column:status;type:varchar(32);index"`
}

func (orderRecord) TableName() string { return "orders" }

// orderItemRecord maps one line item row.
type orderItemRecord struct {
	ID       int64   `gorm:"primaryKey;column:id"`
	OrderID  int64   `gorm:"column:order_id;index;not null"`
	BookID   int64   `gorm:"column:book_id;index"`
	Quantity int32   `gorm:"column:quantity"`
	Price    float64 `gorm:"column:price;type:numeric(10,2)"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// WithinTx runs fn inside one database transaction. GORM commits on a nil
// return and rolls back on error or panic, releasing the transaction handle
// on every exit path.
func (u *UnitOfWork) WithinTx(ctx context.Context, fn func(tx ports.TxScope) error) error {
	if err := u.ensureDB(); err != nil {
		return err
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txScope{tx: tx})
	})
}

type txScope struct {
	tx *gorm.DB
}

func (s *txScope) Orders() ports.OrderWriter { return &orderWriter{tx: s.tx} }
func (s *txScope) Stock() ports.StockLedger  { return &stockLedger{tx: s.tx} }

// orderWriter executes the order persistence primitives under the open transaction.
type orderWriter struct {
	tx *gorm.DB
}

func (w *orderWriter) InsertOrder(ctx context.Context, order *domain.Order) (int64, error) {
	record := orderRecord{
		CustomerID:  order.CustomerID,
		OrderDate:   order.OrderDate,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
	}
	if err := w.tx.WithContext(ctx).Create(&record).Error; err != nil {
		return 0, err
	}
	return record.ID, nil
}

func (w *orderWriter) UpdateOrder(ctx context.Context, order *domain.Order) error {
	result := w.tx.WithContext(ctx).Model(&orderRecord{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"customer_id":  order.CustomerID,
			"total_amount": order.TotalAmount,
			"status":       string(order.Status),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (w *orderWriter) DeleteOrder(ctx context.Context, orderID int64) error {
	result := w.tx.WithContext(ctx).Delete(&orderRecord{}, orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (w *orderWriter) InsertItem(ctx context.Context, item *domain.OrderItem) error {
	record := orderItemRecord{
		OrderID:  item.OrderID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
		Price:    item.Price,
	}
	if err := w.tx.WithContext(ctx).Create(&record).Error; err != nil {
		return err
	}
	item.ID = record.ID
	return nil
}

func (w *orderWriter) ItemsByOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	var records []orderItemRecord
	if err := w.tx.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&records).Error; err != nil {
		return nil, err
	}
	items := make([]domain.OrderItem, 0, len(records))
	for _, record := range records {
		items = append(items, domain.OrderItem{
			ID:       record.ID,
			OrderID:  record.OrderID,
			BookID:   record.BookID,
			Quantity: record.Quantity,
			Price:    record.Price,
		})
	}
	return items, nil
}

func (w *orderWriter) DeleteItemsByOrder(ctx context.Context, orderID int64) error {
	return w.tx.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&orderItemRecord{}).Error
}

// stockLedger applies signed stock deltas on the books table. Row-level
// locking serializes concurrent adjustments to the same book for the duration
// of the owning transaction. Stock has no floor; negative counts are treated
// as backorders.
type stockLedger struct {
	tx *gorm.DB
}

func (l *stockLedger) AdjustStock(ctx context.Context, bookID int64, delta int32) error {
	result := l.tx.WithContext(ctx).
		Exec("UPDATE books SET stock = stock + ? WHERE id = ?", delta, bookID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrBookNotFound
	}
	return nil
}

// listingRow receives the aggregate listing query results.
type listingRow struct {
	ID           int64
	OrderDate    time.Time
	TotalAmount  float64
	Status       string
	CustomerName string
	Items        string
}

// ListOrders joins orders with customers, items, and books into one
// display-ready row per order, newest first. Orders without items and orders
// whose customer was removed still appear thanks to the left joins.
func (u *UnitOfWork) ListOrders(ctx context.Context) ([]types.OrderListing, error) {
	if err := u.ensureDB(); err != nil {
		return nil, err
	}
	var rows []listingRow
	err := u.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_date,
			o.total_amount,
			o.status,
			COALESCE(c.name, '') AS customer_name,
			COALESCE(string_agg(
				b.title || ' (' || oi.quantity || ' x $' || to_char(oi.price, 'FM999999990.00') || ')',
				', ' ORDER BY oi.id
			), '') AS items
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.id
		LEFT JOIN order_items oi ON o.id = oi.order_id
		LEFT JOIN books b ON oi.book_id = b.id
		GROUP BY o.id, o.order_date, o.total_amount, o.status, c.name
		ORDER BY o.order_date DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	listings := make([]types.OrderListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, types.OrderListing{
			OrderID:      row.ID,
			OrderDate:    row.OrderDate,
			TotalAmount:  row.TotalAmount,
			Status:       row.Status,
			CustomerName: row.CustomerName,
			Items:        row.Items,
		})
	}
	return listings, nil
}

func (u *UnitOfWork) ensureDB() error {
	if u == nil || u.db == nil {
		return errors.New("postgres order unit of work not configured")
	}
	return nil
}

package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&authorRecord{},
		&categoryRecord{},
		&bookRecord{},
		&customerRecord{},
		&orderRecord{},
		&orderItemRecord{},
	)
}

// Author schema mirrors the catalog Postgres adapter.
type authorRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(100)"`
	Bio  string `gorm:"column:bio;type:text"`
}

func (authorRecord) TableName() string { return "authors" }

// Category schema mirrors the catalog Postgres adapter.
type categoryRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(50)"`
}

func (categoryRecord) TableName() string { return "categories" }

// Book schema mirrors the catalog Postgres adapter.
type bookRecord struct {
	ID         int64   `gorm:"primaryKey;column:id"`
	Title      string  `gorm:"column:title;type:varchar(200)"`
	AuthorID   *int64  `gorm:"column:author_id;index"`
	CategoryID *int64  `gorm:"column:category_id;index"`
	Price      float64 `gorm:"column:price;type:numeric(10,2)"`
	Stock      int32   `gorm:"column:stock;default:0"`
}

func (bookRecord) TableName() string { return "books" }

// Customer schema mirrors the customers Postgres adapter.
type customerRecord struct {
	ID    int64  `gorm:"primaryKey;column:id"`
	Name  string `gorm:"column:name;type:varchar(100)"`
	Email string `gorm:"column:email;type:varchar(100);uniqueIndex"`
	Phone string `gorm:"column:phone;type:varchar(20)"`
}

func (customerRecord) TableName() string { return "customers" }

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	CustomerID  int64     `gorm:"column:customer_id;index"`
	OrderDate   time.Time `gorm:"column:order_date;index"`
	TotalAmount float64   `gorm:"column:total_amount;type:numeric(10,2)"`
	Status      string    `gorm:"column:status;type:varchar(32);index"`
}

func (orderRecord) TableName() string { return "orders" }

// Order item schema mirrors the orders Postgres adapter.
type orderItemRecord struct {
	ID       int64   `gorm:"primaryKey;column:id"`
	OrderID  int64   `gorm:"column:order_id;index;not null"`
	BookID   int64   `gorm:"column:book_id;index"`
	Quantity int32   `gorm:"column:quantity"`
	Price    float64 `gorm:"column:price;type:numeric(10,2)"`
}

func (orderItemRecord) TableName() string { return "order_items" }

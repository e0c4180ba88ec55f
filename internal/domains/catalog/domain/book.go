package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrNegativeStock   = errors.New("stock must not be negative")
	ErrEmptyAuthorName = errors.New("author name is required")
)

// Book represents a catalog book entity. Stock is mutated only as a side
// effect of order operations; catalog writes set its initial value.
type Book struct {
	ID         int64
	Title      string
	AuthorID   *int64
	CategoryID *int64
	Price      float64
	Stock      int32
}

// NewBook builds a book ensuring required invariants.
func NewBook(id int64, title string, price float64) (*Book, error) {
	book := &Book{ID: id, Price: price}
	if err := book.SetTitle(title); err != nil {
		return nil, err
	}
	if err := book.Validate(); err != nil {
		return nil, err
	}
	return book, nil
}

// SetTitle trims and validates the title.
func (b *Book) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	b.Title = title
	return nil
}

// Validate enforces invariants on the entity.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrEmptyTitle
	}
	if b.Price < 0 {
		return ErrNegativePrice
	}
	if b.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

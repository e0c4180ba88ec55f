package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-bookstore/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("catalog entity not found")

// BookProjection is a book plus the joined author and category names for display.
type BookProjection struct {
	Book         domain.Book
	AuthorName   string
	CategoryName string
}

// BookRepository persists books. Stock is owned here only for catalog writes;
// order operations adjust it through the orders context's stock ledger.
type BookRepository interface {
	Save(ctx context.Context, book *domain.Book) (*domain.Book, error)
	GetByID(ctx context.Context, id int64) (*BookProjection, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]BookProjection, error)
}

// AuthorRepository persists authors.
type AuthorRepository interface {
	Save(ctx context.Context, author *domain.Author) (*domain.Author, error)
	GetByID(ctx context.Context, id int64) (*domain.Author, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Author, error)
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Save(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Category, error)
}

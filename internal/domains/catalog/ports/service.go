package ports

import (
	"context"

	"github.com/Apurer/go-gin-bookstore/internal/domains/catalog/domain"
)

// Service exposes catalog use cases to adapters. All operations are
// single-entity CRUD with input-shape validation only.
type Service interface {
	SaveBook(ctx context.Context, book *domain.Book) (*domain.Book, error)
	GetBook(ctx context.Context, id int64) (*BookProjection, error)
	DeleteBook(ctx context.Context, id int64) error
	ListBooks(ctx context.Context) ([]BookProjection, error)

	SaveAuthor(ctx context.Context, author *domain.Author) (*domain.Author, error)
	GetAuthor(ctx context.Context, id int64) (*domain.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
	ListAuthors(ctx context.Context) ([]*domain.Author, error)

	SaveCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

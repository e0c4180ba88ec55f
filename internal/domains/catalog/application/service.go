package application

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-bookstore/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-bookstore/internal/domains/catalog/ports"
)

// Service exposes catalog bounded context use cases.
type Service struct {
	books      ports.BookRepository
	authors    ports.AuthorRepository
	categories ports.CategoryRepository
}

func NewService(books ports.BookRepository, authors ports.AuthorRepository, categories ports.CategoryRepository) *Service {
	return &Service{books: books, authors: authors, categories: categories}
}

func (s *Service) SaveBook(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if book == nil {
		return nil, errors.New("book is nil")
	}
	if err := book.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.books.Save(ctx, book)
}

func (s *Service) GetBook(ctx context.Context, id int64) (*ports.BookProjection, error) {
	return s.books.GetByID(ctx, id)
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.books.Delete(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context) ([]ports.BookProjection, error) {
	return s.books.List(ctx)
}

func (s *Service) SaveAuthor(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	if author == nil {
		return nil, errors.New("author is nil")
	}
	if err := author.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.authors.Save(ctx, author)
}

func (s *Service) GetAuthor(ctx context.Context, id int64) (*domain.Author, error) {
	return s.authors.GetByID(ctx, id)
}

func (s *Service) DeleteAuthor(ctx context.Context, id int64) error {
	return s.authors.Delete(ctx, id)
}

func (s *Service) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	return s.authors.List(ctx)
}

func (s *Service) SaveCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if category == nil {
		return nil, errors.New("category is nil")
	}
	if err := category.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.categories.Save(ctx, category)
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.categories.Delete(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

var _ ports.Service = (*Service)(nil)

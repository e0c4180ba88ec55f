package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/go-gin-bookstore/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-bookstore/internal/domains/catalog/ports"
)

var (
	_ ports.BookRepository     = (*BookRepository)(nil)
	_ ports.AuthorRepository   = (*AuthorRepository)(nil)
	_ ports.CategoryRepository = (*CategoryRepository)(nil)
)

// Repository is the in-memory catalog state shared by the per-entity
// adapters. It also serves the orders context as its book catalog (stock
// adjustment and titles).
type Repository struct {
	mu             sync.RWMutex
	books          map[int64]*domain.Book
	authors        map[int64]*domain.Author
	categories     map[int64]*domain.Category
	nextBookID     int64
	nextAuthorID   int64
	nextCategoryID int64
}

func NewRepository() *Repository {
	return &Repository{
		books:      map[int64]*domain.Book{},
		authors:    map[int64]*domain.Author{},
		categories: map[int64]*domain.Category{},
	}
}

// Books returns the book persistence view.
func (r *Repository) Books() *BookRepository { return &BookRepository{state: r} }

// Authors returns the author persistence view.
func (r *Repository) Authors() *AuthorRepository { return &AuthorRepository{state: r} }

// Categories returns the category persistence view.
func (r *Repository) Categories() *CategoryRepository { return &CategoryRepository{state: r} }

// AdjustStock applies a signed delta to a book's stock. Negative results are
// kept; a backordered count is a valid state for the order stock ledger.
func (r *Repository) AdjustStock(bookID int64, delta int32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	book, ok := r.books[bookID]
	if !ok {
		return false
	}
	book.Stock += delta
	return true
}

// BookTitle resolves the display title for a book.
func (r *Repository) BookTitle(bookID int64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	book, ok := r.books[bookID]
	if !ok {
		return "", false
	}
	return book.Title, true
}

// BookRepository is the in-memory book persistence adapter.
type BookRepository struct {
	state *Repository
}

func (b *BookRepository) Save(_ context.Context, book *domain.Book) (*domain.Book, error) {
	if book == nil {
		return nil, errors.New("book is nil")
	}
	clone := *book
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r := b.state
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextBookID++
		clone.ID = r.nextBookID
	} else if clone.ID > r.nextBookID {
		r.nextBookID = clone.ID
	}
	r.books[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (b *BookRepository) GetByID(_ context.Context, id int64) (*ports.BookProjection, error) {
	r := b.state
	r.mu.RLock()
	defer r.mu.RUnlock()
	book, ok := r.books[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	projection := r.projectBook(book)
	return &projection, nil
}

func (b *BookRepository) Delete(_ context.Context, id int64) error {
	r := b.state
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.books, id)
	return nil
}

func (b *BookRepository) List(_ context.Context) ([]ports.BookProjection, error) {
	r := b.state
	r.mu.RLock()
	defer r.mu.RUnlock()
	projections := make([]ports.BookProjection, 0, len(r.books))
	for _, book := range r.books {
		projections = append(projections, r.projectBook(book))
	}
	sort.Slice(projections, func(i, j int) bool {
		return projections[i].Book.ID < projections[j].Book.ID
	})
	return projections, nil
}

func (r *Repository) projectBook(book *domain.Book) ports.BookProjection {
	projection := ports.BookProjection{Book: *book}
	if book.AuthorID != nil {
		if author, ok := r.authors[*book.AuthorID]; ok {
			projection.AuthorName = author.Name
		}
	}
	if book.CategoryID != nil {
		if category, ok := r.categories[*book.CategoryID]; ok {
			projection.CategoryName = category.Name
		}
	}
	return projection
}

// AuthorRepository is the in-memory author persistence adapter.
type AuthorRepository struct {
	state *Repository
}

func (a *AuthorRepository) Save(_ context.Context, author *domain.Author) (*domain.Author, error) {
	if author == nil {
		return nil, errors.New("author is nil")
	}
	clone := *author
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r := a.state
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextAuthorID++
		clone.ID = r.nextAuthorID
	} else if clone.ID > r.nextAuthorID {
		r.nextAuthorID = clone.ID
	}
	r.authors[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (a *AuthorRepository) GetByID(_ context.Context, id int64) (*domain.Author, error) {
	r := a.state
	r.mu.RLock()
	defer r.mu.RUnlock()
	author, ok := r.authors[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *author
	return &clone, nil
}

func (a *AuthorRepository) Delete(_ context.Context, id int64) error {
	r := a.state
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.authors[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.authors, id)
	return nil
}

func (a *AuthorRepository) List(_ context.Context) ([]*domain.Author, error) {
	r := a.state
	r.mu.RLock()
	defer r.mu.RUnlock()
	authors := make([]*domain.Author, 0, len(r.authors))
	for _, author := range r.authors {
		clone := *author
		authors = append(authors, &clone)
	}
	sort.Slice(authors, func(i, j int) bool { return authors[i].ID < authors[j].ID })
	return authors, nil
}

// CategoryRepository is the in-memory category persistence adapter.
type CategoryRepository struct {
	state *Repository
}

func (c *CategoryRepository) Save(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if category == nil {
		return nil, errors.New("category is nil")
	}
	clone := *category
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r := c.state
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextCategoryID++
		clone.ID = r.nextCategoryID
	} else if clone.ID > r.nextCategoryID {
		r.nextCategoryID = clone.ID
	}
	r.categories[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (c *CategoryRepository) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	r := c.state
	r.mu.RLock()
	defer r.mu.RUnlock()
	category, ok := r.categories[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *category
	return &clone, nil
}

func (c *CategoryRepository) Delete(_ context.Context, id int64) error {
	r := c.state
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

func (c *CategoryRepository) List(_ context.Context) ([]*domain.Category, error) {
	r := c.state
	r.mu.RLock()
	defer r.mu.RUnlock()
	categories := make([]*domain.Category, 0, len(r.categories))
	for _, category := range r.categories {
		clone := *category
		categories = append(categories, &clone)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

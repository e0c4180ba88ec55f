package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-bookstore/internal/domains/catalog/adapters/memory"
	"github.com/Apurer/go-gin-bookstore/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-bookstore/internal/domains/catalog/ports"
)

func newCatalogService() (*Service, *memory.Repository) {
	repo := memory.NewRepository()
	return NewService(repo.Books(), repo.Authors(), repo.Categories()), repo
}

func TestSaveBook_AssignsIDAndValidates(t *testing.T) {
	svc, _ := newCatalogService()
	ctx := context.Background()

	saved, err := svc.SaveBook(ctx, &domain.Book{Title: "Refactoring", Price: 31.99, Stock: 3})
	require.NoError(t, err)
	assert.Positive(t, saved.ID)

	_, err = svc.SaveBook(ctx, &domain.Book{Title: "", Price: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = svc.SaveBook(ctx, &domain.Book{Title: "Bad", Price: -1})
	require.ErrorIs(t, err, domain.ErrNegativePrice)

	_, err = svc.SaveBook(ctx, &domain.Book{Title: "Bad", Price: 1, Stock: -4})
	require.ErrorIs(t, err, domain.ErrNegativeStock)
}

func TestGetBook_JoinsAuthorAndCategoryNames(t *testing.T) {
	svc, _ := newCatalogService()
	ctx := context.Background()

	author, err := svc.SaveAuthor(ctx, &domain.Author{Name: "Martin Fowler"})
	require.NoError(t, err)
	category, err := svc.SaveCategory(ctx, &domain.Category{Name: "Software"})
	require.NoError(t, err)

	book, err := svc.SaveBook(ctx, &domain.Book{
		Title:      "Refactoring",
		AuthorID:   &author.ID,
		CategoryID: &category.ID,
		Price:      31.99,
	})
	require.NoError(t, err)

	projection, err := svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Martin Fowler", projection.AuthorName)
	assert.Equal(t, "Software", projection.CategoryName)
}

func TestGetBook_MissingAuthorLeavesNameEmpty(t *testing.T) {
	svc, _ := newCatalogService()
	ctx := context.Background()

	missing := int64(99)
	book, err := svc.SaveBook(ctx, &domain.Book{Title: "Orphaned", AuthorID: &missing, Price: 10})
	require.NoError(t, err)

	projection, err := svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, projection.AuthorName)
	assert.Empty(t, projection.CategoryName)
}

func TestDeleteBook_NotFound(t *testing.T) {
	svc, _ := newCatalogService()
	err := svc.DeleteBook(context.Background(), 123)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestSaveAuthor_Validates(t *testing.T) {
	svc, _ := newCatalogService()
	_, err := svc.SaveAuthor(context.Background(), &domain.Author{Name: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyAuthorName)
}

func TestSaveCategory_Validates(t *testing.T) {
	svc, _ := newCatalogService()
	_, err := svc.SaveCategory(context.Background(), &domain.Category{})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyCategoryName)
}

func TestListBooks_SortedByID(t *testing.T) {
	svc, _ := newCatalogService()
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		_, err := svc.SaveBook(ctx, &domain.Book{Title: title, Price: 5})
		require.NoError(t, err)
	}

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "A", books[0].Book.Title)
	assert.Equal(t, "C", books[2].Book.Title)
}

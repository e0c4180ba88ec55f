package mapper

import (
	catalogdomain "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/ports"
)

// BookPayload is the transport-layer shape of a book mutation.
type BookPayload struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	AuthorID   *int64  `json:"authorId"`
	CategoryID *int64  `json:"categoryId"`
	Price      float64 `json:"price"`
	Stock      int32   `json:"stock"`
}

// BookView is the book representation returned to clients, with the joined
// author and category names denormalized in.
type BookView struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	AuthorID     *int64  `json:"authorId,omitempty"`
	AuthorName   string  `json:"authorName,omitempty"`
	CategoryID   *int64  `json:"categoryId,omitempty"`
	CategoryName string  `json:"categoryName,omitempty"`
	Price        float64 `json:"price"`
	Stock        int32   `json:"stock"`
}

// AuthorPayload is the transport-layer shape of an author mutation.
type AuthorPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// CategoryPayload is the transport-layer shape of a category mutation.
type CategoryPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToBook converts a transport payload into the domain entity.
func ToBook(payload BookPayload) *catalogdomain.Book {
	return &catalogdomain.Book{
		ID:         payload.ID,
		Title:      payload.Title,
		AuthorID:   payload.AuthorID,
		CategoryID: payload.CategoryID,
		Price:      payload.Price,
		Stock:      payload.Stock,
	}
}

// ToAuthor converts a transport payload into the domain entity.
func ToAuthor(payload AuthorPayload) *catalogdomain.Author {
	return &catalogdomain.Author{ID: payload.ID, Name: payload.Name, Bio: payload.Bio}
}

// ToCategory converts a transport payload into the domain entity.
func ToCategory(payload CategoryPayload) *catalogdomain.Category {
	return &catalogdomain.Category{ID: payload.ID, Name: payload.Name}
}

// FromProjection converts a book projection into its transport view.
func FromProjection(projection *catalogports.BookProjection) BookView {
	if projection == nil {
		return BookView{}
	}
	return BookView{
		ID:           projection.Book.ID,
		Title:        projection.Book.Title,
		AuthorID:     projection.Book.AuthorID,
		AuthorName:   projection.AuthorName,
		CategoryID:   projection.Book.CategoryID,
		CategoryName: projection.CategoryName,
		Price:        projection.Book.Price,
		Stock:        projection.Book.Stock,
	}
}

// FromProjectionList converts book projections into transport views.
func FromProjectionList(projections []catalogports.BookProjection) []BookView {
	views := make([]BookView, 0, len(projections))
	for i := range projections {
		views = append(views, FromProjection(&projections[i]))
	}
	return views
}

// FromBook converts a saved book into its transport view without joins.
func FromBook(book *catalogdomain.Book) BookView {
	if book == nil {
		return BookView{}
	}
	return BookView{
		ID:         book.ID,
		Title:      book.Title,
		AuthorID:   book.AuthorID,
		CategoryID: book.CategoryID,
		Price:      book.Price,
		Stock:      book.Stock,
	}
}

package bookstoreserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cataloghttpmapper "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/adapters/http/mapper"
	catalogapp "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/application"
	catalogports "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/ports"
)

// BookAPI wires HTTP transport with the catalog bounded context's book use cases.
type BookAPI struct {
	service catalogports.Service
}

// NewBookAPI creates a BookAPI backed by the provided service.
func NewBookAPI(service catalogports.Service) BookAPI {
	return BookAPI{service: service}
}

// Post /v1/books
// Add a book to the catalog
func (api *BookAPI) AddBook(c *gin.Context) {
	var payload cataloghttpmapper.BookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	payload.ID = 0
	saved, err := api.service.SaveBook(c.Request.Context(), cataloghttpmapper.ToBook(payload))
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cataloghttpmapper.FromBook(saved))
}

// Put /v1/books/:bookId
// Update an existing book
func (api *BookAPI) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}
	var payload cataloghttpmapper.BookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	payload.ID = id
	updated, err := api.service.SaveBook(c.Request.Context(), cataloghttpmapper.ToBook(payload))
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromBook(updated))
}

// Get /v1/books/:bookId
// Find a book by ID
func (api *BookAPI) GetBookById(c *gin.Context) {
	id, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}
	book, err := api.service.GetBook(c.Request.Context(), id)
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromProjection(book))
}

// Get /v1/books
// List books with author and category names
func (api *BookAPI) ListBooks(c *gin.Context) {
	books, err := api.service.ListBooks(c.Request.Context())
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromProjectionList(books))
}

// Delete /v1/books/:bookId
// Delete a book
func (api *BookAPI) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}
	if err := api.service.DeleteBook(c.Request.Context(), id); err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func respondCatalogServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, catalogports.ErrNotFound) {
		respondError(c, http.StatusNotFound, err)
		return
	}
	if errors.Is(err, catalogapp.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	respondError(c, http.StatusInternalServerError, err)
}

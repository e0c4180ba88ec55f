package bookstoreserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cataloghttpmapper "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/ports"
)

// AuthorAPI wires HTTP transport with the catalog bounded context's author use cases.
type AuthorAPI struct {
	service catalogports.Service
}

// NewAuthorAPI creates an AuthorAPI backed by the provided service.
func NewAuthorAPI(service catalogports.Service) AuthorAPI {
	return AuthorAPI{service: service}
}

// Post /v1/authors
// Add an author
func (api *AuthorAPI) AddAuthor(c *gin.Context) {
	var payload cataloghttpmapper.AuthorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	payload.ID = 0
	saved, err := api.service.SaveAuthor(c.Request.Context(), cataloghttpmapper.ToAuthor(payload))
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// Put /v1/authors/:authorId
// Update an existing author
func (api *AuthorAPI) UpdateAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}
	var payload cataloghttpmapper.AuthorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	payload.ID = id
	updated, err := api.service.SaveAuthor(c.Request.Context(), cataloghttpmapper.ToAuthor(payload))
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Get /v1/authors/:authorId
// Find an author by ID
func (api *AuthorAPI) GetAuthorById(c *gin.Context) {
	id, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}
	author, err := api.service.GetAuthor(c.Request.Context(), id)
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, author)
}

// Get /v1/authors
// List authors
func (api *AuthorAPI) ListAuthors(c *gin.Context) {
	authors, err := api.service.ListAuthors(c.Request.Context())
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, authors)
}

// Delete /v1/authors/:authorId
// Delete an author
func (api *AuthorAPI) DeleteAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}
	if err := api.service.DeleteAuthor(c.Request.Context(), id); err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

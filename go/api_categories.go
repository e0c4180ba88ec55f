package bookstoreserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cataloghttpmapper "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/Apurer/go-gin-bookstore/internal/domains/catalog/ports"
)

// CategoryAPI wires HTTP transport with the catalog bounded context's category use cases.
type CategoryAPI struct {
	service catalogports.Service
}

// NewCategoryAPI creates a CategoryAPI backed by the provided service.
func NewCategoryAPI(service catalogports.Service) CategoryAPI {
	return CategoryAPI{service: service}
}

// Post /v1/categories
// Add a category
func (api *CategoryAPI) AddCategory(c *gin.Context) {
	var payload cataloghttpmapper.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	payload.ID = 0
	saved, err := api.service.SaveCategory(c.Request.Context(), cataloghttpmapper.ToCategory(payload))
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// Put /v1/categories/:categoryId
// Update an existing category
func (api *CategoryAPI) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}
	var payload cataloghttpmapper.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	payload.ID = id
	updated, err := api.service.SaveCategory(c.Request.Context(), cataloghttpmapper.ToCategory(payload))
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Get /v1/categories/:categoryId
// Find a category by ID
func (api *CategoryAPI) GetCategoryById(c *gin.Context) {
	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}
	category, err := api.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Get /v1/categories
// List categories
func (api *CategoryAPI) ListCategories(c *gin.Context) {
	categories, err := api.service.ListCategories(c.Request.Context())
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Delete /v1/categories/:categoryId
// Delete a category
func (api *CategoryAPI) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}
	if err := api.service.DeleteCategory(c.Request.Context(), id); err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

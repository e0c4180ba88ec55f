package bookstoreserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	customerhttpmapper "github.com/Apurer/go-gin-bookstore/internal/domains/customers/adapters/http/mapper"
	customersapp "github.com/Apurer/go-gin-bookstore/internal/domains/customers/application"
	customersports "github.com/Apurer/go-gin-bookstore/internal/domains/customers/ports"
)

// CustomerAPI wires HTTP transport with the customers bounded context service.
type CustomerAPI struct {
	service customersports.Service
}

// NewCustomerAPI creates a CustomerAPI backed by the provided service.
func NewCustomerAPI(service customersports.Service) CustomerAPI {
	return CustomerAPI{service: service}
}

// Post /v1/customers
// Register a customer
func (api *CustomerAPI) AddCustomer(c *gin.Context) {
	var payload customerhttpmapper.CustomerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	payload.ID = 0
	saved, err := api.service.SaveCustomer(c.Request.Context(), customerhttpmapper.ToCustomer(payload))
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customerhttpmapper.FromCustomer(saved))
}

// Put /v1/customers/:customerId
// Update an existing customer
func (api *CustomerAPI) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	var payload customerhttpmapper.CustomerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	payload.ID = id
	updated, err := api.service.SaveCustomer(c.Request.Context(), customerhttpmapper.ToCustomer(payload))
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerhttpmapper.FromCustomer(updated))
}

// Get /v1/customers/:customerId
// Find a customer by ID
func (api *CustomerAPI) GetCustomerById(c *gin.Context) {
	id, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	customer, err := api.service.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerhttpmapper.FromCustomer(customer))
}

// Get /v1/customers
// List customers
func (api *CustomerAPI) ListCustomers(c *gin.Context) {
	customers, err := api.service.ListCustomers(c.Request.Context())
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerhttpmapper.FromCustomerList(customers))
}

// Delete /v1/customers/:customerId
// Delete a customer
func (api *CustomerAPI) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	if err := api.service.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func respondCustomerServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, customersports.ErrNotFound) {
		respondError(c, http.StatusNotFound, err)
		return
	}
	if errors.Is(err, customersapp.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	respondError(c, http.StatusInternalServerError, err)
}

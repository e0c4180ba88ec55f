package bookstoreserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Apurer/go-gin-bookstore/internal/domains/orders/adapters/http/mapper"
	ordersapp "github.com/Apurer/go-gin-bookstore/internal/domains/orders/application"
	orderstypes "github.com/Apurer/go-gin-bookstore/internal/domains/orders/application/types"
	ordersports "github.com/Apurer/go-gin-bookstore/internal/domains/orders/ports"
)

// OrderAPI wires HTTP transport with the orders bounded context service and workflows.
type OrderAPI struct {
	service   ordersports.Service
	workflows ordersports.WorkflowOrchestrator
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ordersports.Service, workflows ordersports.WorkflowOrchestrator) OrderAPI {
	return OrderAPI{service: service, workflows: workflows}
}

// Post /v1/orders
// Place a new order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload orderhttpmapper.CreateOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := orderhttpmapper.ToCreateInput(payload)
	orderID, err := api.placeOrder(c.Request.Context(), input)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"orderId": orderID})
}

func (api *OrderAPI) placeOrder(ctx context.Context, input orderstypes.CreateOrderInput) (int64, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, input)
	}
	return api.service.CreateOrder(ctx, input)
}

// Put /v1/orders/:orderId
// Replace an existing order's customer, items, and status
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var payload orderhttpmapper.UpdateOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := orderhttpmapper.ToUpdateInput(id, payload)
	if err := api.service.UpdateOrder(c.Request.Context(), input); err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderId": id})
}

// Delete /v1/orders/:orderId
// Delete an order and restore its stock
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	if err := api.service.DeleteOrder(c.Request.Context(), id); err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Get /v1/orders
// List orders newest first with customer name and formatted items
func (api *OrderAPI) ListOrders(c *gin.Context) {
	listings, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromListing(listings))
}

func respondOrderServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, ordersports.ErrNotFound) || errors.Is(err, ordersports.ErrBookNotFound) {
		respondError(c, http.StatusNotFound, err)
		return
	}
	if errors.Is(err, ordersapp.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	respondError(c, http.StatusInternalServerError, err)
}

package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/eventplanner/event-orders-api/services"
	"github.com/eventplanner/event-orders-api/utils"
	"github.com/gin-gonic/gin"
)

// OrderController serves the /orders family
type OrderController struct {
	orders *services.OrderService
}

// NewOrderController creates an OrderController backed by svc
func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{orders: svc}
}

// UpdateStatusRequest is the body of PATCH /orders/:order_id/status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder handles POST /orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input services.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	order, err := oc.orders.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, order)
}

// ListOrders handles GET /orders with optional client, status and created range filters
func (oc *OrderController) ListOrders(c *gin.Context) {
	filter, err := services.ParseOrderFilter(
		c.Query("client_id"),
		c.Query("status"),
		c.Query("created_at_start"),
		c.Query("created_at_end"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	orders, err := oc.orders.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, orders)
}

// GetOrder handles GET /orders/:order_id
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := oc.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, order)
}

// UpdateOrder handles PUT /orders/:order_id
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var input services.UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	order, err := oc.orders.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, order)
}

// UpdateOrderStatus handles PATCH /orders/:order_id/status
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondValidation(c, err)
		return
	}

	order, err := oc.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/:order_id
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	if err := oc.orders.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "Order deleted successfully")
}

// ListOrdersByClient handles GET /orders/client/:client_id
func (oc *OrderController) ListOrdersByClient(c *gin.Context) {
	orders, err := oc.orders.ListByClient(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, orders)
}

// ListOrdersByStatus handles GET /orders/status/:status
func (oc *OrderController) ListOrdersByStatus(c *gin.Context) {
	orders, err := oc.orders.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, orders)
}

// orderID parses :order_id, answering 400 when it is not a positive integer
func orderID(c *gin.Context) (uint, bool) {
	id, ok := utils.ParseID(c.Param("order_id"))
	if !ok {
		respondError(c, services.InvalidRequest("Invalid order ID"))
		return 0, false
	}
	return id, true
}

package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AppariLavanya/inventory-management-system/internal/repository"
	"github.com/AppariLavanya/inventory-management-system/internal/service"
	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

// OrderHandler handles order-related HTTP endpoints.
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListOrders returns the order page matching the query parameters. Unlike
// the product search, an unknown sortBy or sortDir fails the request.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	p := query(c)
	filter := repository.OrderFilter{
		Customer:      customerQuery(c.Query("customerName"), c.Query("customer")),
		MinTotal:      p.floatPtr("minTotal"),
		MaxTotal:      p.floatPtr("maxTotal"),
		CreatedAfter:  p.instant("createdAfter"),
		CreatedBefore: p.instant("createdBefore"),
	}
	page, size := p.page()
	if err := p.Err(); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		return
	}

	orders, total, err := h.orderService.List(filter, c.Query("sortBy"), c.Query("sortDir"), page, size)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidSortField) || errors.Is(err, utils.ErrInvalidSortDir) {
			utils.Error(c, 400, "INVALID_REQUEST", err.Error())
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to list orders")
		return
	}

	utils.SuccessWithPagination(c, 200, "Orders retrieved successfully", gin.H{
		"orders": orders,
	}, page, size, total)
}

// GetOrder returns a single order with its items.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.orderService.Get(id)
	if err != nil {
		if errors.Is(err, utils.ErrOrderNotFound) {
			utils.Error(c, 404, "NOT_FOUND", "Order not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get order")
		return
	}

	utils.Success(c, 200, "Order retrieved successfully", order)
}

// CreateOrder creates an order with its item snapshots.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	order, err := h.orderService.Create(&req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidOrderStatus) {
			utils.Error(c, 400, "INVALID_ORDER_STATUS", err.Error())
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create order")
		return
	}

	utils.Success(c, 201, "Order created successfully", order)
}

// UpdateOrder replaces an order's fields and items.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	order, err := h.orderService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrOrderNotFound):
			utils.Error(c, 404, "NOT_FOUND", "Order not found")
		case errors.Is(err, utils.ErrInvalidOrderStatus):
			utils.Error(c, 400, "INVALID_ORDER_STATUS", err.Error())
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update order")
		}
		return
	}

	utils.Success(c, 200, "Order updated successfully", order)
}

// UpdateOrderStatus transitions an order to a new status.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrOrderNotFound):
			utils.Error(c, 404, "NOT_FOUND", "Order not found")
		case errors.Is(err, utils.ErrInvalidOrderStatus):
			utils.Error(c, 400, "INVALID_ORDER_STATUS", err.Error())
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update order status")
		}
		return
	}

	utils.Success(c, 200, "Order status updated successfully", order)
}

// DeleteOrder removes an order and its items.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.orderService.Delete(id); err != nil {
		if errors.Is(err, utils.ErrOrderNotFound) {
			utils.Error(c, 404, "NOT_FOUND", "Order not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete order")
		return
	}

	utils.Success(c, 200, "Order deleted successfully", nil)
}

// customerQuery resolves the two customer filter aliases; customerName
// takes precedence over the legacy customer parameter only when it has
// content, so a blank value cannot shadow the alias.
func customerQuery(name, legacy string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	return legacy
}

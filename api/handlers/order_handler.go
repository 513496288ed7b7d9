package handlers

import (
	"errors"
	"io"
	"net/http"

	"go-flowershop/api/middleware"
	errx "go-flowershop/internal/core/error"
	"go-flowershop/internal/events"
	"go-flowershop/internal/metrics"
	"go-flowershop/internal/models"
	"go-flowershop/internal/services"
	logx "go-flowershop/pkg/logger"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	publisher events.Publisher
}

func NewOrderHandler(publisher events.Publisher) *OrderHandler {
	return &OrderHandler{
		publisher: publisher,
	}
}

// POST /api/orders
// Checks out the session's cart. The body is optional.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}

	app := middleware.App(c)
	order, err := app.Orders.Checkout(app.Cart, app.Session, req.ShippingAddress)
	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		respondError(c, errx.New(err, http.StatusUnauthorized, "Sign in to check out"))
		return
	case errors.Is(err, services.ErrEmptyOrder):
		respondError(c, errx.New(err, http.StatusBadRequest, "Cart is empty"))
		return
	case err != nil:
		respondError(c, err)
		return
	}

	metrics.RecordOrder(order.TotalPrice.InexactFloat64())
	logx.Info().Str("session", middleware.SessionID(c)).Str("order_id", order.ID).Str("total", order.TotalPrice.String()).Msg("order placed")
	publish(c, h.publisher, events.OrderEvent{
		Kind:      events.OrderCreated,
		OrderID:   order.ID,
		SessionID: middleware.SessionID(c),
		Status:    order.Status,
		Total:     order.TotalPrice.String(),
	})

	c.JSON(http.StatusCreated, gin.H{
		"data": order,
	})
}

// GET /api/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders := middleware.App(c).Orders.ListAll()

	c.JSON(http.StatusOK, gin.H{
		"data": orders,
		"meta": gin.H{"total": len(orders)},
	})
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	order, exists := middleware.App(c).Orders.ByID(c.Param("id"))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": order,
	})
}

// PUT /api/orders/:id/status (admin)
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return
	}

	id := c.Param("id")
	orders := middleware.App(c).Orders
	if !orders.SetStatus(id, req.Status) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	publish(c, h.publisher, events.OrderEvent{
		Kind:      events.OrderStatusChanged,
		OrderID:   id,
		SessionID: middleware.SessionID(c),
		Status:    req.Status,
	})

	order, _ := orders.ByID(id)
	c.JSON(http.StatusOK, gin.H{
		"data": order,
	})
}

// DELETE /api/orders/:id (admin)
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if !middleware.App(c).Orders.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	publish(c, h.publisher, events.OrderEvent{
		Kind:      events.OrderDeleted,
		OrderID:   id,
		SessionID: middleware.SessionID(c),
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted",
	})
}

// GET /api/orders/stats
func (h *OrderHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stats": middleware.App(c).Orders.GetStats(),
	})
}

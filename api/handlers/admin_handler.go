package handlers

import (
	"net/http"
	"time"

	"go-flowershop/api/middleware"
	"go-flowershop/internal/events"
	"go-flowershop/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminHandler struct {
	publisher events.Publisher
}

func NewAdminHandler(publisher events.Publisher) *AdminHandler {
	return &AdminHandler{publisher: publisher}
}

type createUserRequest struct {
	Name      string      `json:"name" binding:"required"`
	Email     string      `json:"email" binding:"required,email"`
	Role      models.Role `json:"role" binding:"omitempty,oneof=user admin"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	AvatarURL string      `json:"avatar_url"`
}

type createProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Category    models.Category `json:"category" binding:"required"`
	InStock     bool            `json:"in_stock"`
	Rating      float64         `json:"rating" binding:"gte=0,lte=5"`
}

type createOrderRequest struct {
	UserID          string             `json:"user_id"`
	UserName        string             `json:"user_name"`
	Items           []models.CartLine  `json:"items" binding:"required,min=1"`
	Status          models.OrderStatus `json:"status"`
	ShippingAddress string             `json:"shipping_address" binding:"required"`
}

// GET /api/admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	admin := middleware.App(c).Admin

	byStatus := gin.H{}
	for _, s := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		byStatus[string(s)] = admin.OrderCountByStatus(s)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":             admin.Stats(),
		"orders_by_status": byStatus,
	})
}

// ========== USERS ==========

// GET /api/admin/users?q=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users := middleware.App(c).Admin.SearchUsers(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"data": users, "meta": gin.H{"total": len(users)}})
}

// GET /api/admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	user, ok := middleware.App(c).Admin.GetUser(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// POST /api/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := middleware.App(c).Admin.AddUser(models.User{
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Phone:     req.Phone,
		Address:   req.Address,
		AvatarURL: req.AvatarURL,
	})
	c.JSON(http.StatusCreated, gin.H{"data": user})
}

// PATCH /api/admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req models.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Role != nil && !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	user, ok := middleware.App(c).Admin.UpdateUser(c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if !middleware.App(c).Admin.DeleteUser(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// ========== PRODUCTS ==========

// GET /api/admin/products?q=&category=&stock=
func (h *AdminHandler) ListProducts(c *gin.Context) {
	products := middleware.App(c).Admin.SearchProducts(models.ProductFilter{
		Term:     c.Query("q"),
		Category: models.Category(c.Query("category")),
		Stock:    models.StockFilter(c.Query("stock")),
	})
	c.JSON(http.StatusOK, gin.H{"data": products, "meta": gin.H{"total": len(products)}})
}

// GET /api/admin/products/:id
func (h *AdminHandler) GetProduct(c *gin.Context) {
	product, ok := middleware.App(c).Admin.GetProduct(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

// POST /api/admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !req.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	product := middleware.App(c).Admin.AddProduct(models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		InStock:     req.InStock,
		Rating:      req.Rating,
	})
	c.JSON(http.StatusCreated, gin.H{"data": product})
}

// PATCH /api/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var req models.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Category != nil && !req.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}
	if req.Price != nil && req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}
	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 0 and 5"})
		return
	}

	product, ok := middleware.App(c).Admin.UpdateProduct(c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

// POST /api/admin/products/:id/toggle-stock
func (h *AdminHandler) ToggleStock(c *gin.Context) {
	product, ok := middleware.App(c).Admin.ToggleStock(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

// DELETE /api/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if !middleware.App(c).Admin.DeleteProduct(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// ========== ORDERS ==========

// GET /api/admin/orders?q=&status=
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders := middleware.App(c).Admin.SearchOrders(models.OrderFilter{
		Term:   c.Query("q"),
		Status: models.OrderStatus(c.Query("status")),
	})
	c.JSON(http.StatusOK, gin.H{"data": orders, "meta": gin.H{"total": len(orders)}})
}

// GET /api/admin/orders/:id
func (h *AdminHandler) GetOrder(c *gin.Context) {
	order, ok := middleware.App(c).Admin.GetOrder(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": order, "item_count": order.ItemCount()})
}

// POST /api/admin/orders
func (h *AdminHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Status != "" && !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item quantities must be positive"})
			return
		}
	}

	order := middleware.App(c).Admin.AddOrder(models.Order{
		UserID:          req.UserID,
		UserName:        req.UserName,
		Items:           req.Items,
		Status:          req.Status,
		CreatedAt:       time.Now(),
		ShippingAddress: req.ShippingAddress,
	})
	publish(c, h.publisher, events.OrderEvent{
		Kind:      events.OrderCreated,
		OrderID:   order.ID,
		SessionID: middleware.SessionID(c),
		Status:    order.Status,
		Total:     order.TotalPrice.String(),
	})
	c.JSON(http.StatusCreated, gin.H{"data": order})
}

// PATCH /api/admin/orders/:id
func (h *AdminHandler) UpdateOrder(c *gin.Context) {
	var req models.OrderUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return
	}

	order, ok := middleware.App(c).Admin.UpdateOrder(c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if req.Status != nil {
		publish(c, h.publisher, events.OrderEvent{
			Kind:      events.OrderStatusChanged,
			OrderID:   order.ID,
			SessionID: middleware.SessionID(c),
			Status:    order.Status,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": order})
}

// PUT /api/admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
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
	admin := middleware.App(c).Admin
	if !admin.SetOrderStatus(id, req.Status) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	publish(c, h.publisher, events.OrderEvent{
		Kind:      events.OrderStatusChanged,
		OrderID:   id,
		SessionID: middleware.SessionID(c),
		Status:    req.Status,
	})

	order, _ := admin.GetOrder(id)
	c.JSON(http.StatusOK, gin.H{"data": order})
}

// DELETE /api/admin/orders/:id
func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if !middleware.App(c).Admin.DeleteOrder(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	publish(c, h.publisher, events.OrderEvent{
		Kind:      events.OrderDeleted,
		OrderID:   id,
		SessionID: middleware.SessionID(c),
	})
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

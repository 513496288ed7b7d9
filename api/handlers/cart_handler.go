package handlers

import (
	"net/http"

	"go-flowershop/api/middleware"
	errx "go-flowershop/internal/core/error"
	"go-flowershop/internal/models"
	"go-flowershop/internal/services"
	logx "go-flowershop/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

func cartView(cart *services.CartService) gin.H {
	return gin.H{
		"items":      cart.Lines(),
		"item_count": cart.ItemCount(),
		"subtotal":   cart.Subtotal(),
	}
}

// GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": cartView(middleware.App(c).Cart),
	})
}

// POST /api/cart/items
// Adds quantity (default 1) of a catalog product, merging with an existing line
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	app := middleware.App(c)
	product, exists := app.Catalog.ByID(req.ProductID)
	if !exists {
		respondError(c, errx.NotFound("Product not found"))
		return
	}
	if !product.InStock {
		respondError(c, errx.Conflict("Product is out of stock"))
		return
	}

	app.Cart.AddItem(product, req.Quantity)
	logx.Debug().Str("session", middleware.SessionID(c)).Str("product_id", product.ID).Int("quantity", req.Quantity).Msg("cart item added")

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data":    cartView(app.Cart),
	})
}

// PUT /api/cart/items/:product_id
// A quantity of zero or less removes the line
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	productID := c.Param("product_id")

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cart := middleware.App(c).Cart
	if _, ok := cart.Line(productID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
		return
	}

	cart.SetQuantity(productID, *req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    cartView(cart),
	})
}

// DELETE /api/cart/items/:product_id
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	cart := middleware.App(c).Cart
	cart.RemoveItem(c.Param("product_id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed",
		"data":    cartView(cart),
	})
}

// DELETE /api/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	cart := middleware.App(c).Cart
	cart.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"data":    cartView(cart),
	})
}

package handlers

import (
	"net/http"

	"go-flowershop/api/middleware"
	"go-flowershop/internal/models"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

// GET /api/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": middleware.App(c).Catalog.Categories(),
	})
}

// GET /api/products
// Products matching the active category filter
func (h *ProductHandler) GetFilteredProducts(c *gin.Context) {
	catalog := middleware.App(c).Catalog
	products := catalog.Filtered()

	c.JSON(http.StatusOK, gin.H{
		"data": products,
		"meta": gin.H{
			"filter": catalog.Filter(),
			"total":  len(products),
		},
	})
}

// GET /api/products/all
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products := middleware.App(c).Catalog.List()

	c.JSON(http.StatusOK, gin.H{
		"data": products,
		"meta": gin.H{"total": len(products)},
	})
}

// PUT /api/products/filter
func (h *ProductHandler) SetFilter(c *gin.Context) {
	var req struct {
		Category models.Category `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Category != models.CategoryAll && !req.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	catalog := middleware.App(c).Catalog
	catalog.SetFilter(req.Category)

	c.JSON(http.StatusOK, gin.H{
		"filter": catalog.Filter(),
		"total":  len(catalog.Filtered()),
	})
}

// GET /api/products/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	product, exists := middleware.App(c).Catalog.ByID(c.Param("id"))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}

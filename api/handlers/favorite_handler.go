package handlers

import (
	"net/http"

	"go-flowershop/api/middleware"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct{}

func NewFavoriteHandler() *FavoriteHandler {
	return &FavoriteHandler{}
}

// GET /api/favorites
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	favorites := middleware.App(c).Favorites

	c.JSON(http.StatusOK, gin.H{
		"data":  favorites.List(),
		"count": favorites.Count(),
	})
}

// POST /api/favorites/:product_id/toggle
func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	app := middleware.App(c)
	product, exists := app.Catalog.ByID(c.Param("product_id"))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	favorite := app.Favorites.Toggle(product)

	c.JSON(http.StatusOK, gin.H{
		"product_id": product.ID,
		"favorite":   favorite,
		"count":      app.Favorites.Count(),
	})
}

// DELETE /api/favorites/:product_id
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	favorites := middleware.App(c).Favorites
	favorites.Remove(c.Param("product_id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Removed from favorites",
		"count":   favorites.Count(),
	})
}

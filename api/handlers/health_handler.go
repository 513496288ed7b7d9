package handlers

import (
	"net/http"
	"runtime"
	"time"

	"go-flowershop/internal/storefront"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	registry *storefront.Registry
}

func NewHealthHandler(registry *storefront.Registry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// GET /api/health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// GET /debug/runtime
func (h *HealthHandler) Runtime(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"goroutines": runtime.NumGoroutine(),
		"sessions":   h.registry.Len(),
		"timestamp":  time.Now().Unix(),
	})
}

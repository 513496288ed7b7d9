package handlers

import (
	"context"
	"net/http"
	"time"

	errx "go-flowershop/internal/core/error"
	"go-flowershop/internal/events"
	logx "go-flowershop/pkg/logger"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, err error) {
	appErr := errx.Resolve(err)
	if appErr.Status >= http.StatusInternalServerError {
		logx.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// publish sends an order event without letting a broker failure reach the
// client.
func publish(c *gin.Context, publisher events.Publisher, event events.OrderEvent) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := publisher.Publish(ctx, event); err != nil {
		logx.Warn().Err(err).Str("order_id", event.OrderID).Str("kind", string(event.Kind)).Msg("order event dropped")
	}
}

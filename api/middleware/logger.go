package middleware

import (
	"time"

	logx "go-flowershop/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request through logx.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logx.Info()
		if status >= 500 {
			event = logx.Error()
		} else if status >= 400 {
			event = logx.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client", c.ClientIP()).
			Str("session", SessionID(c)).
			Msg("request")
	}
}

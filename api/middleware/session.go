package middleware

import (
	"net/http"

	"go-flowershop/internal/metrics"
	"go-flowershop/internal/storefront"

	"github.com/gin-gonic/gin"
)

const (
	SessionHeader = "X-Session-ID"
	appKey        = "storefront.app"
	sessionKey    = "storefront.session_id"
)

// Workspace attaches the caller's storefront App to the request, creating a
// new session when the header is missing or unknown. The session id is echoed
// in the response header either way.
func Workspace(registry *storefront.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		app, id, created := registry.Resolve(c.GetHeader(SessionHeader))
		if created {
			metrics.SetActiveSessions(registry.Len())
		}

		c.Set(appKey, app)
		c.Set(sessionKey, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}

// App returns the App attached by Workspace.
func App(c *gin.Context) *storefront.App {
	return c.MustGet(appKey).(*storefront.App)
}

func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// RequireAdmin lets the request through only for an admin session.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := App(c).Session
		if !session.IsLoggedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sign in required"})
			return
		}
		if !session.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

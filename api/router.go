package api

import (
	"time"

	"go-flowershop/api/handlers"
	"go-flowershop/api/middleware"
	"go-flowershop/internal/events"
	"go-flowershop/internal/metrics"
	"go-flowershop/internal/storefront"

	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	Registry    *storefront.Registry
	Publisher   events.Publisher
	AuthLimiter *middleware.RateLimiter
	AuthDelay   time.Duration
	// TrustedProxies lists the proxy addresses or CIDRs whose forwarded
	// headers decide the client IP. Empty trusts none.
	TrustedProxies []string
	// Debug enables the /debug endpoints.
	Debug bool
}

func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	if cfg.Publisher == nil {
		cfg.Publisher = events.Nop{}
	}

	healthHandler := handlers.NewHealthHandler(cfg.Registry)
	productHandler := handlers.NewProductHandler()
	cartHandler := handlers.NewCartHandler()
	favoriteHandler := handlers.NewFavoriteHandler()
	authHandler := handlers.NewAuthHandler(cfg.AuthDelay)
	orderHandler := handlers.NewOrderHandler(cfg.Publisher)
	adminHandler := handlers.NewAdminHandler(cfg.Publisher)

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	api.GET("/health", healthHandler.HealthCheck)

	// Everything below runs against the caller's storefront session
	store := api.Group("")
	store.Use(middleware.Workspace(cfg.Registry), middleware.RequestLogger())
	{
		store.GET("/categories", productHandler.GetCategories)

		products := store.Group("/products")
		{
			products.GET("", productHandler.GetFilteredProducts)
			products.GET("/all", productHandler.GetAllProducts)
			products.PUT("/filter", productHandler.SetFilter)
			products.GET("/:id", productHandler.GetProductByID)
		}

		cart := store.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddToCart)
			cart.PUT("/items/:product_id", cartHandler.UpdateCartItem)
			cart.DELETE("/items/:product_id", cartHandler.RemoveCartItem)
		}

		favorites := store.Group("/favorites")
		{
			favorites.GET("", favoriteHandler.GetFavorites)
			favorites.POST("/:product_id/toggle", favoriteHandler.ToggleFavorite)
			favorites.DELETE("/:product_id", favoriteHandler.RemoveFavorite)
		}

		auth := store.Group("/auth")
		{
			limited := auth.Group("")
			if cfg.AuthLimiter != nil {
				limited.Use(cfg.AuthLimiter.Handler())
			}
			limited.POST("/login", authHandler.Login)
			limited.POST("/signup", authHandler.Signup)

			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
			auth.PATCH("/profile", authHandler.UpdateProfile)
		}

		orders := store.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/stats", orderHandler.GetStats)
			orders.GET("/:id", orderHandler.GetOrderByID)
			orders.PUT("/:id/status", middleware.RequireAdmin(), orderHandler.UpdateStatus)
			orders.DELETE("/:id", middleware.RequireAdmin(), orderHandler.DeleteOrder)
		}

		admin := store.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("/stats", adminHandler.GetStats)

			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users", adminHandler.CreateUser)
			admin.GET("/users/:id", adminHandler.GetUser)
			admin.PATCH("/users/:id", adminHandler.UpdateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)

			admin.GET("/products", adminHandler.ListProducts)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.GET("/products/:id", adminHandler.GetProduct)
			admin.PATCH("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)
			admin.POST("/products/:id/toggle-stock", adminHandler.ToggleStock)

			admin.GET("/orders", adminHandler.ListOrders)
			admin.POST("/orders", adminHandler.CreateOrder)
			admin.GET("/orders/:id", adminHandler.GetOrder)
			admin.PATCH("/orders/:id", adminHandler.UpdateOrder)
			admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
			admin.DELETE("/orders/:id", adminHandler.DeleteOrder)
		}
	}

	if cfg.Debug {
		router.GET("/debug/runtime", healthHandler.Runtime)
	}

	return router, nil
}

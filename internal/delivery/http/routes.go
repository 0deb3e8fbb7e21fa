package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/huefit/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", handler.SearchProducts)
			products.GET("/:retailerId/:productId", handler.GetProductDetails)
		}

		v1.POST("/recommendations", handler.Recommendations)
		v1.POST("/compatibility", handler.Compatibility)

		retailers := v1.Group("/retailers")
		{
			retailers.GET("", handler.ListRetailers)
			retailers.POST("", handler.AddRetailer)
			retailers.PUT("/:id", handler.UpdateRetailer)
			retailers.DELETE("/:id", handler.RemoveRetailer)
			retailers.PATCH("/:id/active", handler.SetRetailerActive)
			retailers.PUT("/:id/credential", handler.SetCredential)
			retailers.DELETE("/:id/credential", handler.RemoveCredential)
		}
	}

	return router
}

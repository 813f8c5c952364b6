package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/royaltyguard/royalty-checker/internal/api/middleware"
	"github.com/royaltyguard/royalty-checker/internal/metrics"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check and metrics (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		api.POST("/check-nfts", handler.CheckNfts)
		api.POST("/check-nfts-unlisted", handler.CheckUnlisted)
		api.POST("/royalty-breakdown", handler.RoyaltyBreakdown)
	}

	// Paginated endpoints require authentication
	v1 := router.Group("/api/v1", middleware.Auth(authCfg))
	{
		v1.POST("/check-nfts", handler.CheckNftsPage)
		v1.POST("/check-nfts-unlisted", handler.CheckUnlistedPage)
	}
}

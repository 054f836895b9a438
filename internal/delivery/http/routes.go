package http

import (
	"github.com/foodinfo/backend/config"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router. Route paths mirror the
// contract the mobile client already consumes.
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)
	router.GET("/search", handler.SearchFoods)
	router.GET("/food/:fdcId", handler.GetFood)

	return router
}

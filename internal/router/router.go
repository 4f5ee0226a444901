package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebud-ai/namegen/backend/config"
	"github.com/tastebud-ai/namegen/backend/internal/api"
	"github.com/tastebud-ai/namegen/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, generateHandler *api.GenerateHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	generateHandler.RegisterRoutes(v1)

	return router
}

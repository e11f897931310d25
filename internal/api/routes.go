package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Repository Insights API
// @version 1.0
// @description API for collecting GitHub repository activity and engineering metrics
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// SetupRouter configures the API routes
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", h.HealthCheck)

	// API v1 group
	v1 := r.Group("/api/v1")
	{
		repos := v1.Group("/repos/:owner/:repo")
		{
			repos.GET("/stats", h.GetRepositoryStats)
			repos.GET("/metrics", h.GetRepositoryMetrics)
		}
	}

	return r
}

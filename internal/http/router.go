// Package http exposes the post-processing operations over a Gin API.
package http

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.metgrid.io/nbhood-api/internal/usecase"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(postprocUC *usecase.PostProcessUseCase) *gin.Engine {

	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable.
	// Default to allow all origins if not specified.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))

	// Create handler.
	handler := NewHandler(postprocUC)

	// API v1 routes.
	v1 := router.Group("/v1")
	// Neighbourhood smoothing.
	v1.POST("/nbhood/process", handler.ProcessNeighbourhood)
	// Weighted blending.
	v1.POST("/blend", handler.Blend)

	// Health check.
	router.GET("/health", handler.HealthCheck)

	// Prometheus metrics.
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

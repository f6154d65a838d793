// Package main provides the grid post-processing HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	httpHandler "go.metgrid.io/nbhood-api/internal/http"
	"go.metgrid.io/nbhood-api/internal/observability"
	"go.metgrid.io/nbhood-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("nbhood-api version %s\n", version)
		return
	}

	// Load configuration from environment.
	port := getEnv("PORT", "8080")

	log.Printf("Starting post-processing API server...")
	log.Printf("Port: %s", port)

	// Initialize metrics and use case.
	metrics := observability.NewMetrics()
	postprocUC := usecase.NewPostProcessUseCase(metrics)

	// Setup router.
	router := httpHandler.SetupRouter(postprocUC)

	// Start server.
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", port)
	log.Printf("API endpoints:")
	log.Printf("  - POST /v1/nbhood/process")
	log.Printf("  - POST /v1/blend")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Post-processing API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  nbhood-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server with default settings")
	fmt.Println("  nbhood-api")
	fmt.Println()
	fmt.Println("  # Start server on custom port")
	fmt.Println("  PORT=3000 nbhood-api")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET  /health               Health check")
	fmt.Println("  GET  /metrics              Prometheus metrics")
	fmt.Println("  POST /v1/nbhood/process    Neighbourhood-smooth a cube")
	fmt.Println("  POST /v1/blend             Blend a cube across one dimension")
	fmt.Println()
}

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"solarcap-sim/internal/api/handlers"
	"solarcap-sim/internal/api/middleware"
	"solarcap-sim/internal/api/store"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	ttl := 1 * time.Hour
	if ttlStr := os.Getenv("RUN_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil {
			ttl = parsed
		}
	}
	runs := store.NewRunStore(ttl)

	simulateHandler := handlers.NewSimulateHandler(runs)
	sweepHandler := handlers.NewSweepHandler()
	nodeHandler := handlers.NewNodeHandler()
	solverHandler := handlers.NewSolverHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.GET("/runs/:id/trace", simulateHandler.GetTrace)
		api.POST("/sweep", sweepHandler.RunSweep)

		api.GET("/nodes", nodeHandler.ListNodes)
		api.GET("/solvers", solverHandler.ListSolvers)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s (run TTL %s)", addr, ttl)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

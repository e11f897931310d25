package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ghcollect/ghcollect/internal/api"
	"github.com/ghcollect/ghcollect/internal/collector"
	"github.com/ghcollect/ghcollect/internal/config"
	"github.com/ghcollect/ghcollect/internal/github"

	_ "github.com/ghcollect/ghcollect/docs"
)

// @title Repository Insights API
// @version 1.0
// @description API for collecting GitHub repository activity and engineering metrics
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	// Load configuration with defaults
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if cfg.GitHubToken == "" {
		logger.Warn("GITHUB_TOKEN not set, using unauthenticated GitHub API access")
	}

	// Initialize services
	client := github.NewClient(cfg.GitHubToken, logger,
		github.WithBaseURL(cfg.GitHub.APIBaseURL),
		github.WithPageSize(cfg.GitHub.PageSize),
		github.WithSubqueryWorkers(cfg.GitHub.SubqueryWorkers),
	)
	collectorService := collector.NewService(client, logger)
	apiHandler := api.NewHandler(collectorService, logger)
	router := api.SetupRouter(apiHandler)

	// Create HTTP server. Collections can page through large repositories,
	// so the write timeout is generous.
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited properly")
}

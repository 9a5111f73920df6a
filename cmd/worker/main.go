// cmd/worker/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"lawfirm-cms/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadConfig()
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	// Health checks first: without Redis there is no queue and no shared cache
	checker := newHealthChecker(cfg)
	if err := checker.checkAll(context.Background()); err != nil {
		log.Fatalf("[Startup] Health check failed: %v", err)
	}
	defer checker.Close()

	// Initialize handlers
	handlers, cleanup := initializeHandlers(cfg)
	defer cleanup()

	// Setup Asynq server
	srv := setupAsynqServer(cfg, handlers)

	// Setup scheduler
	scheduler := setupScheduler(cfg)

	startServices(cfg, checker)

	// Wait for shutdown signal
	waitForShutdown(srv, scheduler)
}

func waitForShutdown(srv *asynqServer, scheduler *asynqScheduler) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[Shutdown] Gracefully stopping...")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Println("[Shutdown] ✓ Stopped")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "quicksizer/docs"
	"quicksizer/internal/adapter/http/routes"
	"quicksizer/internal/config"
	"quicksizer/internal/infrastructure/observability"
	"quicksizer/pkg/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

// @title           QuickSizer API
// @version         1.0
// @description     Cost estimation for data platform deployments.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @host localhost:8080

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := observability.InitTracing(ctx, cfg.Tracing, cfg.Env, log)
	if err != nil {
		log.Warn("tracing disabled", "error", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(flushCtx)
	}()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}

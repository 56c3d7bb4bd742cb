// Package main provides the entry point for the BannerDesk API server
package main

import (
	"bannerdesk/internal/api/server"
	"bannerdesk/internal/config"
	"bannerdesk/internal/database"
	"bannerdesk/internal/logger"
	"bannerdesk/internal/validation"
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Parse command line flags
	envFile := flag.String("env", ".env", "Path to env file")
	flag.Parse()

	// Load environment file
	if err := godotenv.Load(*envFile); err != nil && *envFile == ".env" {
		log.Printf("Warning: %v", err)
	}

	// Load configuration
	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	defer func() { _ = logg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect and run migrations
	db, err := database.SetupDatabase(ctx, cfg.Database)
	if err != nil {
		logg.Fatal("failed to set up database", zap.Error(err))
	}
	defer db.Close()

	// Initialize validators
	validation.Initialize()

	srv, err := server.New(ctx, cfg, db, logg)
	if err != nil {
		logg.Fatal("failed to create server", zap.Error(err))
	}
	defer srv.Close()

	if err := srv.Run(ctx); err != nil {
		logg.Error("server stopped with error", zap.Error(err))
		return
	}
	logg.Info("server exiting")
}

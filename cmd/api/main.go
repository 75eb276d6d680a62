package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brightpath-foundation/brightpath-api/internal/auth"
	"github.com/brightpath-foundation/brightpath-api/internal/config"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
	"github.com/brightpath-foundation/brightpath-api/internal/server"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/objectstore"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Server.LogLevel)
	log := logger.Get()

	log.Info("Starting BrightPath API", "environment", cfg.Server.Environment)

	repos, err := postgres.NewContainer(cfg)
	if err != nil {
		log.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	store, err := objectstore.New(cfg)
	if err != nil {
		log.Error("Failed to initialize object store", "error", err)
		os.Exit(1)
	}

	authService := auth.NewService(repos.Admins(), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.AdminDomain)

	srv := server.New(cfg, repos, store, authService)

	go func() {
		if err := srv.Start(); err != nil {
			log.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error("Forced shutdown", "error", err)
		os.Exit(1)
	}

	if err := postgres.Close(); err != nil {
		log.Error("Failed to close database connection", "error", err)
	}

	log.Info("Server exited cleanly")
}

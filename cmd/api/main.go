// Package main is the entry point for the notable dates API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/awrigley/notable-dates-api/internal/api"
	"github.com/awrigley/notable-dates-api/internal/config"
	"github.com/awrigley/notable-dates-api/internal/database"
	"github.com/awrigley/notable-dates-api/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	log.Info("starting notable dates API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
	)

	// Open database and apply migrations
	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		log.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if _, err := db.Migrate(context.Background()); err != nil {
		log.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Build handlers and routes
	handlers := api.NewHandlers(db, cfg, log)
	router := api.SetupRoutes(handlers, cfg, log)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("notable dates API ready", slog.String("addr", addr))

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

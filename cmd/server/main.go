// Package main implements the entry point for the Cookieter API server,
// the HTTP backend of the food-donation web application.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/cookieter/cookieter-api/internal/config"
	"github.com/cookieter/cookieter-api/internal/platform/logger"
	"github.com/cookieter/cookieter-api/internal/platform/mongodb"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// run loads configuration, wires the application dependencies, and serves
// until shutdown. Split out of main so every failure path flows through a
// single error return.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"environment", cfg.Server.Environment)

	ctx := context.Background()

	client, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	appLogger.Info("connected to mongodb", "database", cfg.Database.Name)

	app, err := newApplication(ctx, cfg, appLogger, client)
	if err != nil {
		// The client is otherwise closed by app.cleanup after shutdown.
		if derr := mongodb.Disconnect(client); derr != nil {
			appLogger.Error("failed to disconnect from mongodb", "error", derr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

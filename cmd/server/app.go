package main

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cookieter/cookieter-api/internal/config"
	"github.com/cookieter/cookieter-api/internal/platform/mongodb"
	"github.com/cookieter/cookieter-api/internal/service/auth"
	"github.com/cookieter/cookieter-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	client *mongo.Client

	// Stores (using interfaces for proper abstraction)
	foodStore    store.FoodStore
	requestStore store.RequestStore

	// Service interfaces
	tokenService auth.TokenService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger,
// and the database client that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	client *mongo.Client,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		client: client,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("token service initialized",
		"token_lifetime_days", cfg.Auth.TokenLifetimeDays)

	db := client.Database(cfg.Database.Name)
	app.foodStore = mongodb.NewFoodStore(db, logger)

	requestStore := mongodb.NewRequestStore(db, logger)
	if err := requestStore.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure request indexes: %w", err)
	}
	app.requestStore = requestStore
	logger.Info("stores initialized", "database", cfg.Database.Name)

	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.client != nil {
		if err := mongodb.Disconnect(app.client); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}

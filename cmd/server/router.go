package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cookieter/cookieter-api/internal/api"
	apiMiddleware "github.com/cookieter/cookieter-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Routes touching owner-scoped data sit behind the
// credential middleware; the browsing surface stays public.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.Timeout(time.Duration(app.config.Server.RequestTimeoutSeconds) * time.Second))

	// Fixed origin allow-list; credentials let the cookie travel
	// cross-origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.tokenService, &app.config.Server, &app.config.Auth)
	foodHandler := api.NewFoodHandler(app.foodStore)
	requestHandler := api.NewRequestHandler(app.requestStore)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService, app.config.Auth.CookieName)

	// Credential endpoints (public)
	r.Post("/jwt", authHandler.IssueToken)
	r.Get("/logout", authHandler.Logout)
	r.Post("/logout", authHandler.Logout)

	// Public browsing surface
	r.Post("/add-food", foodHandler.Create)
	r.Get("/foods", foodHandler.List)
	r.Get("/find-foods", foodHandler.ListAll)
	r.Get("/food/{id}", foodHandler.GetByID)

	// Owner-scoped routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/manage-food", foodHandler.ListByDonor)
		r.Delete("/manage-food/{id}", foodHandler.Delete)
		r.Patch("/update-mfood/{id}", foodHandler.Update)

		r.Post("/food-request", requestHandler.Create)
		r.Get("/find-food-request", requestHandler.ListByRequester)
		r.Delete("/food-request/{id}", requestHandler.Delete)
		r.Get("/manage-food-request", requestHandler.ListByDonorFood)
		r.Patch("/manage-food-request", requestHandler.Fulfill)
	})

	// Liveness endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Cookieter server is running")); err != nil {
			app.logger.Error("failed to write liveness response", "error", err)
		}
	})

	return r
}

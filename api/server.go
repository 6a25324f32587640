// ABOUTME: Huma API server configuration and setup
// ABOUTME: Builds one router per service with CORS and request logging

package api

import (
	"lexassist-api/api/middleware"
	"lexassist-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// APIConfig holds configuration for one API instance
type APIConfig struct {
	Logger interfaces.Logger
}

// NewAPIWithMiddleware creates and configures a new Huma API instance for a
// service, with CORS and optional request logging
func NewAPIWithMiddleware(name, version string, cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// The front-end is served from a different origin
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	config := huma.DefaultConfig(name, version)

	api := humachi.New(router, config)

	return api, router
}

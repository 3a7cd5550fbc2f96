// Package api exposes single-coordinate UTM conversions over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gadomski/utm/internal/config"
)

// NewRouter builds the HTTP handler for the conversion service.
func NewRouter(cfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", Health)

	r.Route("/v1", func(r chi.Router) {
		if cfg.RateLimit > 0 {
			r.Use(RateLimit(cfg.RateLimit, cfg.RateBurst))
		}
		r.Get("/forward", Forward)
		r.Post("/forward", ForwardGeoJSON)
		r.Get("/inverse", Inverse)
		r.Get("/zone", Zone)
	})

	return r
}

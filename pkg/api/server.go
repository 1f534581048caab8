// Package api exposes the pricklybird codec over HTTP.
//
// Routes:
//
//	POST /api/v1/encode   raw bytes (or JSON {"hex": "..."}) -> encoded text
//	POST /api/v1/decode   encoded text -> verified payload hex
//	GET  /api/v1/words    the 256-word codebook
//	GET  /api/v1/crc8     the checksum lookup table
//	GET  /health          liveness check
//	GET  /metrics         Prometheus metrics
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartServer starts the HTTP server with all routes configured
func StartServer(config ServerConfig) error {
	metrics := NewMetrics(prometheus.DefaultRegisterer)
	server := NewServer(config, metrics)

	r := NewRouter(server, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting pricklybird API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	return http.ListenAndServe(addr, r)
}

// NewRouter builds the chi router for a server instance.
func NewRouter(server *Server, metrics *Metrics) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Health check (unprotected for probes)
	r.Get("/health", metrics.InstrumentHandler("GET", "/health", server.handleHealth))

	r.Route("/api/v1", func(r chi.Router) {
		if server.config.APIKey != "" {
			r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(server.config.APIKey)))
		}

		r.Post("/encode", metrics.InstrumentHandler("POST", "/api/v1/encode", server.handleEncode))
		r.Post("/decode", metrics.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))
		r.Get("/words", metrics.InstrumentHandler("GET", "/api/v1/words", server.handleWords))
		r.Get("/crc8", metrics.InstrumentHandler("GET", "/api/v1/crc8", server.handleCRC8Table))
	})

	return r
}

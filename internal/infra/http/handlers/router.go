package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tracerfleet/tracer-api/internal/infra/http/middleware"
)

// NewRouter mounts the two public endpoints plus health and metrics.
// Both public endpoints are registered for every method because the
// handlers implement the OPTIONS/405 policy themselves.
func NewRouter(contact *ContactHandler, payment *PaymentHandler, health *HealthHandler) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(allowAllOrigins)

	r.HandleFunc("/api/send-email", contact.Handle)
	r.HandleFunc("/api/process-payment", payment.Handle)

	r.Get("/health", health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// allowAllOrigins covers non-browser clients: the cors middleware only
// answers requests that carry an Origin header, but every response on
// this API advertises the open policy.
func allowAllOrigins(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Origin") == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		next.ServeHTTP(w, r)
	})
}

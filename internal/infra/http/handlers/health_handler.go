package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tracerfleet/tracer-api/internal/config"
)

type HealthHandler struct {
	Cfg       *config.Config
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		Cfg:       cfg,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.Cfg.StripeSecretKey != "" {
		deps["stripe"] = "configured"
	} else {
		deps["stripe"] = "not configured"
	}

	if h.Cfg.BrevoAPIKey != "" {
		deps["brevo"] = "configured"
	} else {
		deps["brevo"] = "not configured"
	}

	if h.Cfg.ContactToEmail != "" {
		deps["contact_inbox"] = "configured"
	} else {
		deps["contact_inbox"] = "not configured"
	}

	deps["mail_delivery"] = h.Cfg.MailDelivery

	status := "healthy"
	if deps["stripe"] == "not configured" || deps["brevo"] == "not configured" {
		status = "degraded"
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	if status == "degraded" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	json.NewEncoder(w).Encode(response)
}

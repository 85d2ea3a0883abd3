package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/tracerfleet/tracer-api/internal/config"
	"github.com/tracerfleet/tracer-api/internal/infra/http/middleware"
	"github.com/tracerfleet/tracer-api/internal/usecase"
)

type ContactHandler struct {
	Intake  *usecase.ContactIntakeUseCase
	Cfg     *config.Config
	limiter *RateLimiter
}

func NewContactHandler(intake *usecase.ContactIntakeUseCase, cfg *config.Config) *ContactHandler {
	return &ContactHandler{
		Intake:  intake,
		Cfg:     cfg,
		limiter: NewRateLimiter(10, time.Minute),
	}
}

func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeContactError(w, http.StatusMethodNotAllowed, "Method not allowed",
			"This endpoint only accepts POST requests")
		return
	}

	if !h.limiter.Allow(getClientIP(r)) {
		writeContactError(w, http.StatusTooManyRequests, "Too many requests",
			"Please try again later")
		return
	}

	// Config problems surface per request so the caller gets a clean
	// 500; the specific missing variable only goes to the server log.
	if h.Cfg.BrevoAPIKey == "" {
		log.Println("contact handler: missing BREVO_API_KEY")
		writeContactError(w, http.StatusInternalServerError, "Server configuration error",
			"Email service is not configured properly. Please contact support.")
		return
	}
	if h.Cfg.ContactToEmail == "" {
		log.Println("contact handler: missing CONTACT_TO_EMAIL")
		writeContactError(w, http.StatusInternalServerError, "Server configuration error",
			"Contact email is not configured. Please contact support.")
		return
	}

	var input usecase.ContactIntakeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeContactError(w, http.StatusBadRequest, "Invalid request",
			"Request body must be valid JSON")
		return
	}

	output, err := h.Intake.Execute(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	middleware.RecordContactSubmission("accepted")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Thank you for your message. We'll get back to you within 1 business day.",
		"data": map[string]string{
			"name":  output.Name,
			"email": output.Email,
		},
		"redirectUrl": output.RedirectURL,
	})
}

func (h *ContactHandler) writeError(w http.ResponseWriter, err error) {
	var verrs usecase.ValidationErrors
	var terr *usecase.TechnicalError

	switch {
	case errors.As(err, &verrs):
		middleware.RecordContactSubmission("rejected")
		writeValidationError(w, verrs)
	case errors.As(err, &terr) && terr.Code == usecase.CodeEmailDeliveryFailed:
		middleware.RecordContactSubmission("failed")
		middleware.RecordIntegrationError("brevo")
		writeContactError(w, http.StatusInternalServerError, "Email delivery failed", terr.Message)
	default:
		middleware.RecordContactSubmission("failed")
		log.Printf("contact handler: unexpected error: %v", err)
		writeContactError(w, http.StatusInternalServerError, "Internal server error",
			"An unexpected error occurred. Please try again later.")
	}
}

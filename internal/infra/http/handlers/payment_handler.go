package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tracerfleet/tracer-api/internal/config"
	"github.com/tracerfleet/tracer-api/internal/infra/http/middleware"
	"github.com/tracerfleet/tracer-api/internal/usecase"
)

type PaymentHandler struct {
	Confirm *usecase.ConfirmPaymentUseCase
	Cfg     *config.Config
}

func NewPaymentHandler(confirm *usecase.ConfirmPaymentUseCase, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{
		Confirm: confirm,
		Cfg:     cfg,
	}
}

func (h *PaymentHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writePaymentError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if h.Cfg.StripeSecretKey == "" {
		log.Println("payment handler: missing STRIPE_SECRET_KEY")
		writePaymentError(w, http.StatusInternalServerError,
			"Payment processing is not configured properly.")
		return
	}
	if h.Cfg.BrevoAPIKey == "" {
		log.Println("payment handler: missing BREVO_API_KEY")
		writePaymentError(w, http.StatusInternalServerError,
			"Email service is not configured properly.")
		return
	}

	var input usecase.ConfirmPaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writePaymentError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	output, err := h.Confirm.Execute(r.Context(), input)
	if err != nil {
		var derr *usecase.DomainError
		if errors.As(err, &derr) {
			middleware.RecordVIPUpgrade("rejected")
			writePaymentError(w, http.StatusBadRequest, derr.Message)
			return
		}

		middleware.RecordVIPUpgrade("failed")
		log.Printf("payment handler: unexpected error: %v", err)
		writePaymentError(w, http.StatusInternalServerError,
			"An unexpected error occurred. Please contact support.")
		return
	}

	if !output.ContactUpdated || !output.WelcomeEmailSent {
		middleware.RecordIntegrationError("brevo")
	}
	middleware.RecordVIPUpgrade("confirmed")

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "VIP membership activated successfully!",
		"data":    output,
	})
}

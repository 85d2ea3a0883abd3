package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/tracerfleet/tracer-api/internal/config"
	"github.com/tracerfleet/tracer-api/internal/entity"
	"github.com/tracerfleet/tracer-api/internal/infra/http/handlers"
	"github.com/tracerfleet/tracer-api/internal/infra/integration/brevo"
	"github.com/tracerfleet/tracer-api/internal/infra/integration/stripe"
	"github.com/tracerfleet/tracer-api/internal/infra/mail"
	"github.com/tracerfleet/tracer-api/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	// 1. Integration clients
	stripeClient := stripe.NewClient(cfg.StripeSecretKey, stripe.DefaultBaseURL)
	brevoClient := brevo.NewClient(cfg.BrevoAPIKey, brevo.DefaultBaseURL)

	// 2. Email delivery
	var deliverer mail.Deliverer = mail.NewAPISender(brevoClient)
	if cfg.MailDelivery == "smtp" {
		deliverer = mail.NewSMTPSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)
	}
	mailService := mail.NewService(
		entity.EmailAddress{Name: cfg.FromName, Email: cfg.FromEmail},
		cfg.FromName, cfg.SiteURL, deliverer,
	)

	// 3. Use cases
	intakeUC := usecase.NewContactIntakeUseCase(brevoClient, mailService, cfg.ContactToEmail)
	confirmUC := usecase.NewConfirmPaymentUseCase(stripeClient, brevoClient, mailService)

	// 4. Handlers and router
	contactHandler := handlers.NewContactHandler(intakeUC, cfg)
	paymentHandler := handlers.NewPaymentHandler(confirmUC, cfg)
	healthHandler := handlers.NewHealthHandler(cfg)

	r := handlers.NewRouter(contactHandler, paymentHandler, healthHandler)

	log.Printf("tracer api listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}

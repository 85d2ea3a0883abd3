package config

import (
	"os"
	"strconv"
)

// Config holds every environment-supplied setting. It is loaded once in
// main and injected everywhere; required keys are still checked at
// request time so a misconfigured deploy answers with a clean 500
// instead of failing to boot.
type Config struct {
	Port    string
	SiteURL string

	StripeSecretKey string
	BrevoAPIKey     string

	ContactToEmail string
	FromEmail      string
	FromName       string

	// MailDelivery selects how transactional email leaves the process:
	// "api" goes through the Brevo HTTP API, "smtp" through the Brevo
	// SMTP relay via gomail.
	MailDelivery string
	MailHost     string
	MailPort     int
	MailUser     string
	MailPass     string
}

func Load() *Config {
	return &Config{
		Port:    getEnv("PORT", "8080"),
		SiteURL: getEnv("SITE_URL", "https://tracerfleet.com"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		BrevoAPIKey:     os.Getenv("BREVO_API_KEY"),

		ContactToEmail: os.Getenv("CONTACT_TO_EMAIL"),
		FromEmail:      getEnv("FROM_EMAIL", "noreply@tracerfleet.com"),
		FromName:       getEnv("FROM_NAME", "Tracer Fleet Tracking"),

		MailDelivery: getEnv("MAIL_DELIVERY", "api"),
		MailHost:     getEnv("MAIL_HOST", "smtp-relay.brevo.com"),
		MailPort:     getEnvInt("MAIL_PORT", 587),
		MailUser:     os.Getenv("MAIL_USER"),
		MailPass:     os.Getenv("MAIL_PASS"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tracerfleet/tracer-api/internal/config"
	"github.com/tracerfleet/tracer-api/internal/entity"
	"github.com/tracerfleet/tracer-api/internal/infra/integration/brevo"
)

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) RetrieveCheckoutSession(ctx context.Context, sessionID string) (*entity.PaymentSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PaymentSession), args.Error(1)
}

type MockContactDirectory struct {
	mock.Mock
}

func (m *MockContactDirectory) UpsertContact(ctx context.Context, input brevo.UpsertContactInput) (brevo.UpsertResult, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(brevo.UpsertResult), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOperatorNotification(ctx context.Context, to string, sub entity.ContactSubmission) error {
	args := m.Called(ctx, to, sub)
	return args.Error(0)
}

func (m *MockEmailService) SendContactConfirmation(ctx context.Context, sub entity.ContactSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockEmailService) SendVIPWelcome(ctx context.Context, to entity.EmailAddress) error {
	args := m.Called(ctx, to)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:            "8080",
		SiteURL:         "https://tracerfleet.com",
		StripeSecretKey: "sk_test_abc",
		BrevoAPIKey:     "brevo-key",
		ContactToEmail:  "ops@tracerfleet.com",
		FromEmail:       "noreply@tracerfleet.com",
		FromName:        "Tracer Fleet Tracking",
		MailDelivery:    "api",
	}
}

package usecase

import (
	"context"

	"github.com/tracerfleet/tracer-api/internal/entity"
	"github.com/tracerfleet/tracer-api/internal/infra/integration/brevo"
)

// PaymentGateway confirms checkout sessions with the payment processor.
type PaymentGateway interface {
	RetrieveCheckoutSession(ctx context.Context, sessionID string) (*entity.PaymentSession, error)
}

// ContactDirectory upserts contact records in the marketing service.
// The result says whether an existing record was updated or a new one
// created; any other outcome is an error.
type ContactDirectory interface {
	UpsertContact(ctx context.Context, input brevo.UpsertContactInput) (brevo.UpsertResult, error)
}

// EmailService composes and delivers the transactional emails the two
// workflows send.
type EmailService interface {
	SendOperatorNotification(ctx context.Context, to string, sub entity.ContactSubmission) error
	SendContactConfirmation(ctx context.Context, sub entity.ContactSubmission) error
	SendVIPWelcome(ctx context.Context, to entity.EmailAddress) error
}

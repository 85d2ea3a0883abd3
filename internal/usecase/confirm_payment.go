package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/tracerfleet/tracer-api/internal/entity"
	"github.com/tracerfleet/tracer-api/internal/infra/integration/brevo"
)

// ConfirmPaymentUseCase runs the post-checkout VIP upgrade: confirm the
// session is paid, then best-effort promote the payer to VIP in the
// marketing service and send the welcome email. The payment is the
// operation of record; the two side effects report back as booleans and
// never fail the request.
type ConfirmPaymentUseCase struct {
	Gateway  PaymentGateway
	Contacts ContactDirectory
	Email    EmailService

	// now is swapped in tests to pin the VIP purchase timestamp.
	now func() time.Time
}

func NewConfirmPaymentUseCase(gateway PaymentGateway, contacts ContactDirectory, email EmailService) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{
		Gateway:  gateway,
		Contacts: contacts,
		Email:    email,
		now:      time.Now,
	}
}

func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, input ConfirmPaymentInput) (*ConfirmPaymentOutput, error) {
	if strings.TrimSpace(input.SessionID) == "" {
		return nil, &DomainError{
			Code:    CodeMissingSessionID,
			Message: "Session ID is required",
		}
	}

	session, err := uc.Gateway.RetrieveCheckoutSession(ctx, input.SessionID)
	if err != nil {
		log.Printf("confirm payment: session retrieval failed: %v", err)
		return nil, &DomainError{
			Code:    CodeInvalidSession,
			Message: "Invalid or expired session",
		}
	}

	if !session.Paid() {
		return nil, &DomainError{
			Code:    CodePaymentNotCompleted,
			Message: "Payment not completed",
		}
	}

	if session.CustomerEmail == "" {
		log.Printf("confirm payment: no customer email on session %s", session.ID)
		return nil, &DomainError{
			Code:    CodeNoCustomerEmail,
			Message: "Customer email not found",
		}
	}

	log.Printf("confirm payment: processing VIP upgrade for %s", session.CustomerEmail)

	contactUpdated := true
	if _, err := uc.Contacts.UpsertContact(ctx, brevo.VIPContactInput(session.CustomerEmail, session.CustomerName, uc.now())); err != nil {
		log.Printf("confirm payment: VIP contact upsert failed for %s: %v", session.CustomerEmail, err)
		contactUpdated = false
	}

	emailSent := true
	to := entity.EmailAddress{Name: session.CustomerName, Email: session.CustomerEmail}
	if err := uc.Email.SendVIPWelcome(ctx, to); err != nil {
		log.Printf("confirm payment: welcome email failed for %s: %v", session.CustomerEmail, err)
		emailSent = false
	}

	return &ConfirmPaymentOutput{
		Email:            session.CustomerEmail,
		VIPStatus:        true,
		ContactUpdated:   contactUpdated,
		WelcomeEmailSent: emailSent,
	}, nil
}

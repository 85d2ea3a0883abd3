package usecase

import (
	"context"
	"log"
	"net/url"

	"github.com/tracerfleet/tracer-api/internal/entity"
	"github.com/tracerfleet/tracer-api/internal/infra/integration/brevo"
)

// ContactIntakeUseCase runs the contact-form workflow: validate and
// sanitize the submission, notify the operator, then best-effort upsert
// the submitter as a contact and send them a confirmation.
type ContactIntakeUseCase struct {
	Contacts ContactDirectory
	Email    EmailService
	NotifyTo string
}

func NewContactIntakeUseCase(contacts ContactDirectory, email EmailService, notifyTo string) *ContactIntakeUseCase {
	return &ContactIntakeUseCase{
		Contacts: contacts,
		Email:    email,
		NotifyTo: notifyTo,
	}
}

func (uc *ContactIntakeUseCase) Execute(ctx context.Context, input ContactIntakeInput) (*ContactIntakeOutput, error) {
	if errs := ValidateContactIntakeInput(input); len(errs) > 0 {
		return nil, errs
	}

	sub := entity.ContactSubmission{
		Name:    Sanitize(input.Name),
		Email:   Sanitize(input.Email),
		Message: Sanitize(input.Message),
	}

	// The operator notification is the one mandatory side effect. If it
	// cannot be delivered the whole request fails, before any contact
	// record is touched.
	if err := uc.Email.SendOperatorNotification(ctx, uc.NotifyTo, sub); err != nil {
		log.Printf("contact intake: operator notification failed: %v", err)
		return nil, &TechnicalError{
			Code:    CodeEmailDeliveryFailed,
			Message: "Failed to send notification email",
		}
	}

	if _, err := uc.Contacts.UpsertContact(ctx, brevo.GeneralContactInput(sub.Email, sub.Name)); err != nil {
		log.Printf("contact intake: contact upsert failed for %s: %v", sub.Email, err)
	}

	if err := uc.Email.SendContactConfirmation(ctx, sub); err != nil {
		// Operator already got the message; the submitter just misses
		// the courtesy copy.
		log.Printf("contact intake: confirmation email failed for %s: %v", sub.Email, err)
	}

	return &ContactIntakeOutput{
		Name:        sub.Name,
		Email:       sub.Email,
		RedirectURL: "/vip?email=" + url.QueryEscape(sub.Email),
	}, nil
}

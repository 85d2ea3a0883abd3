package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"text/template"
	"time"

	"github.com/tracerfleet/tracer-api/internal/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Service composes the three transactional emails and hands them to a
// Deliverer. Field values are expected to be sanitized by the caller
// before they reach a template.
type Service struct {
	From      entity.EmailAddress
	SiteName  string
	SiteURL   string
	deliverer Deliverer
}

func NewService(from entity.EmailAddress, siteName, siteURL string, deliverer Deliverer) *Service {
	return &Service{
		From:      from,
		SiteName:  siteName,
		SiteURL:   siteURL,
		deliverer: deliverer,
	}
}

// SendOperatorNotification mails the submission to the operator inbox,
// with reply-to pointed at the submitter.
func (s *Service) SendOperatorNotification(ctx context.Context, to string, sub entity.ContactSubmission) error {
	body, err := render("operator_notification.html", operatorNotificationData{
		Name:       sub.Name,
		Email:      sub.Email,
		Message:    sub.Message,
		ReceivedAt: time.Now().UTC().Format("Monday, January 2, 2006 at 15:04 MST"),
		SiteName:   s.SiteName,
		Year:       time.Now().Year(),
	})
	if err != nil {
		return err
	}

	return s.deliverer.Deliver(ctx, entity.OutboundEmail{
		Subject:  "New Contact Form Submission from " + sub.Name,
		HTMLBody: body,
		Sender:   s.From,
		To:       []entity.EmailAddress{{Email: to}},
		ReplyTo:  &entity.EmailAddress{Name: sub.Name, Email: sub.Email},
	})
}

func (s *Service) SendContactConfirmation(ctx context.Context, sub entity.ContactSubmission) error {
	body, err := render("contact_confirmation.html", contactConfirmationData{
		Name:      sub.Name,
		SiteName:  s.SiteName,
		SiteURL:   s.SiteURL,
		FromEmail: s.From.Email,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}

	return s.deliverer.Deliver(ctx, entity.OutboundEmail{
		Subject:  "Thank you for contacting " + s.SiteName,
		HTMLBody: body,
		Sender:   s.From,
		To:       []entity.EmailAddress{{Name: sub.Name, Email: sub.Email}},
	})
}

func (s *Service) SendVIPWelcome(ctx context.Context, to entity.EmailAddress) error {
	body, err := render("vip_welcome.html", vipWelcomeData{
		SiteName:     s.SiteName,
		CommunityURL: s.SiteURL + "/exclusive-community",
		Year:         time.Now().Year(),
	})
	if err != nil {
		return err
	}

	return s.deliverer.Deliver(ctx, entity.OutboundEmail{
		Subject:  "Welcome to Tracer VIP Membership!",
		HTMLBody: body,
		Sender:   s.From,
		To:       []entity.EmailAddress{to},
	})
}

func render(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return body.String(), nil
}

package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/tracerfleet/tracer-api/internal/entity"
	"github.com/tracerfleet/tracer-api/internal/infra/integration/brevo"
)

// APISender delivers through the Brevo transactional HTTP API.
type APISender struct {
	Client *brevo.Client
}

func NewAPISender(client *brevo.Client) *APISender {
	return &APISender{Client: client}
}

func (s *APISender) Deliver(ctx context.Context, m entity.OutboundEmail) error {
	input := brevo.SendEmailInput{
		Subject:     m.Subject,
		HTMLContent: m.HTMLBody,
		Sender:      brevo.EmailAddress{Name: m.Sender.Name, Email: m.Sender.Email},
	}
	for _, to := range m.To {
		input.To = append(input.To, brevo.EmailAddress{Name: to.Name, Email: to.Email})
	}
	if m.ReplyTo != nil {
		input.ReplyTo = &brevo.EmailAddress{Name: m.ReplyTo.Name, Email: m.ReplyTo.Email}
	}
	return s.Client.SendEmail(ctx, input)
}

// SMTPSender delivers through an SMTP relay. gomail dials per message
// and does not take a context, so cancellation is bounded only by the
// dialer's own timeout.
type SMTPSender struct {
	Host     string
	Port     int
	User     string
	Password string
}

func NewSMTPSender(host string, port int, user, password string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

func (s *SMTPSender) Deliver(_ context.Context, m entity.OutboundEmail) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.Sender.Email, m.Sender.Name)

	to := make([]string, len(m.To))
	for i, addr := range m.To {
		to[i] = msg.FormatAddress(addr.Email, addr.Name)
	}
	msg.SetHeader("To", to...)

	if m.ReplyTo != nil {
		msg.SetAddressHeader("Reply-To", m.ReplyTo.Email, m.ReplyTo.Name)
	}
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", m.HTMLBody)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

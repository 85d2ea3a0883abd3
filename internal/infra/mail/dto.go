package mail

import (
	"context"

	"github.com/tracerfleet/tracer-api/internal/entity"
)

// Deliverer is the transport a composed email leaves through. Two
// implementations exist: the Brevo HTTP API and the Brevo SMTP relay.
type Deliverer interface {
	Deliver(ctx context.Context, m entity.OutboundEmail) error
}

type operatorNotificationData struct {
	Name       string
	Email      string
	Message    string
	ReceivedAt string
	SiteName   string
	Year       int
}

type contactConfirmationData struct {
	Name      string
	SiteName  string
	SiteURL   string
	FromEmail string
	Year      int
}

type vipWelcomeData struct {
	SiteName     string
	CommunityURL string
	Year         int
}

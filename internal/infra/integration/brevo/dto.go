package brevo

import (
	"strings"
	"time"
)

type EmailAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type SendEmailInput struct {
	Subject     string
	HTMLContent string
	Sender      EmailAddress
	To          []EmailAddress
	ReplyTo     *EmailAddress
}

// UpsertContactInput is the clean DTO the use cases hand over; the
// client maps it onto the Brevo wire formats below.
type UpsertContactInput struct {
	Email      string
	ExtID      string
	Attributes map[string]any
}

// UpsertResult tags how an upsert landed. Anything else comes back as
// an error alongside UpsertFailed.
type UpsertResult int

const (
	UpsertFailed UpsertResult = iota
	UpsertUpdated
	UpsertCreated
)

func (r UpsertResult) String() string {
	switch r {
	case UpsertUpdated:
		return "updated"
	case UpsertCreated:
		return "created"
	default:
		return "failed"
	}
}

// GeneralContactInput builds the upsert payload for a contact-form
// submitter.
func GeneralContactInput(email, name string) UpsertContactInput {
	first, last := splitName(name)
	return UpsertContactInput{
		Email: email,
		ExtID: "general-contact",
		Attributes: map[string]any{
			"FIRSTNAME": first,
			"LASTNAME":  last,
		},
	}
}

// VIPContactInput builds the upsert payload for a paying VIP customer.
// VIP_STATUS is a native boolean; if the live account schema stores it
// as text this is the one place to change.
func VIPContactInput(email, name string, purchasedAt time.Time) UpsertContactInput {
	attrs := map[string]any{
		"VIP_STATUS":        true,
		"VIP_PURCHASE_DATE": purchasedAt.UTC().Format(time.RFC3339),
		"CUSTOMER_TYPE":     "VIP",
	}
	if name != "" {
		first, last := splitName(name)
		attrs["FIRSTNAME"] = first
		attrs["LASTNAME"] = last
	}
	return UpsertContactInput{
		Email:      email,
		ExtID:      "vip-customer",
		Attributes: attrs,
	}
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// --- Wire payloads ---

type sendEmailRequest struct {
	Sender      EmailAddress   `json:"sender"`
	To          []EmailAddress `json:"to"`
	ReplyTo     *EmailAddress  `json:"replyTo,omitempty"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

type updateContactRequest struct {
	ExtID      string         `json:"ext_id,omitempty"`
	Attributes map[string]any `json:"attributes"`
}

type createContactRequest struct {
	Email      string         `json:"email"`
	ExtID      string         `json:"ext_id,omitempty"`
	Attributes map[string]any `json:"attributes"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

package entity

type EmailAddress struct {
	Name  string
	Email string
}

// OutboundEmail is a fully composed transactional email, ready to be
// handed to a delivery mechanism and discarded.
type OutboundEmail struct {
	Subject  string
	HTMLBody string
	Sender   EmailAddress
	To       []EmailAddress
	ReplyTo  *EmailAddress
}

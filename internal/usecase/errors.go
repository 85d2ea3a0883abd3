package usecase

// DomainError is a business rejection the caller can act on. Handlers
// translate it to a 400.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// TechnicalError is an infrastructure failure on our side. Handlers
// translate it to a 500.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

const (
	CodeMissingSessionID    = "MISSING_SESSION_ID"
	CodeInvalidSession      = "INVALID_SESSION"
	CodePaymentNotCompleted = "PAYMENT_NOT_COMPLETED"
	CodeNoCustomerEmail     = "NO_CUSTOMER_EMAIL"
	CodeEmailDeliveryFailed = "EMAIL_DELIVERY_FAILED"
)

package entity

type PaymentStatus string

const (
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusUnpaid            PaymentStatus = "unpaid"
	PaymentStatusNoPaymentRequired PaymentStatus = "no_payment_required"
)

// PaymentSession is a read-only view of a checkout session fetched
// from the payment processor. It is never stored.
type PaymentSession struct {
	ID            string
	PaymentStatus PaymentStatus
	CustomerEmail string
	CustomerName  string
}

func (s *PaymentSession) Paid() bool {
	return s.PaymentStatus == PaymentStatusPaid
}

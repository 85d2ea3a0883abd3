package stripe

// checkoutSessionResponse mirrors the slice of the Checkout Session
// object this service reads. Everything else Stripe returns is ignored.
type checkoutSessionResponse struct {
	ID              string           `json:"id"`
	PaymentStatus   string           `json:"payment_status"`
	CustomerDetails *customerDetails `json:"customer_details"`
}

type customerDetails struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tracerfleet/tracer-api/internal/entity"
)

const DefaultBaseURL = "https://api.stripe.com"

type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

func NewClient(secretKey, baseURL string) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// RetrieveCheckoutSession fetches a checkout session by its opaque id.
// Unknown or expired ids come back as an error from Stripe and are
// surfaced as-is; the caller decides how to present them.
func (c *Client) RetrieveCheckoutSession(ctx context.Context, sessionID string) (*entity.PaymentSession, error) {
	endpoint := fmt.Sprintf("%s/v1/checkout/sessions/%s", c.baseURL, url.PathEscape(sessionID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("stripe session lookup failed (status %d): %s", resp.StatusCode, apiError(resp.Body))
	}

	var session checkoutSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("stripe decode session: %w", err)
	}

	out := &entity.PaymentSession{
		ID:            session.ID,
		PaymentStatus: entity.PaymentStatus(session.PaymentStatus),
	}
	if session.CustomerDetails != nil {
		out.CustomerEmail = session.CustomerDetails.Email
		out.CustomerName = session.CustomerDetails.Name
	}
	return out, nil
}

func apiError(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 2048))

	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return string(raw)
}

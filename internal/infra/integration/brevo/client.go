package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.brevo.com/v3"

// ErrContactNotFound is returned by UpdateContact when Brevo has no
// record for the email, so callers can fall back to create without
// sniffing transport status codes.
var ErrContactNotFound = errors.New("brevo: contact not found")

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SendEmail posts one transactional email.
func (c *Client) SendEmail(ctx context.Context, input SendEmailInput) error {
	payload := sendEmailRequest{
		Sender:      input.Sender,
		To:          input.To,
		ReplyTo:     input.ReplyTo,
		Subject:     input.Subject,
		HTMLContent: input.HTMLContent,
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/smtp/email", payload)
	if err != nil {
		return fmt.Errorf("brevo send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("brevo send email rejected (status %d): %s", resp.StatusCode, apiError(resp.Body))
	}
	return nil
}

// UpsertContact tries update-by-email first and falls back to create
// when the contact does not exist yet. Any other failure propagates.
func (c *Client) UpsertContact(ctx context.Context, input UpsertContactInput) (UpsertResult, error) {
	err := c.UpdateContact(ctx, input)
	if err == nil {
		return UpsertUpdated, nil
	}
	if !errors.Is(err, ErrContactNotFound) {
		return UpsertFailed, err
	}

	if err := c.CreateContact(ctx, input); err != nil {
		return UpsertFailed, err
	}
	return UpsertCreated, nil
}

func (c *Client) UpdateContact(ctx context.Context, input UpsertContactInput) error {
	payload := updateContactRequest{
		ExtID:      input.ExtID,
		Attributes: input.Attributes,
	}

	endpoint := c.baseURL + "/contacts/" + url.PathEscape(input.Email)
	resp, err := c.do(ctx, http.MethodPut, endpoint, payload)
	if err != nil {
		return fmt.Errorf("brevo update contact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("update %s: %w", input.Email, ErrContactNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("brevo update contact rejected (status %d): %s", resp.StatusCode, apiError(resp.Body))
	}
	return nil
}

func (c *Client) CreateContact(ctx context.Context, input UpsertContactInput) error {
	payload := createContactRequest{
		Email:      input.Email,
		ExtID:      input.ExtID,
		Attributes: input.Attributes,
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/contacts", payload)
	if err != nil {
		return fmt.Errorf("brevo create contact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("brevo create contact rejected (status %d): %s", resp.StatusCode, apiError(resp.Body))
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload any) (*http.Response, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	return c.http.Do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

// apiError pulls the message out of a Brevo error body, falling back to
// the raw payload.
func apiError(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 2048))

	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return string(raw)
}

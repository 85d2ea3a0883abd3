package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tracerfleet/tracer-api/internal/entity"
	"github.com/tracerfleet/tracer-api/internal/infra/integration/brevo"
	"github.com/tracerfleet/tracer-api/internal/usecase"
)

func newPaymentHandler(gateway *MockPaymentGateway, contacts *MockContactDirectory, email *MockEmailService) *PaymentHandler {
	uc := usecase.NewConfirmPaymentUseCase(gateway, contacts, email)
	return NewPaymentHandler(uc, testConfig())
}

func paymentRequest(sessionID string) *http.Request {
	body, _ := json.Marshal(usecase.ConfirmPaymentInput{SessionID: sessionID})
	return httptest.NewRequest(http.MethodPost, "/api/process-payment", bytes.NewReader(body))
}

type paymentResponse struct {
	Success bool                         `json:"success"`
	Message string                       `json:"message"`
	Data    usecase.ConfirmPaymentOutput `json:"data"`
}

func TestPaymentHandlerSuccess(t *testing.T) {
	gateway := new(MockPaymentGateway)
	contacts := new(MockContactDirectory)
	email := new(MockEmailService)

	gateway.On("RetrieveCheckoutSession", mock.Anything, "cs_test_123").Return(&entity.PaymentSession{
		ID:            "cs_test_123",
		PaymentStatus: entity.PaymentStatusPaid,
		CustomerEmail: "buyer@example.com",
	}, nil)
	contacts.On("UpsertContact", mock.Anything, mock.Anything).Return(brevo.UpsertUpdated, nil)
	email.On("SendVIPWelcome", mock.Anything, mock.Anything).Return(nil)

	handler := newPaymentHandler(gateway, contacts, email)

	w := httptest.NewRecorder()
	handler.Handle(w, paymentRequest("cs_test_123"))

	assert.Equal(t, http.StatusOK, w.Code)

	var response paymentResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.True(t, response.Success)
	assert.Equal(t, "buyer@example.com", response.Data.Email)
	assert.True(t, response.Data.VIPStatus)
	assert.True(t, response.Data.ContactUpdated)
	assert.True(t, response.Data.WelcomeEmailSent)
}

// Side-effect failures stay a 200; the response booleans carry them.
func TestPaymentHandlerSideEffectOutcomesInBody(t *testing.T) {
	cases := []struct {
		upsertOK bool
		emailOK  bool
	}{
		{true, true},
		{true, false},
		{false, true},
		{false, false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("upsert=%v email=%v", tc.upsertOK, tc.emailOK), func(t *testing.T) {
			gateway := new(MockPaymentGateway)
			contacts := new(MockContactDirectory)
			email := new(MockEmailService)

			gateway.On("RetrieveCheckoutSession", mock.Anything, "cs_test_123").Return(&entity.PaymentSession{
				ID:            "cs_test_123",
				PaymentStatus: entity.PaymentStatusPaid,
				CustomerEmail: "buyer@example.com",
			}, nil)

			if tc.upsertOK {
				contacts.On("UpsertContact", mock.Anything, mock.Anything).Return(brevo.UpsertUpdated, nil)
			} else {
				contacts.On("UpsertContact", mock.Anything, mock.Anything).
					Return(brevo.UpsertFailed, errors.New("brevo unavailable"))
			}
			if tc.emailOK {
				email.On("SendVIPWelcome", mock.Anything, mock.Anything).Return(nil)
			} else {
				email.On("SendVIPWelcome", mock.Anything, mock.Anything).Return(errors.New("brevo unavailable"))
			}

			handler := newPaymentHandler(gateway, contacts, email)

			w := httptest.NewRecorder()
			handler.Handle(w, paymentRequest("cs_test_123"))

			assert.Equal(t, http.StatusOK, w.Code)

			var response paymentResponse
			json.NewDecoder(w.Body).Decode(&response)
			assert.True(t, response.Success)
			assert.Equal(t, tc.upsertOK, response.Data.ContactUpdated)
			assert.Equal(t, tc.emailOK, response.Data.WelcomeEmailSent)
		})
	}
}

func TestPaymentHandlerMissingSessionID(t *testing.T) {
	handler := newPaymentHandler(new(MockPaymentGateway), new(MockContactDirectory), new(MockEmailService))

	w := httptest.NewRecorder()
	handler.Handle(w, paymentRequest(""))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response paymentResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.False(t, response.Success)
	assert.Equal(t, "Session ID is required", response.Message)
}

func TestPaymentHandlerInvalidSession(t *testing.T) {
	gateway := new(MockPaymentGateway)
	gateway.On("RetrieveCheckoutSession", mock.Anything, "cs_bad").
		Return(nil, errors.New("stripe session lookup failed (status 404)"))

	handler := newPaymentHandler(gateway, new(MockContactDirectory), new(MockEmailService))

	w := httptest.NewRecorder()
	handler.Handle(w, paymentRequest("cs_bad"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response paymentResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "Invalid or expired session", response.Message)
}

func TestPaymentHandlerPaymentNotCompleted(t *testing.T) {
	gateway := new(MockPaymentGateway)
	contacts := new(MockContactDirectory)
	email := new(MockEmailService)

	gateway.On("RetrieveCheckoutSession", mock.Anything, "cs_test_123").Return(&entity.PaymentSession{
		ID:            "cs_test_123",
		PaymentStatus: entity.PaymentStatusUnpaid,
		CustomerEmail: "buyer@example.com",
	}, nil)

	handler := newPaymentHandler(gateway, contacts, email)

	w := httptest.NewRecorder()
	handler.Handle(w, paymentRequest("cs_test_123"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response paymentResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "Payment not completed", response.Message)

	contacts.AssertNotCalled(t, "UpsertContact", mock.Anything, mock.Anything)
	email.AssertNotCalled(t, "SendVIPWelcome", mock.Anything, mock.Anything)
}

func TestPaymentHandlerInvalidJSON(t *testing.T) {
	handler := newPaymentHandler(new(MockPaymentGateway), new(MockContactDirectory), new(MockEmailService))

	req := httptest.NewRequest(http.MethodPost, "/api/process-payment", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response paymentResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "Invalid request body", response.Message)
}

func TestPaymentHandlerMissingStripeKey(t *testing.T) {
	handler := newPaymentHandler(new(MockPaymentGateway), new(MockContactDirectory), new(MockEmailService))
	handler.Cfg.StripeSecretKey = ""

	w := httptest.NewRecorder()
	handler.Handle(w, paymentRequest("cs_test_123"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response paymentResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "Payment processing is not configured properly.", response.Message)
}

func TestPaymentHandlerMethodNotAllowed(t *testing.T) {
	handler := newPaymentHandler(new(MockPaymentGateway), new(MockContactDirectory), new(MockEmailService))

	req := httptest.NewRequest(http.MethodGet, "/api/process-payment", nil)
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var response paymentResponse
	json.NewDecoder(w.Body).Decode(&response)
	assert.False(t, response.Success)
	assert.Equal(t, "Method not allowed", response.Message)
}

func TestPaymentHandlerOptions(t *testing.T) {
	handler := newPaymentHandler(new(MockPaymentGateway), new(MockContactDirectory), new(MockEmailService))

	req := httptest.NewRequest(http.MethodOptions, "/api/process-payment", nil)
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

// Package payment turns a priced order into a hosted checkout session on an
// external gateway. The gateway never computes percentages; the amount due
// is always computed here before the call.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/steelisia/commerce-backend/internal/apperrors"
	"github.com/steelisia/commerce-backend/internal/config"
)

// Request is the gateway's init-payment payload.
type Request struct {
	ReceiverWalletID string   `json:"receiverWalletId"`
	Amount           float64  `json:"amount"`
	Currency         string   `json:"currency"`
	Description      string   `json:"description"`
	PaymentMethods   []string `json:"paymentMethods,omitempty"`
	PayerName        string   `json:"payerName,omitempty"`
	PayerPhone       string   `json:"payerPhone,omitempty"`
	PayerEmail       string   `json:"payerEmail,omitempty"`
	SuccessURL       string   `json:"successUrl"`
	FailURL          string   `json:"failUrl"`
}

// Session is a successfully created hosted checkout session.
type Session struct {
	PaymentURL string `json:"paymentUrl"`
}

// Gateway is the port the checkout flow calls to obtain a payment link.
type Gateway interface {
	CreatePayment(ctx context.Context, req Request) (*Session, error)
}

// Client talks to a Konnect-style hosted checkout API over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a gateway client. The transport is OTel-instrumented so
// every gateway call shows up in the request trace.
func NewClient(cfg config.Payment) *Client {
	return &Client{
		baseURL: cfg.APIURL,
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Timeout:   15 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type gatewayErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// CreatePayment requests a hosted checkout link. A non-2xx response or a
// 2xx response with no payment URL yields a GatewayError carrying the
// gateway's status and message. Nothing is retried.
func (c *Client) CreatePayment(ctx context.Context, req Request) (*Session, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("payment: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("payment: build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &apperrors.GatewayError{Message: "request failed", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &apperrors.GatewayError{Status: res.StatusCode, Message: readGatewayMessage(res.Body)}
	}

	var session Session
	if err := json.NewDecoder(res.Body).Decode(&session); err != nil {
		return nil, &apperrors.GatewayError{Status: res.StatusCode, Message: "invalid response body", Err: err}
	}
	if session.PaymentURL == "" {
		return nil, &apperrors.GatewayError{Status: res.StatusCode, Message: "gateway returned no payment link"}
	}

	return &session, nil
}

// readGatewayMessage extracts a human-readable message from an error
// response, falling back to the raw body.
func readGatewayMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return "no response body"
	}
	var parsed gatewayErrorBody
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return string(raw)
}

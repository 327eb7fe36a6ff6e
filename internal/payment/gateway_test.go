package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/steelisia/commerce-backend/internal/apperrors"
	"github.com/steelisia/commerce-backend/internal/config"
)

func testClient(baseURL string) *Client {
	return NewClient(config.Payment{APIURL: baseURL, APIKey: "test-key"})
}

func TestCreatePaymentSuccess(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/payments" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer key", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"paymentUrl": "https://pay.example/s/abc"})
	}))
	defer srv.Close()

	session, err := testClient(srv.URL).CreatePayment(context.Background(), Request{
		ReceiverWalletID: "wallet-1",
		Amount:           100,
		Currency:         "TND",
		PayerEmail:       "a@b.c",
	})
	if err != nil {
		t.Fatalf("CreatePayment() error = %v", err)
	}
	if session.PaymentURL != "https://pay.example/s/abc" {
		t.Errorf("PaymentURL = %q", session.PaymentURL)
	}
	if got.ReceiverWalletID != "wallet-1" || got.Amount != 100 || got.Currency != "TND" {
		t.Errorf("gateway received %+v", got)
	}
}

func TestCreatePaymentGatewayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "amount too small"})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).CreatePayment(context.Background(), Request{Amount: 1})

	var ge *apperrors.GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("got %v, want GatewayError", err)
	}
	if ge.Status != http.StatusUnprocessableEntity {
		t.Errorf("Status = %d, want 422", ge.Status)
	}
	if ge.Message != "amount too small" {
		t.Errorf("Message = %q, want gateway message", ge.Message)
	}
}

func TestCreatePaymentMissingLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).CreatePayment(context.Background(), Request{Amount: 10})

	var ge *apperrors.GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("got %v, want GatewayError on empty payment link", err)
	}
}

func TestCreatePaymentUnreachableGateway(t *testing.T) {
	_, err := testClient("http://127.0.0.1:1").CreatePayment(context.Background(), Request{Amount: 10})

	var ge *apperrors.GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("got %v, want GatewayError on transport failure", err)
	}
}

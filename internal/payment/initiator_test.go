package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/steelisia/commerce-backend/internal/apperrors"
	"github.com/steelisia/commerce-backend/internal/config"
	"github.com/steelisia/commerce-backend/internal/domain"
)

type fakeGateway struct {
	calls []Request
	url   string
	err   error
}

func (f *fakeGateway) CreatePayment(_ context.Context, req Request) (*Session, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return &Session{PaymentURL: f.url}, nil
}

func paymentCfg() config.Payment {
	return config.Payment{
		ReceiverWalletID: "wallet-1",
		Currency:         "TND",
		SuccessURL:       "https://shop.example/ok",
		FailURL:          "https://shop.example/ko",
	}
}

func TestInitiateComputesAmount(t *testing.T) {
	cases := []struct {
		total      float64
		percentage int
		want       float64
	}{
		{200, 50, 100},
		{200, 30, 60},
		{200, 100, 200},
		{150, 30, 45},
	}

	for _, c := range cases {
		gw := &fakeGateway{url: "https://pay.example/x"}
		init := NewInitiator(gw, paymentCfg())

		res, err := init.Initiate(context.Background(), &domain.Order{ID: "o1", TotalAmount: c.total}, c.percentage)
		if err != nil {
			t.Fatalf("Initiate(%v, %d) error = %v", c.total, c.percentage, err)
		}
		if res.Amount != c.want {
			t.Errorf("amount for %v at %d%% = %v, want %v", c.total, c.percentage, res.Amount, c.want)
		}
		if len(gw.calls) != 1 || gw.calls[0].Amount != c.want {
			t.Errorf("gateway called with %+v, want amount %v", gw.calls, c.want)
		}
	}
}

func TestInitiateRejectsBadPercentage(t *testing.T) {
	for _, pct := range []int{0, 10, 25, 40, 99, 101, -30} {
		gw := &fakeGateway{url: "https://pay.example/x"}
		init := NewInitiator(gw, paymentCfg())

		_, err := init.Initiate(context.Background(), &domain.Order{TotalAmount: 200}, pct)
		var ve *apperrors.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("pct %d: got %v, want ValidationError", pct, err)
		}
		if len(gw.calls) != 0 {
			t.Errorf("pct %d: gateway must not be called before validation", pct)
		}
	}
}

func TestInitiatePropagatesGatewayError(t *testing.T) {
	gwErr := &apperrors.GatewayError{Status: 503, Message: "maintenance"}
	init := NewInitiator(&fakeGateway{err: gwErr}, paymentCfg())

	_, err := init.Initiate(context.Background(), &domain.Order{TotalAmount: 200}, 50)
	var ge *apperrors.GatewayError
	if !errors.As(err, &ge) || ge.Status != 503 {
		t.Errorf("got %v, want gateway error passed through", err)
	}
}

func TestInitiateCarriesPayerInfo(t *testing.T) {
	gw := &fakeGateway{url: "https://pay.example/x"}
	init := NewInitiator(gw, paymentCfg())

	o := &domain.Order{
		ID:          "o1",
		TotalAmount: 150,
		Delivery:    domain.DeliveryInfo{FullName: "Amine Ben Salah", Phone: "21612345", Email: "amine@example.tn"},
	}
	if _, err := init.Initiate(context.Background(), o, 100); err != nil {
		t.Fatalf("Initiate() error = %v", err)
	}

	req := gw.calls[0]
	if req.PayerName != "Amine Ben Salah" || req.PayerPhone != "21612345" || req.PayerEmail != "amine@example.tn" {
		t.Errorf("payer info not forwarded: %+v", req)
	}
	if req.SuccessURL == "" || req.FailURL == "" {
		t.Error("redirect URLs missing from gateway request")
	}
}

package payment

import (
	"context"
	"fmt"

	"github.com/steelisia/commerce-backend/internal/apperrors"
	"github.com/steelisia/commerce-backend/internal/config"
	"github.com/steelisia/commerce-backend/internal/domain"
)

// allowedPercentages is the closed set of partial-payment options.
var allowedPercentages = map[int]bool{30: true, 50: true, 100: true}

// Result is a successfully initiated checkout session.
type Result struct {
	PaymentURL string
	Percentage int
	Amount     float64
}

// Initiator validates the payment percentage, computes the amount due and
// asks the gateway for a hosted checkout link.
type Initiator struct {
	gateway Gateway
	cfg     config.Payment
}

func NewInitiator(gateway Gateway, cfg config.Payment) *Initiator {
	return &Initiator{gateway: gateway, cfg: cfg}
}

// ValidPercentage reports whether pct is one of the accepted options.
func ValidPercentage(pct int) bool {
	return allowedPercentages[pct]
}

// Initiate creates a checkout session for the order. The percentage must be
// 30, 50 or 100; anything else fails before the gateway is contacted.
// amountToPay = totalAmount * percentage / 100.
func (i *Initiator) Initiate(ctx context.Context, o *domain.Order, percentage int) (*Result, error) {
	if !ValidPercentage(percentage) {
		return nil, apperrors.Validationf("payment percentage must be 30, 50 or 100, got %d", percentage)
	}

	amount := o.TotalAmount * float64(percentage) / 100

	session, err := i.gateway.CreatePayment(ctx, Request{
		ReceiverWalletID: i.cfg.ReceiverWalletID,
		Amount:           amount,
		Currency:         i.cfg.Currency,
		Description:      fmt.Sprintf("Order %s (%d%% of %.2f)", o.ID, percentage, o.TotalAmount),
		PaymentMethods:   i.cfg.Methods,
		PayerName:        o.Delivery.FullName,
		PayerPhone:       o.Delivery.Phone,
		PayerEmail:       o.Delivery.Email,
		SuccessURL:       i.cfg.SuccessURL,
		FailURL:          i.cfg.FailURL,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		PaymentURL: session.PaymentURL,
		Percentage: percentage,
		Amount:     amount,
	}, nil
}

package checkout

import (
	"context"

	"github.com/steelisia/commerce-backend/internal/apperrors"
	"github.com/steelisia/commerce-backend/internal/checkout/sagalog"
	"github.com/steelisia/commerce-backend/internal/domain"
	"github.com/steelisia/commerce-backend/internal/order"
	"github.com/steelisia/commerce-backend/internal/payment"
)

// Result is a completed checkout: the persisted order plus its hosted
// payment link.
type Result struct {
	Order      *domain.Order
	PaymentURL string
	Percentage int
	Amount     float64
}

// Checkout coordinates order persistence and payment-link creation.
type Checkout struct {
	orders    order.Repository
	initiator *payment.Initiator
	logs      sagalog.Repository
}

func New(orders order.Repository, initiator *payment.Initiator, logs sagalog.Repository) *Checkout {
	return &Checkout{orders: orders, initiator: initiator, logs: logs}
}

// Run persists the prepared order and requests a payment link for the given
// percentage. The percentage is validated before anything is written. On
// gateway failure the order ends up marked payment_failed and the gateway
// error is returned.
func (c *Checkout) Run(ctx context.Context, o *domain.Order, percentage int) (*Result, error) {
	if !payment.ValidPercentage(percentage) {
		return nil, apperrors.Validationf("payment percentage must be 30, 50 or 100, got %d", percentage)
	}

	payStep := &paymentLinkStep{
		repo:       c.orders,
		initiator:  c.initiator,
		order:      o,
		percentage: percentage,
	}
	steps := []Step{
		&persistOrderStep{repo: c.orders, order: o},
		payStep,
	}

	// The order id doubles as the saga id so checkout log rows can be
	// joined with the orders collection.
	if err := NewOrchestrator(o.ID, steps, c.logs).Start(ctx); err != nil {
		return nil, err
	}

	return &Result{
		Order:      o,
		PaymentURL: payStep.result.PaymentURL,
		Percentage: payStep.result.Percentage,
		Amount:     payStep.result.Amount,
	}, nil
}

package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/steelisia/commerce-backend/internal/domain"
	"github.com/steelisia/commerce-backend/internal/order"
	"github.com/steelisia/commerce-backend/internal/payment"
)

// persistOrderStep inserts the prepared order. Its compensation marks the
// order payment_failed instead of deleting it, so a failed checkout stays
// visible and unambiguous.
type persistOrderStep struct {
	repo  order.Repository
	order *domain.Order
}

func (s *persistOrderStep) Name() string { return "persist_order" }

func (s *persistOrderStep) Execute(ctx context.Context) error {
	if err := s.repo.Insert(ctx, s.order); err != nil {
		return fmt.Errorf("persist order %s: %w", s.order.ID, err)
	}
	return nil
}

func (s *persistOrderStep) Compensate(ctx context.Context) error {
	return s.repo.UpdatePayment(ctx, s.order.ID, domain.PaymentFailed, 0, 0)
}

// paymentLinkStep asks the gateway for a hosted checkout link and records
// the pending payment on the order. It is the last step, so its
// compensation is empty.
type paymentLinkStep struct {
	repo       order.Repository
	initiator  *payment.Initiator
	order      *domain.Order
	percentage int

	result *payment.Result
}

func (s *paymentLinkStep) Name() string { return "request_payment_link" }

func (s *paymentLinkStep) Execute(ctx context.Context) error {
	res, err := s.initiator.Initiate(ctx, s.order, s.percentage)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePayment(ctx, s.order.ID, domain.PaymentPending, res.Percentage, res.Amount); err != nil {
		return fmt.Errorf("record pending payment for order %s: %w", s.order.ID, err)
	}
	// Mirror the persisted payment fields so callers serialize the same
	// state the repository holds.
	s.order.PaymentStatus = domain.PaymentPending
	s.order.PaymentPercentage = res.Percentage
	s.order.PayedAmount = res.Amount
	s.order.UpdatedAt = time.Now().UTC()
	s.result = res
	return nil
}

func (s *paymentLinkStep) Compensate(ctx context.Context) error { return nil }

// Package order implements the order lifecycle: creation in pending state,
// transition-checked status updates, cancellation and read projections.
package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/steelisia/commerce-backend/internal/apperrors"
	"github.com/steelisia/commerce-backend/internal/domain"
	"github.com/steelisia/commerce-backend/internal/pricing"
)

// Repository is the persistence port for orders.
type Repository interface {
	Insert(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	UpdatePayment(ctx context.Context, id string, status domain.PaymentStatus, percentage int, amount float64) error
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error)
	SumDeliveredTotal(ctx context.Context) (float64, error)
}

// Stats is the per-status order count projection plus the delivered revenue.
type Stats struct {
	Total          int64   `json:"total"`
	Pending        int64   `json:"pending"`
	Shipped        int64   `json:"shipped"`
	Delivered      int64   `json:"delivered"`
	Canceled       int64   `json:"canceled"`
	DeliveredTotal float64 `json:"deliveredTotal"`
}

// Service is the order lifecycle manager.
type Service struct {
	repo   Repository
	pricer *pricing.Engine
}

func NewService(repo Repository, pricer *pricing.Engine) *Service {
	return &Service{repo: repo, pricer: pricer}
}

// Prepare prices the cart and builds an order in pending state without
// persisting it. The checkout saga uses this so persistence becomes a
// compensatable step.
func (s *Service) Prepare(ctx context.Context, userID string, lines []pricing.CartLine, delivery domain.DeliveryInfo) (*domain.Order, error) {
	if userID == "" {
		return nil, apperrors.Validationf("user id is required")
	}

	items, total, err := s.pricer.Price(ctx, lines)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &domain.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		Items:       items,
		TotalAmount: total,
		Status:      domain.StatusPending,
		Delivery:    delivery,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Create prices the cart and persists a new pending order.
func (s *Service) Create(ctx context.Context, userID string, lines []pricing.CartLine, delivery domain.DeliveryInfo) (*domain.Order, error) {
	o, err := s.Prepare(ctx, userID, lines, delivery)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Get returns the order with the given id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByUser returns all orders placed by the given user.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.FindByUser(ctx, userID)
}

// List returns every order.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

// UpdateStatus moves the order to the given status. Unknown status values
// and illegal transitions (e.g. delivered -> pending) are rejected with a
// ValidationError before any write happens.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, apperrors.Validationf("unknown order status %q", status)
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, apperrors.Validationf("illegal status transition %s -> %s", current.Status, status)
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

// Cancel is shorthand for a transition to canceled.
func (s *Service) Cancel(ctx context.Context, id string) (*domain.Order, error) {
	return s.UpdateStatus(ctx, id, domain.StatusCanceled)
}

// Delete removes the order entirely.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// GetStats collects the count-by-status and delivered-sum projections.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.Total, err = s.repo.CountAll(ctx); err != nil {
		return nil, err
	}

	counts := []struct {
		status domain.OrderStatus
		dest   *int64
	}{
		{domain.StatusPending, &stats.Pending},
		{domain.StatusShipped, &stats.Shipped},
		{domain.StatusDelivered, &stats.Delivered},
		{domain.StatusCanceled, &stats.Canceled},
	}
	for _, c := range counts {
		if *c.dest, err = s.repo.CountByStatus(ctx, c.status); err != nil {
			return nil, err
		}
	}

	if stats.DeliveredTotal, err = s.repo.SumDeliveredTotal(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

// SumDeliveredTotal returns the total revenue of delivered orders.
func (s *Service) SumDeliveredTotal(ctx context.Context) (float64, error) {
	return s.repo.SumDeliveredTotal(ctx)
}

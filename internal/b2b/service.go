// Package b2b handles wholesale inquiries: intake, listing and a
// pending/processed status flip.
package b2b

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/steelisia/commerce-backend/internal/apperrors"
	"github.com/steelisia/commerce-backend/internal/domain"
)

// Repository is the persistence port for B2B requests.
type Repository interface {
	Insert(ctx context.Context, req *domain.B2BRequest) error
	FindAll(ctx context.Context) ([]domain.B2BRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.B2BStatus) (*domain.B2BRequest, error)
}

// ProductChecker verifies the referenced product exists before intake.
type ProductChecker interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

type Service struct {
	repo    Repository
	catalog ProductChecker
}

func NewService(repo Repository, catalog ProductChecker) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Create validates and persists a wholesale request in pending state.
func (s *Service) Create(ctx context.Context, req domain.B2BRequest) (*domain.B2BRequest, error) {
	switch {
	case req.ProductID == "":
		return nil, apperrors.Validationf("product id is required")
	case req.Quantity < 1:
		return nil, apperrors.Validationf("quantity must be at least 1")
	case req.FirstName == "" || req.LastName == "":
		return nil, apperrors.Validationf("first and last name are required")
	case req.Email == "" || req.Phone == "":
		return nil, apperrors.Validationf("email and phone are required")
	}

	if _, err := s.catalog.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	req.ID = uuid.NewString()
	req.Status = domain.B2BPending
	req.CreatedAt = now
	req.UpdatedAt = now

	if err := s.repo.Insert(ctx, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *Service) List(ctx context.Context) ([]domain.B2BRequest, error) {
	return s.repo.FindAll(ctx)
}

// UpdateStatus flips a request between pending and processed.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.B2BStatus) (*domain.B2BRequest, error) {
	if status != domain.B2BPending && status != domain.B2BProcessed {
		return nil, apperrors.Validationf("unknown b2b status %q", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

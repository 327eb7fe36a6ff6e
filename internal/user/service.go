// Package user manages the contact records that feed payer info into
// checkout. Authentication is out of scope.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/steelisia/commerce-backend/internal/apperrors"
	"github.com/steelisia/commerce-backend/internal/domain"
)

// Repository is the persistence port for users.
type Repository interface {
	Insert(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new user.
func (s *Service) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.FirstName == "" || u.LastName == "" {
		return nil, apperrors.Validationf("first and last name are required")
	}
	if u.Email == "" {
		return nil, apperrors.Validationf("email is required")
	}

	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := s.repo.Insert(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

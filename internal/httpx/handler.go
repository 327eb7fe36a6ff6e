// Package httpx is the HTTP boundary: routing, decoding, and translation of
// domain errors into JSON error bodies.
package httpx

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/steelisia/commerce-backend/internal/apperrors"
	"github.com/steelisia/commerce-backend/internal/b2b"
	"github.com/steelisia/commerce-backend/internal/checkout"
	"github.com/steelisia/commerce-backend/internal/domain"
	"github.com/steelisia/commerce-backend/internal/order"
	"github.com/steelisia/commerce-backend/internal/pkg/cache"
	"github.com/steelisia/commerce-backend/internal/user"
)

// Catalog is the read-only product surface exposed over HTTP.
type Catalog interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

// Handler carries the services the routes dispatch to.
type Handler struct {
	orders   *order.Service
	checkout *checkout.Checkout
	users    *user.Service
	b2b      *b2b.Service
	catalog  Catalog
	cache    cache.Cache // nil-safe: idempotency replay skipped if nil
}

func NewHandler(
	orders *order.Service,
	co *checkout.Checkout,
	users *user.Service,
	b2bSvc *b2b.Service,
	catalog Catalog,
	c cache.Cache,
) *Handler {
	return &Handler{
		orders:   orders,
		checkout: co,
		users:    users,
		b2b:      b2bSvc,
		catalog:  catalog,
		cache:    c,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError translates a service error into its JSON body.
func writeDomainError(w http.ResponseWriter, err error) {
	writeJSON(w, apperrors.HTTPStatus(err), ErrorResponse{
		Error:   apperrors.Code(err),
		Message: err.Error(),
	})
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}

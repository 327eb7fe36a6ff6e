// Package pricing resolves authoritative prices for a cart and computes
// order totals. Prices always come from the catalog at call time — a
// client-supplied price is never trusted.
package pricing

import (
	"context"

	"github.com/steelisia/commerce-backend/internal/apperrors"
	"github.com/steelisia/commerce-backend/internal/domain"
)

// CartLine is one client-submitted cart entry. It deliberately carries no
// price field.
type CartLine struct {
	ProductID string
	Quantity  int
}

// Catalog is the read-only product lookup the engine depends on.
type Catalog interface {
	FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}

// Engine prices carts. It is stateless and safe for concurrent use.
type Engine struct {
	catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Price validates the cart, resolves every product in one batch lookup and
// returns the priced line items together with the order total. It is a pure
// read + compute: nothing is persisted.
//
// A product id that does not resolve yields a NotFoundError naming that id.
func (e *Engine) Price(ctx context.Context, lines []CartLine) ([]domain.OrderLineItem, float64, error) {
	if len(lines) == 0 {
		return nil, 0, apperrors.Validationf("cart must contain at least one line item")
	}
	for i, line := range lines {
		if line.ProductID == "" {
			return nil, 0, apperrors.Validationf("line %d: product id is required", i)
		}
		if line.Quantity < 1 {
			return nil, 0, apperrors.Validationf("line %d: quantity must be at least 1", i)
		}
	}

	ids := distinctIDs(lines)
	products, err := e.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// Strict resolution: every distinct requested id must exist.
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, 0, apperrors.NotFound("product", id)
		}
	}

	items := make([]domain.OrderLineItem, len(lines))
	var total float64
	for i, line := range lines {
		product := byID[line.ProductID]
		lineTotal := product.UnitPrice * float64(line.Quantity)
		items[i] = domain.OrderLineItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: product.UnitPrice,
			LineTotal: lineTotal,
		}
		total += lineTotal
	}

	return items, total, nil
}

func distinctIDs(lines []CartLine) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	return ids
}

package domain

import "time"

// ProductState mirrors the catalog's lifecycle enum.
type ProductState string

const (
	ProductAvailable   ProductState = "available"
	ProductUnavailable ProductState = "unavailable"
	ProductComingSoon  ProductState = "coming_soon"
)

// Product is the catalog read model. The order flow only ever reads it;
// mutation belongs to admin tooling outside this service.
type Product struct {
	ID          string       `bson:"_id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	UnitPrice   float64      `bson:"unitPrice" json:"unitPrice"`
	Quantity    int          `bson:"quantity" json:"quantity"`
	State       ProductState `bson:"state" json:"state"`
	CategoryID  string       `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	CreatedAt   time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time    `bson:"updatedAt" json:"updatedAt"`
}

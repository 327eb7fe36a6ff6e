package domain

import "time"

// B2BStatus is the processing state of a wholesale request.
type B2BStatus string

const (
	B2BPending   B2BStatus = "pending"
	B2BProcessed B2BStatus = "processed"
)

// B2BRequest is a wholesale inquiry for a single product.
type B2BRequest struct {
	ID        string    `bson:"_id" json:"id"`
	ProductID string    `bson:"productId" json:"productId"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Address   string    `bson:"address" json:"address"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	CIN       string    `bson:"cin,omitempty" json:"cin,omitempty"`
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	Status    B2BStatus `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

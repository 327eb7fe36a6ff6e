package domain

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCanceled  OrderStatus = "canceled"
)

// transitions is the explicit state machine: pending may ship or cancel,
// shipped may deliver, delivered and canceled are terminal.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusShipped, StatusCanceled},
	StatusShipped:   {StatusDelivered},
	StatusDelivered: {},
	StatusCanceled:  {},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus tracks the hosted-checkout session attached to an order.
// Empty means no payment was initiated.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentFailed  PaymentStatus = "failed"
)

// OrderLineItem is one product entry within an order. UnitPrice and
// LineTotal are snapshots taken at order creation; later catalog price
// changes never touch them.
type OrderLineItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	LineTotal float64 `bson:"lineTotal" json:"lineTotal"`
}

// Subtotal recomputes the line total from its snapshot fields.
func (i OrderLineItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// DeliveryInfo is the optional address/contact metadata captured with an
// order. It also supplies the payer details for checkout.
type DeliveryInfo struct {
	Address  string `bson:"address,omitempty" json:"address,omitempty"`
	Note     string `bson:"note,omitempty" json:"note,omitempty"`
	FullName string `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
}

// Order is the persisted order document. TotalAmount always equals the sum
// of line totals at creation time and is never recomputed.
type Order struct {
	ID          string          `bson:"_id" json:"id"`
	UserID      string          `bson:"userId" json:"userId"`
	Items       []OrderLineItem `bson:"items" json:"items"`
	TotalAmount float64         `bson:"totalAmount" json:"totalAmount"`
	Status      OrderStatus     `bson:"status" json:"status"`
	Delivery    DeliveryInfo    `bson:"delivery,omitempty" json:"delivery,omitempty"`

	// Set only when a checkout session was requested for this order.
	PaymentStatus     PaymentStatus `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	PaymentPercentage int           `bson:"paymentPercentage,omitempty" json:"paymentPercentage,omitempty"`
	PayedAmount       float64       `bson:"payedAmount,omitempty" json:"payedAmount,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

package httpx

import (
	"time"

	"github.com/steelisia/commerce-backend/internal/domain"
)

type CreateOrderRequest struct {
	UserID   string             `json:"user_id"`
	Items    []CartLineDTO      `json:"items"`
	Delivery *DeliveryDTO       `json:"delivery,omitempty"`
	Payment  *PaymentRequestDTO `json:"payment,omitempty"`
}

type CartLineDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type DeliveryDTO struct {
	Address  string `json:"address,omitempty"`
	Note     string `json:"note,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

type PaymentRequestDTO struct {
	Percentage int `json:"percentage"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	ID                string              `json:"id"`
	UserID            string              `json:"user_id"`
	Status            string              `json:"status"`
	TotalAmount       float64             `json:"total_amount"`
	Items             []OrderItemResponse `json:"items"`
	Delivery          *DeliveryDTO        `json:"delivery,omitempty"`
	PaymentStatus     string              `json:"payment_status,omitempty"`
	PaymentPercentage int                 `json:"payment_percentage,omitempty"`
	PayedAmount       float64             `json:"payed_amount,omitempty"`
	PaymentURL        string              `json:"payment_url,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

type CreateB2BRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CIN       string `json:"cin,omitempty"`
	Message   string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func mapOrderToResponse(o *domain.Order, paymentURL string) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		}
	}

	res := OrderResponse{
		ID:                o.ID,
		UserID:            o.UserID,
		Status:            string(o.Status),
		TotalAmount:       o.TotalAmount,
		Items:             items,
		PaymentStatus:     string(o.PaymentStatus),
		PaymentPercentage: o.PaymentPercentage,
		PayedAmount:       o.PayedAmount,
		PaymentURL:        paymentURL,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}

	if o.Delivery != (domain.DeliveryInfo{}) {
		res.Delivery = &DeliveryDTO{
			Address:  o.Delivery.Address,
			Note:     o.Delivery.Note,
			FullName: o.Delivery.FullName,
			Phone:    o.Delivery.Phone,
			Email:    o.Delivery.Email,
		}
	}

	return res
}

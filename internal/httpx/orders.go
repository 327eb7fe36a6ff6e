package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/steelisia/commerce-backend/internal/domain"
	"github.com/steelisia/commerce-backend/internal/pricing"
)

// idempotencyTTL bounds how long a replayed X-Idempotency-Key resolves to
// the order it originally created.
const idempotencyTTL = 24 * time.Hour

// idempotentRecord is the cached outcome of a create: the order id plus the
// hosted payment link, so a replay returns the same body as the original 201.
type idempotentRecord struct {
	OrderID    string `json:"orderId"`
	PaymentURL string `json:"paymentUrl,omitempty"`
}

// CreateOrder prices the cart against the catalog, persists the order and,
// when a payment block is present, runs the checkout saga to obtain a
// hosted payment link. A gateway failure surfaces as 502, never a 201.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	// Idempotent replay: a key we have seen returns the original order.
	idempKey := idempotencyKeyFrom(r.Context())
	if cached, cachedURL := h.lookupIdempotentOrder(r, idempKey); cached != nil {
		writeJSON(w, http.StatusOK, mapOrderToResponse(cached, cachedURL))
		return
	}

	lines := make([]pricing.CartLine, len(req.Items))
	for i, it := range req.Items {
		lines[i] = pricing.CartLine{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	delivery := domain.DeliveryInfo{}
	if req.Delivery != nil {
		delivery = domain.DeliveryInfo{
			Address:  req.Delivery.Address,
			Note:     req.Delivery.Note,
			FullName: req.Delivery.FullName,
			Phone:    req.Delivery.Phone,
			Email:    req.Delivery.Email,
		}
	}

	slog.InfoContext(r.Context(), "creating order",
		"request_id", requestIDFrom(r.Context()), "user_id", req.UserID, "lines", len(lines))

	var (
		created    *domain.Order
		paymentURL string
	)

	if req.Payment != nil {
		prepared, err := h.orders.Prepare(r.Context(), req.UserID, lines, delivery)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		res, err := h.checkout.Run(r.Context(), prepared, req.Payment.Percentage)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		created = res.Order
		paymentURL = res.PaymentURL
	} else {
		var err error
		created, err = h.orders.Create(r.Context(), req.UserID, lines, delivery)
		if err != nil {
			writeDomainError(w, err)
			return
		}
	}

	h.rememberIdempotentOrder(r, idempKey, created.ID, paymentURL)

	writeJSON(w, http.StatusCreated, mapOrderToResponse(created, paymentURL))
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	o, err := h.orders.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(o, ""))
}

// ListOrders returns all orders, or only a user's when ?user_id= is set.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var (
		orders []domain.Order
		err    error
	)
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		orders, err = h.orders.ListByUser(r.Context(), userID)
	} else {
		orders, err = h.orders.List(r.Context())
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = mapOrderToResponse(&orders[i], "")
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	o, err := h.orders.UpdateStatus(r.Context(), chi.URLParam(r, "id"), domain.OrderStatus(req.Status))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(o, ""))
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrderToResponse(o, ""))
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "order deleted"})
}

func (h *Handler) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.orders.GetStats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) DeliveredTotal(w http.ResponseWriter, r *http.Request) {
	sum, err := h.orders.SumDeliveredTotal(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"delivered_total": sum})
}

func (h *Handler) lookupIdempotentOrder(r *http.Request, key string) (*domain.Order, string) {
	if h.cache == nil || key == "" {
		return nil, ""
	}
	raw, err := h.cache.Get(r.Context(), h.cache.GenerateKey("create-order", key))
	if err != nil {
		slog.WarnContext(r.Context(), "idempotency lookup failed", "error", err)
		return nil, ""
	}
	if raw == "" {
		return nil, ""
	}
	var rec idempotentRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		slog.WarnContext(r.Context(), "idempotency record corrupted", "error", err)
		return nil, ""
	}
	o, err := h.orders.Get(r.Context(), rec.OrderID)
	if err != nil {
		return nil, ""
	}
	return o, rec.PaymentURL
}

func (h *Handler) rememberIdempotentOrder(r *http.Request, key, orderID, paymentURL string) {
	if h.cache == nil || key == "" {
		return
	}
	raw, err := json.Marshal(idempotentRecord{OrderID: orderID, PaymentURL: paymentURL})
	if err != nil {
		slog.WarnContext(r.Context(), "idempotency record encode failed", "order_id", orderID, "error", err)
		return
	}
	if err := h.cache.Set(r.Context(), h.cache.GenerateKey("create-order", key), string(raw), idempotencyTTL); err != nil {
		slog.WarnContext(r.Context(), "idempotency store failed", "order_id", orderID, "error", err)
	}
}

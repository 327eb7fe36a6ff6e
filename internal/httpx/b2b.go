package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/steelisia/commerce-backend/internal/domain"
)

func (h *Handler) CreateB2BRequest(w http.ResponseWriter, r *http.Request) {
	var req CreateB2BRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	created, err := h.b2b.Create(r.Context(), domain.B2BRequest{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Email:     req.Email,
		Phone:     req.Phone,
		CIN:       req.CIN,
		Message:   req.Message,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListB2BRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.b2b.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *Handler) UpdateB2BStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	updated, err := h.b2b.UpdateStatus(r.Context(), chi.URLParam(r, "id"), domain.B2BStatus(req.Status))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

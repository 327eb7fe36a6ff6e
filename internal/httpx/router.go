package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(AttachRequestMeta)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", handler.CreateOrder)
		r.Get("/", handler.ListOrders)
		r.Get("/stats/counts", handler.OrderStats)
		r.Get("/stats/delivered-total", handler.DeliveredTotal)
		r.Get("/{id}", handler.GetOrder)
		r.Patch("/{id}/status", handler.UpdateOrderStatus)
		r.Post("/{id}/cancel", handler.CancelOrder)
		r.Delete("/{id}", handler.DeleteOrder)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", handler.ListProducts)
		r.Get("/{id}", handler.GetProduct)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", handler.CreateUser)
		r.Get("/{id}", handler.GetUser)
	})

	r.Route("/b2b", func(r chi.Router) {
		r.Post("/", handler.CreateB2BRequest)
		r.Get("/", handler.ListB2BRequests)
		r.Patch("/{id}/status", handler.UpdateB2BStatus)
	})

	return r
}

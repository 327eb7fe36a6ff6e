package httpx

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// contextKey is an unexported type for context keys in this package, so
// values cannot collide with keys from other packages.
type contextKey string

const (
	// HeaderIdempotencyKey lets clients replay POST /orders safely.
	HeaderIdempotencyKey = "X-Idempotency-Key"

	ctxKeyRequestID      contextKey = "request_id"
	ctxKeyIdempotencyKey contextKey = "idempotency_key"
)

// AttachRequestMeta stores the chi request id and the client-supplied
// idempotency key in the request context under typed keys.
func AttachRequestMeta(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ctxKeyRequestID, middleware.GetReqID(r.Context()))
		ctx = context.WithValue(ctx, ctxKeyIdempotencyKey, r.Header.Get(HeaderIdempotencyKey))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFrom(ctx context.Context) string {
	// Comma-ok keeps this nil-safe in tests without the middleware.
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}

func idempotencyKeyFrom(ctx context.Context) string {
	key, _ := ctx.Value(ctxKeyIdempotencyKey).(string)
	return key
}

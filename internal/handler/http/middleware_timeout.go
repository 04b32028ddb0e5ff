package http

import (
	"context"
	"net/http"
)

// withRequestTimeout bounds the request context. It never writes a response:
// handlers map the expired context to a status through errorStatusMap.
func (h *Handler) withRequestTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

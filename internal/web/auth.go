package web

import (
	"net/http"
	"strings"
)

// requireToken wraps a handler with a bearer token check. The expected
// token is a static configured value; an empty Authorization header or a
// mismatch yields 401. The health and metrics endpoints are not wrapped.
func (h *Handlers) requireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := ""
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}

		if h.token == "" || token != h.token {
			h.metrics.RecordUnauthorized()
			writeError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

package auth

import (
	"net/http"
	"strings"
)

// TokenMiddleware validates a Bearer token when one is supplied. Requests
// without an Authorization header pass through unchanged: clients that never
// logged in still identify themselves by email in the request body.
func TokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if _, err := VerifyToken(strings.TrimPrefix(header, "Bearer ")); err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

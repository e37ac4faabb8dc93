package api

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags every response with an X-Request-ID so a client
// report can be matched against the request log.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

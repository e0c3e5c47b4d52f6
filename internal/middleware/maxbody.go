package middleware

import "net/http"

// MaxBody caps the request body at limit bytes. Oversized bodies surface as
// read errors in the handlers, which report them as invalid requests.
func MaxBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import "net/http"

// CORS header values sent on every response, per the browser-extension
// clients this proxy serves.
const (
	allowOrigin  = "*"
	allowHeaders = "Content-Type, Authorization"
	allowMethods = "POST, OPTIONS"
)

// NewCORSMiddleware stamps the fixed CORS policy on every response and
// answers OPTIONS preflight with 200 and an empty body before routing.
func NewCORSMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Set("Access-Control-Allow-Headers", allowHeaders)
			w.Header().Set("Access-Control-Allow-Methods", allowMethods)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

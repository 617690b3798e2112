package middleware

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/SpCohen93/PPai-Backend/internal/license"
	"github.com/SpCohen93/PPai-Backend/internal/model"
)

// NewLicenseMiddleware creates middleware that validates the request's
// bearer token against the license whitelist. Invalid or missing tokens are
// rejected with 401 before the handler runs.
func NewLicenseMiddleware(whitelist *license.Whitelist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, hasToken := license.ExtractToken(r.Header.Get("Authorization"))

			result := whitelist.Validate(token, hasToken)
			if !result.Valid {
				log.Printf("license check failed: %s (path=%s)", result.Reason, r.URL.Path)
				authError(w, result.Reason)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func authError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		Error:   model.CodeUnauthorized,
		Message: msg,
	})
}

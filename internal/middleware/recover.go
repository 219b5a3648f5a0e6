package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// RecoverMiddleware converts a panicking handler into a 500 response so no
// request ever escapes without a JSON body. Panic detail is logged, never
// returned to the caller.
func RecoverMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error().Interface("panic", rec).
						Msgf("panic handling %s %s", r.Method, r.URL.Path)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{"message": "Course 0 does not exist"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

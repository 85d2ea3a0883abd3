package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
)

// Recoverer is the outermost safety net: a panic anywhere below is
// logged in full with a support reference, and the caller only ever
// sees a generic message carrying that reference.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				ref := uuid.New().String()
				log.Printf("panic serving %s %s [ref %s]: %v\n%s",
					r.Method, r.URL.Path, ref, rec, debug.Stack())

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{
					"error":   "Internal server error",
					"message": "An unexpected error occurred. Please contact support with reference " + ref + ".",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"
	"strings"
)

// CORS handles cross-origin requests. Origins is a comma-separated
// allowlist; "*" allows any origin.
func CORS(origins string) func(http.Handler) http.Handler {
	allowed := strings.Split(origins, ",")
	allowAll := false
	for i, o := range allowed {
		allowed[i] = strings.TrimSpace(o)
		if allowed[i] == "*" {
			allowAll = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" && (allowAll || originAllowed(allowed, origin)) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Access-Control-Max-Age", "3600")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a == origin {
			return true
		}
	}
	return false
}
